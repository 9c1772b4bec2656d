// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"unicode"
	"unicode/utf8"

	"github.com/adrg/xdg"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/gomoku/pkg/board"
	"laptudirm.com/x/gomoku/pkg/render"
)

// File is the default path of the configuration file.
var File = filepath.Join(xdg.ConfigHome, "gomoku", "config.yaml")

type Config struct {
	// Size of the board. The user is asked for it on startup when zero.
	Size int `yaml:"size"`

	// Characters used to draw the cells of the board.
	Glyphs render.Glyphs `yaml:"glyphs"`

	// Whether to color the banner and status messages.
	Color bool `yaml:"color"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Glyphs: render.DefaultGlyphs,
		Color:  true,
	}
}

// Load reads the configuration file at the given path. Keys missing from
// the file keep their default values, and a missing file is not an error.
func Load(path string) (Config, error) {
	config := Default()

	file, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logrus.WithField("path", path).Debug("No configuration file found, using defaults")
		return config, nil
	} else if err != nil {
		return config, fmt.Errorf("load config: %w", err)
	}

	if err := yaml.Unmarshal(file, &config); err != nil {
		return config, fmt.Errorf("load config %s: %w", path, err)
	}

	if err := config.validate(); err != nil {
		return config, fmt.Errorf("load config %s: %w", path, err)
	}

	logrus.WithField("path", path).Debug("Loaded configuration file")
	return config, nil
}

func (config Config) validate() error {
	if config.Size != 0 && (config.Size < board.MinSize || config.Size > board.MaxSize) {
		return fmt.Errorf("size %d is outside [%d, %d]", config.Size, board.MinSize, board.MaxSize)
	}

	for _, glyph := range []struct{ name, value string }{
		{"empty", config.Glyphs.Empty},
		{"one", config.Glyphs.PlayerOne},
		{"two", config.Glyphs.PlayerTwo},
	} {
		if err := validateGlyph(glyph.value); err != nil {
			return fmt.Errorf("glyph %s: %w", glyph.name, err)
		}
	}

	if config.Glyphs.PlayerOne == config.Glyphs.PlayerTwo ||
		config.Glyphs.PlayerOne == config.Glyphs.Empty ||
		config.Glyphs.PlayerTwo == config.Glyphs.Empty {
		return errors.New("glyphs must be distinct")
	}

	return nil
}

// validateGlyph checks that a glyph takes up exactly one cell when printed.
func validateGlyph(glyph string) error {
	if utf8.RuneCountInString(glyph) != 1 {
		return fmt.Errorf("must be a single character, got %q", glyph)
	}

	if r, _ := utf8.DecodeRuneInString(glyph); r != ' ' && !unicode.IsGraphic(r) {
		return fmt.Errorf("must be printable, got %q", glyph)
	}

	return nil
}
