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

package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"laptudirm.com/x/gomoku/internal/gomoku/config"
	"laptudirm.com/x/gomoku/pkg/board"
	"laptudirm.com/x/gomoku/pkg/render"
)

// terminal wraps the input and output streams of a command.
type terminal struct {
	in  *bufio.Reader
	out io.Writer

	config config.Config

	title *color.Color
	info  *color.Color
	warn  *color.Color
}

func newTerminal(cmd *cobra.Command) (*terminal, error) {
	conf, err := config.Load(cmd.Flag("config").Value.String())
	if err != nil {
		return nil, err
	}

	t := &terminal{
		in:  bufio.NewReader(cmd.InOrStdin()),
		out: cmd.OutOrStdout(),

		config: conf,

		title: color.New(color.FgGreen, color.Bold),
		info:  color.New(color.FgYellow),
		warn:  color.New(color.FgRed),
	}

	if !conf.Color {
		t.title.DisableColor()
		t.info.DisableColor()
		t.warn.DisableColor()
	}

	return t, nil
}

// Clear clears the screen if the output is an interactive terminal.
func (t *terminal) Clear() error {
	file, ok := t.out.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return nil
	}

	if _, err := fmt.Fprint(t.out, "\x1b[2J\x1b[H"); err != nil {
		return fmt.Errorf("clear screen: %w", err)
	}

	return nil
}

// Welcome clears the screen and prints the welcome banner.
func (t *terminal) Welcome() error {
	if err := t.Clear(); err != nil {
		return err
	}

	if _, err := t.title.Fprintln(t.out, "Welcome to Gomoku!"); err != nil {
		return fmt.Errorf("write banner: %w", err)
	}

	_, err := fmt.Fprintln(t.out)
	return err
}

// Size figures out the size of the board: the --size flag comes first,
// then the configuration file, and otherwise the user is asked for it.
func (t *terminal) Size(cmd *cobra.Command) (int, error) {
	if flag := cmd.Flag("size"); flag.Changed {
		return board.ParseSize(flag.Value.String())
	}

	if t.config.Size != 0 {
		return t.config.Size, nil
	}

	line, err := t.ReadLine(fmt.Sprintf("Board size [%d-%d]: ", board.MinSize, board.MaxSize))
	if err != nil {
		return 0, fmt.Errorf("read size: %w", err)
	}

	size, err := board.ParseSize(line)
	if err != nil {
		return 0, err
	}

	logrus.WithField("size", size).Debug("Read board size")
	return size, nil
}

// ReadLine prints the prompt and reads one line of input. A final line
// without a newline is accepted; io.EOF is returned only when there is no
// input left at all.
func (t *terminal) ReadLine(prompt string) (string, error) {
	if _, err := t.info.Fprint(t.out, prompt); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}

	line, err := t.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

// Board prints the given board.
func (t *terminal) Board(b *board.Board) error {
	if _, err := fmt.Fprintln(t.out, render.FormatWith(b, t.config.Glyphs)); err != nil {
		return fmt.Errorf("write board: %w", err)
	}

	return nil
}

// Glyph returns the configured glyph of the player.
func (t *terminal) Glyph(player board.Cell) string {
	return t.config.Glyphs.Of(player)
}

func (t *terminal) Infof(format string, a ...any) error {
	_, err := t.info.Fprintf(t.out, format+"\n", a...)
	return err
}

func (t *terminal) Warnf(format string, a ...any) error {
	_, err := t.warn.Fprintf(t.out, format+"\n", a...)
	return err
}
