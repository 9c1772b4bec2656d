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

package render

import (
	"errors"
	"fmt"
	"strings"

	"laptudirm.com/x/gomoku/pkg/board"
)

// Parse reads back a board rendered by Format.
func Parse(text string) (*board.Board, error) {
	return ParseWith(text, DefaultGlyphs)
}

// ParseWith reads back a board rendered by FormatWith using the same
// glyphs. The parsed board has no last placement.
func ParseWith(text string, glyphs Glyphs) (*board.Board, error) {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")

	size := len(lines) - 2
	if size < 1 || size > board.MaxSize {
		return nil, fmt.Errorf("parse board: %d lines is not a valid board", len(lines))
	}

	var expected strings.Builder
	border(&expected, size)
	top := strings.TrimSuffix(expected.String(), "\n")
	if lines[0] != top || lines[size+1] != top {
		return nil, errors.New("parse board: malformed column labels")
	}

	cells := make([][]board.Cell, size)
	for row := 0; row < size; row++ {
		var err error
		if cells[row], err = parseRow(lines[row+1], row, size, glyphs); err != nil {
			return nil, err
		}
	}

	return board.FromCells(cells)
}

func parseRow(line string, row, size int, glyphs Glyphs) ([]board.Cell, error) {
	label := string(board.Label(row))

	rest, found := strings.CutPrefix(line, label+" ")
	if !found {
		return nil, fmt.Errorf("parse board: row %s: bad leading label", label)
	}

	cells := make([]board.Cell, size)
	for col := 0; col < size; col++ {
		var cell board.Cell
		var ok bool
		if cell, rest, ok = cutGlyph(rest, glyphs); !ok {
			return nil, fmt.Errorf("parse board: row %s: unknown glyph in column %c", label, board.Label(col))
		}

		if rest, found = strings.CutPrefix(rest, " "); !found {
			return nil, fmt.Errorf("parse board: row %s: missing separator after column %c", label, board.Label(col))
		}

		cells[col] = cell
	}

	if rest != " "+label {
		return nil, fmt.Errorf("parse board: row %s: bad trailing label", label)
	}

	return cells, nil
}

// cutGlyph removes the glyph at the start of s. The player glyphs are
// matched before the empty glyph, since an empty glyph of " " would also
// match the separator.
func cutGlyph(s string, glyphs Glyphs) (board.Cell, string, bool) {
	for _, cell := range [...]board.Cell{board.PlayerOne, board.PlayerTwo, board.Empty} {
		glyph := glyphs.Of(cell)
		if glyph == "" {
			continue
		}

		if rest, found := strings.CutPrefix(s, glyph); found {
			return cell, rest, true
		}
	}

	return board.Empty, s, false
}
