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

// Package render converts a board into its fixed-width text form, with
// labelled rows and columns, and back.
package render

import (
	"strings"

	"laptudirm.com/x/gomoku/pkg/board"
)

// Glyphs are the single characters used to draw each kind of cell.
type Glyphs struct {
	Empty     string `yaml:"empty"`
	PlayerOne string `yaml:"one"`
	PlayerTwo string `yaml:"two"`
}

// DefaultGlyphs draws empty cells as blanks and the players as * and x.
var DefaultGlyphs = Glyphs{
	Empty:     " ",
	PlayerOne: "*",
	PlayerTwo: "x",
}

// Of returns the glyph of the given cell.
func (glyphs Glyphs) Of(cell board.Cell) string {
	switch cell {
	case board.PlayerOne:
		return glyphs.PlayerOne
	case board.PlayerTwo:
		return glyphs.PlayerTwo
	default:
		return glyphs.Empty
	}
}

// Format renders the board with the DefaultGlyphs.
func Format(b *board.Board) string {
	return FormatWith(b, DefaultGlyphs)
}

// FormatWith renders the board as size+2 lines, a column label border at
// the top and bottom and one line per row between them:
//
//	  0 1 2 3 ...
//	0 *   x     ... 0
//	1           ... 1
//	  0 1 2 3 ...
//
// Every line is 2*size+4 characters wide when the glyphs are one character
// each, so the grid lines up in a fixed-width terminal.
func FormatWith(b *board.Board, glyphs Glyphs) string {
	var str strings.Builder

	size := b.Size()
	str.Grow((size + 2) * (2*size + 5))

	border(&str, size)
	for row := 0; row < size; row++ {
		str.WriteByte(board.Label(row))
		str.WriteByte(' ')
		for col := 0; col < size; col++ {
			str.WriteString(glyphs.Of(b.At(row, col)))
			str.WriteByte(' ')
		}
		str.WriteByte(' ')
		str.WriteByte(board.Label(row))
		str.WriteByte('\n')
	}
	border(&str, size)

	return str.String()
}

func border(str *strings.Builder, size int) {
	str.WriteString("  ")
	for col := 0; col < size; col++ {
		str.WriteByte(board.Label(col))
		str.WriteByte(' ')
	}
	str.WriteString("  \n")
}
