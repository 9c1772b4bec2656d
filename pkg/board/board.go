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

// Package board implements a square five-in-a-row board which supports
// placing stones and checking if the last placement completed a line.
package board

import "fmt"

// WinLength is the length of the line of stones which wins the game.
const WinLength = 5

// Board is a square grid of cells along with the position of the most
// recent placement, which anchors win checks.
type Board struct {
	size  int
	cells []Cell

	last    Point
	hasLast bool
}

// New creates a new empty Board of the given size.
func New(size int) *Board {
	if size <= 0 || size > MaxSize {
		panic(fmt.Sprintf("board: invalid size %d", size))
	}

	return &Board{
		size:  size,
		cells: make([]Cell, size*size),
	}
}

// FromCells creates a Board holding the given square grid of cells. The
// Board has no last placement, so CheckWin reports nothing until a stone
// is placed on it.
func FromCells(cells [][]Cell) (*Board, error) {
	size := len(cells)
	if size == 0 || size > MaxSize {
		return nil, fmt.Errorf("board: invalid size %d", size)
	}

	board := New(size)
	for row, line := range cells {
		if len(line) != size {
			return nil, fmt.Errorf("board: row %d has %d cells, expected %d", row, len(line), size)
		}

		for col, cell := range line {
			if cell > PlayerTwo {
				return nil, fmt.Errorf("board: invalid cell %d at (%d, %d)", cell, row, col)
			}

			board.cells[board.index(row, col)] = cell
		}
	}

	return board, nil
}

// Size returns the width (and height) of the Board.
func (board *Board) Size() int {
	return board.size
}

// At returns the contents of the given cell.
func (board *Board) At(row, col int) Cell {
	return board.cells[board.index(row, col)]
}

// Last returns the most recent placement. The second return value is false
// if nothing has been placed on the Board yet.
func (board *Board) Last() (Point, bool) {
	return board.last, board.hasLast
}

// Place puts the given player's stone at (row, col) and records it as the
// last placement. Occupied cells are overwritten; rejecting such moves is
// left to the caller.
func (board *Board) Place(row, col int, player Cell) {
	board.cells[board.index(row, col)] = player
	board.last = Point{Row: row, Col: col}
	board.hasLast = true
}

// Full checks if every cell of the Board is occupied.
func (board *Board) Full() bool {
	for _, cell := range board.cells {
		if cell == Empty {
			return false
		}
	}

	return true
}

// axes are the direction vectors of the lines checked by CheckWin, in the
// order they are checked: horizontal, vertical, diagonal \, diagonal /.
var axes = [4]Point{
	{Row: 0, Col: 1},
	{Row: 1, Col: 0},
	{Row: 1, Col: 1},
	{Row: 1, Col: -1},
}

// CheckWin checks if the last placement completed a line of at least
// WinLength stones along any axis, and returns the winner's marker if so.
func (board *Board) CheckWin() (Cell, bool) {
	if !board.hasLast {
		return Empty, false
	}

	target := board.At(board.last.Row, board.last.Col)
	if target == Empty {
		return Empty, false
	}

	for _, axis := range axes {
		// the anchor is counted once, each direction counts the stones
		// beyond it
		run := 1 +
			board.count(board.last, axis.Row, axis.Col, target) +
			board.count(board.last, -axis.Row, -axis.Col, target)

		if run >= WinLength {
			return target, true
		}
	}

	return Empty, false
}

// count returns the number of consecutive target stones after from in the
// direction (dRow, dCol), excluding from itself.
func (board *Board) count(from Point, dRow, dCol int, target Cell) int {
	n := 0
	p := Point{Row: from.Row + dRow, Col: from.Col + dCol}
	for p.Inside(board.size) && board.At(p.Row, p.Col) == target {
		p.Row += dRow
		p.Col += dCol
		n++
	}

	return n
}

func (board *Board) index(row, col int) int {
	if !(Point{Row: row, Col: col}).Inside(board.size) {
		panic(fmt.Sprintf("board: (%d, %d) out of bounds for size %d", row, col, board.size))
	}

	return row*board.size + col
}
