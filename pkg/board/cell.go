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

package board

// Cell represents the contents of a single square of the Board.
type Cell uint8

const (
	Empty Cell = iota
	PlayerOne
	PlayerTwo
)

// Other returns the opposing player's marker. Empty has no opponent.
func (cell Cell) Other() Cell {
	switch cell {
	case PlayerOne:
		return PlayerTwo
	case PlayerTwo:
		return PlayerOne
	default:
		return Empty
	}
}

// String returns a string representation of the given Cell.
func (cell Cell) String() string {
	switch cell {
	case Empty:
		return "empty"
	case PlayerOne:
		return "player one"
	case PlayerTwo:
		return "player two"
	default:
		return "invalid"
	}
}
