// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
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

package game

import "laptudirm.com/x/gomoku/pkg/board"

// Result represents the state of a single game.
type Result uint8

const (
	Ongoing Result = iota
	PlayerOneWins
	PlayerTwoWins
	Draw
)

// Reasons a game may end with.
const (
	ReasonFiveInARow = "Five in a Row"
	ReasonBoardFull  = "Board Full"
)

// WonBy maps the winning player to the game's Result.
var WonBy = [3]Result{
	board.Empty:     Ongoing,
	board.PlayerOne: PlayerOneWins,
	board.PlayerTwo: PlayerTwoWins,
}

// Over checks if the Result ends the game.
func (result Result) Over() bool {
	return result != Ongoing
}

// String returns a string representation of the given Result.
func (result Result) String() string {
	switch result {
	case Ongoing:
		return "*"
	case PlayerOneWins:
		return "1-0"
	case PlayerTwoWins:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	default:
		return "?-?"
	}
}
