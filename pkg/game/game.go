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

// Package game implements the turn order and game over rules of a
// two-player five-in-a-row game on top of a board.Board.
package game

import (
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"laptudirm.com/x/gomoku/pkg/board"
)

var (
	ErrGameOver    = errors.New("game: the game is already over")
	ErrOutOfBounds = errors.New("game: point is outside the board")
	ErrOccupied    = errors.New("game: point is already occupied")
)

// Game is a single game between two players on one board. The players
// alternate placing stones, PlayerOne first, until one of them completes a
// line of board.WinLength stones or the board fills up.
type Game struct {
	ID string

	board  *board.Board
	toMove board.Cell
	moves  []board.Point

	result Result
	reason string
}

// New starts a new game on an empty board of the given size.
func New(size int) *Game {
	game := &Game{
		ID:     uuid.New().String(),
		board:  board.New(size),
		toMove: board.PlayerOne,
	}

	logrus.WithFields(logrus.Fields{
		"game": game.ID,
		"size": size,
	}).Debug("Started a new game")

	return game
}

// Play places the stone of the player to move at the given point and
// returns the Result of the game after the move. Illegal moves return an
// error and leave the game untouched.
func (game *Game) Play(point board.Point) (Result, error) {
	switch {
	case game.result.Over():
		return game.result, ErrGameOver
	case !point.Inside(game.board.Size()):
		return game.result, ErrOutOfBounds
	case game.board.At(point.Row, point.Col) != board.Empty:
		return game.result, ErrOccupied
	}

	player := game.toMove
	game.board.Place(point.Row, point.Col, player)
	game.moves = append(game.moves, point)

	logrus.WithFields(logrus.Fields{
		"game":   game.ID,
		"player": player,
		"move":   point,
	}).Debug("Move applied")

	if winner, won := game.board.CheckWin(); won {
		game.result, game.reason = WonBy[winner], ReasonFiveInARow
	} else if game.board.Full() {
		game.result, game.reason = Draw, ReasonBoardFull
	} else {
		game.toMove = player.Other()
		return Ongoing, nil
	}

	logrus.WithFields(logrus.Fields{
		"game":   game.ID,
		"result": game.result,
		"reason": game.reason,
		"moves":  len(game.moves),
	}).Info("Game over")

	return game.result, nil
}

// Board returns the game's board. It must not be modified by the caller.
func (game *Game) Board() *board.Board {
	return game.board
}

// ToMove returns the player whose turn it is. After the game is over it is
// the player who made the last move.
func (game *Game) ToMove() board.Cell {
	return game.toMove
}

// Moves returns the points played so far, in order.
func (game *Game) Moves() []board.Point {
	return append([]board.Point(nil), game.moves...)
}

// Result returns the current Result of the game and the reason for it.
func (game *Game) Result() (Result, string) {
	return game.result, game.reason
}

// Over checks if the game has ended.
func (game *Game) Over() bool {
	return game.result.Over()
}
