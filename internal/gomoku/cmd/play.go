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
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/gomoku/pkg/board"
	"laptudirm.com/x/gomoku/pkg/game"
)

// gomoku play
func Play() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play a game between two players on this terminal",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`play starts a game between two players who take turns
			entering moves on the same terminal. The first player's
			stones are drawn as * and the second player's as x, unless
			the configuration file says otherwise.

			A move is the label of its row followed by the label of its
			column, so "7a" places a stone on row 7, column a. Enter q
			or quit to leave the game.

			The first player to line up five stones horizontally,
			vertically or diagonally wins. If the board fills up first,
			the game is drawn.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := newTerminal(cmd)
			if err != nil {
				return err
			}

			if err := t.Welcome(); err != nil {
				return err
			}

			size, err := t.Size(cmd)
			if err != nil {
				return err
			}

			return playGame(t, game.New(size))
		},
	}
}

func playGame(t *terminal, g *game.Game) error {
	// warning about the last illegal move, printed after the board is
	// redrawn so clearing the screen does not erase it
	var warning string

	for !g.Over() {
		if err := t.Clear(); err != nil {
			return err
		}

		if err := t.Board(g.Board()); err != nil {
			return err
		}

		if warning != "" {
			if err := t.Warnf("%s", warning); err != nil {
				return err
			}
			warning = ""
		}

		point, err := requestMove(t, g)
		if errors.Is(err, errQuit) {
			logrus.WithField("game", g.ID).Info("Game abandoned")
			return t.Infof("Game abandoned after %s.", plural(len(g.Moves()), "move"))
		} else if err != nil {
			return err
		}

		if _, err := g.Play(point); err != nil {
			warning = fmt.Sprintf("Invalid move %s: %s. Try again.", point, moveError(err))
		}
	}

	if err := t.Board(g.Board()); err != nil {
		return err
	}

	return announceResult(t, g)
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}

	return fmt.Sprintf("%d %ss", n, noun)
}

var errQuit = errors.New("quit")

// requestMove asks the player to move until they enter a point on the
// board, or quit.
func requestMove(t *terminal, g *game.Game) (board.Point, error) {
	prompt := fmt.Sprintf("Move %d, player %s to move: ", len(g.Moves())+1, t.Glyph(g.ToMove()))

	for {
		input, err := t.ReadLine(prompt)
		if errors.Is(err, io.EOF) {
			return board.Point{}, errQuit
		} else if err != nil {
			return board.Point{}, fmt.Errorf("read move: %w", err)
		}

		switch strings.ToLower(input) {
		case "":
			continue
		case "q", "quit":
			return board.Point{}, errQuit
		}

		point, err := board.ParsePoint(input, g.Board().Size())
		if err == nil {
			return point, nil
		}

		logrus.Debug(err)
		if err := t.Warnf("Invalid move %q: expected <row><column>, like 7a.", input); err != nil {
			return board.Point{}, err
		}
	}
}

func moveError(err error) string {
	switch {
	case errors.Is(err, game.ErrOccupied):
		return "cell already occupied"
	case errors.Is(err, game.ErrOutOfBounds):
		return "outside the board"
	default:
		return err.Error()
	}
}

func announceResult(t *terminal, g *game.Game) error {
	result, reason := g.Result()

	switch result {
	case game.PlayerOneWins, game.PlayerTwoWins:
		return t.Infof("Game Over. Player %s wins by %s! (%s)", t.Glyph(g.ToMove()), reason, result)
	default:
		return t.Infof("Game Over. Draw by %s. (%s)", reason, result)
	}
}
