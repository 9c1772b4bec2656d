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
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/gomoku/internal/gomoku/config"
	"laptudirm.com/x/gomoku/pkg/board"
)

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "gomoku",
		Short: "Five-in-a-row on the terminal",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`gomoku sets up a square board of the given size and prints
			it with its rows and columns labelled by the characters 0-9,
			a-z and A-Z, which is why the size is limited to 62.

			The size is read from the --size flag, the configuration
			file, or a line of standard input, in that order.

			Use "gomoku play" to play a game between two players.`),

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// If --trace flag is provided, set logging level to Trace.
			if cmd.Flag("trace").Changed {
				logrus.SetLevel(logrus.TraceLevel)
			}
		},

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

			return t.Board(board.New(size))
		},
	}

	// global flags
	root.PersistentFlags().BoolP("help", "h", false, "Show Help Information")
	root.PersistentFlags().BoolP("version", "v", false, "Show Gomoku's Version")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")
	root.PersistentFlags().StringP("config", "c", config.File, "Path to the Configuration File")
	root.PersistentFlags().IntP("size", "s", 0, "Size of the Board")

	versionStr := "v0.1.0\n"
	root.SetVersionTemplate(versionStr)
	root.Version = versionStr

	// Register the various commands.
	root.AddCommand(Play())

	return root
}
