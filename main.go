package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/gomoku/internal/gomoku/cmd"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := gomoku(); err != nil {
		logrus.Fatal(err)
	}
}

func gomoku() error {
	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
