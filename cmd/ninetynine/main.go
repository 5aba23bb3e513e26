package main

import (
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/draganm/ninetynine/internal/song"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	app := &cli.App{
		Name:  "ninetynine",
		Usage: "Prints the lyrics of the 99 Bottles of Beer song",
		Action: func(c *cli.Context) error {
			return song.NewPrinter(os.Stdout).Print()
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Error("Error running app", "error", err)
		os.Exit(1)
	}
}
