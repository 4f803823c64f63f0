package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/qjebbs/go-sqlq/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		color.New(color.FgRed, color.Bold).Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
