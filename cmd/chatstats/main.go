package main

import (
	"chat-stats/internal"
	"fmt"
	"os"

	"github.com/gookit/color"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, color.New(color.FgRed).Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

// run keeps main free of exit calls so every deferred cleanup runs before
// the process ends.
func run(args []string) error {
	config, err := internal.LoadConfig()
	if err != nil {
		return err
	}
	root := newRootCommand(&config)
	root.SetArgs(args)
	return root.Execute()
}
