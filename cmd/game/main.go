package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/tomz197/boostercatch/internal/config"
	"github.com/tomz197/boostercatch/internal/loop"
	"golang.org/x/term"
)

func main() {
	// BOOSTER_SEED pins the spawn sequence, for practicing a level
	// against the same drops. 0 (the default) rolls from the clock.
	seed := config.GetEnvUint64("BOOSTER_SEED", 0)

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	reader := bufio.NewReader(os.Stdin)
	err = loop.RunWithOptions(reader, os.Stdout, loop.Options{Seed: seed})
	if err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
