package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/tomz197/slither/internal/config"
	"github.com/tomz197/slither/internal/draw"
	"github.com/tomz197/slither/internal/loop"
	"golang.org/x/term"
)

func main() {
	cfg, err := config.Parse(os.Args[1:])
	if errors.Is(err, config.ErrHelp) {
		config.Usage(os.Stdout, os.Args[0])
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		config.Usage(os.Stderr, os.Args[0])
		os.Exit(2)
	}

	cfg.DeriveSize(draw.DefaultTermSizeFunc)

	if err := play(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

// play runs one game inside raw mode. Raw mode is released before play
// returns on every path, so main can exit freely afterwards.
func play(cfg *config.Config) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	reader := bufio.NewReader(os.Stdin)
	_, err = loop.Run(cfg, reader, os.Stdout)
	return err
}
