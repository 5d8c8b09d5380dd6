package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
)

func printFatalError(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
}

func main() {
	cfg, err := parseArgs(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		usage(os.Stdout)
		return
	}
	if err != nil {
		printFatalError(err)
		usage(os.Stderr)
		os.Exit(1)
	}

	if cfg.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	// Per-url failures are reported as they happen and never change the exit
	// status. Only failing to obtain the url list is fatal.
	err = run(context.Background(), cfg, os.Stdin, os.Stdout)
	if err != nil {
		printFatalError(err)
		os.Exit(2)
	}
}
