package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/ccollins476ad/imgfetch/download"
)

type Config struct {
	DestDir string        // Directory to save fetched images to.
	Input   string        // Optional file to extract urls from instead of prompting.
	Timeout time.Duration // Bound on each http request.
	Expand  bool          // True to expand albums and html pages into their images.
	Gallery bool          // True to write an html gallery of the run's images.
	Verbose bool          // True for verbose output.
}

func newFlagSet(cfg *Config) *flag.FlagSet {
	fs := flag.NewFlagSet(filepath.Base(os.Args[0]), flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DestDir, "d", download.DefaultDir, "destination directory")
	fs.StringVar(&cfg.Input, "i", "", "read urls from a text file instead of prompting")
	fs.DurationVar(&cfg.Timeout, "t", download.DefaultTimeout, "timeout per request")
	fs.BoolVar(&cfg.Expand, "x", false, "expand imgur albums and html pages into their images")
	fs.BoolVar(&cfg.Gallery, "g", false, "write an html gallery of fetched images")
	fs.BoolVar(&cfg.Verbose, "v", false, "verbose output")

	return fs
}

func parseArgs(args []string) (*Config, error) {
	cfg := &Config{}

	fs := newFlagSet(cfg)
	err := fs.Parse(args)
	if err != nil {
		return nil, err
	}

	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument: %s", fs.Arg(0))
	}
	if cfg.DestDir == "" {
		return nil, fmt.Errorf("destination directory must not be empty")
	}
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("timeout must be positive: %s", cfg.Timeout)
	}

	return cfg, nil
}

func usage(w io.Writer) {
	fs := newFlagSet(&Config{})
	fs.SetOutput(w)

	fmt.Fprintf(w, "Usage: %s [option]...\n", fs.Name())
	fmt.Fprintf(w, "Fetches images from a comma-separated list of urls read from stdin.\n")
	fs.PrintDefaults()
}
