package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"mvdan.cc/xurls/v2"
)

const prompt = "Please enter image URLs (comma-separated for multiple): "

// splitURLs splits a comma-separated list of urls. Whitespace around each url
// is trimmed and empty entries are dropped. Order is preserved.
func splitURLs(line string) []string {
	var urls []string
	for _, piece := range strings.Split(line, ",") {
		u := strings.TrimSpace(piece)
		if u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}

// promptURLs writes the url prompt to out and reads a single line of
// comma-separated urls from in. A final line lacking a newline is accepted.
func promptURLs(in io.Reader, out io.Writer) ([]string, error) {
	fmt.Fprint(out, prompt)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read urls: %w", err)
	}

	return splitURLs(line), nil
}

// extractURLs returns every url found in the given text file, in order of
// appearance. The file may contain arbitrary text around the urls.
func extractURLs(filename string) ([]string, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	urls := xurls.Strict().FindAllString(string(b), -1)
	log.Debugf("extracted %d urls from %s", len(urls), filename)

	return urls, nil
}

// readURLs obtains the list of urls to fetch, either from the configured input
// file or by prompting the user.
func readURLs(cfg *Config, in io.Reader, out io.Writer) ([]string, error) {
	if cfg.Input != "" {
		return extractURLs(cfg.Input)
	}
	return promptURLs(in, out)
}
