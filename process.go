package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/ccollins476ad/imgfetch/download"
	"github.com/ccollins476ad/imgfetch/fileutil"
	"github.com/ccollins476ad/imgfetch/media"
	"github.com/ccollins476ad/imgfetch/media/imgur"
	"github.com/ccollins476ad/imgfetch/media/page"
	"github.com/ccollins476ad/imgfetch/web"
	log "github.com/sirupsen/logrus"
)

const (
	welcomeBanner = "Welcome to the Ubuntu Image Fetcher\n" +
		"A tool for mindfully collecting images from the web\n\n"
	closingBanner = "\nConnection strengthened. Community enriched.\n"

	galleryFilename = "index.html"
)

// run performs a single batch: it reads the url list, fetches each url in
// order, and reports every outcome to out. It only returns an error if the
// url list cannot be read.
func run(ctx context.Context, cfg *Config, in io.Reader, out io.Writer) error {
	fmt.Fprint(out, welcomeBanner)

	urls, err := readURLs(cfg, in, out)
	if err != nil {
		return err
	}

	s := download.NewStore(cfg.DestDir, cfg.Timeout)
	results := processURLs(ctx, cfg, s, urls, out)

	fmt.Fprint(out, closingBanner)

	fetched, skipped, failed := summarize(results)
	log.Infof("fetched %d, skipped %d, failed %d", fetched, skipped, failed)

	if cfg.Gallery {
		err := writeGallery(s, results)
		if err != nil {
			log.WithError(err).Errorf("failed to write gallery")
		}
	}

	return nil
}

// expanders returns the expanders enabled by the given configuration.
func expanders(cfg *Config, s *download.Store) []media.Expander {
	if !cfg.Expand {
		return nil
	}

	return []media.Expander{
		imgur.NewExpander(s),
		page.NewExpander(s),
	}
}

// processURLs fetches each url sequentially, in order, reporting each result
// as soon as it is known. A failure never stops the batch.
func processURLs(ctx context.Context, cfg *Config, s *download.Store, urls []string, out io.Writer) []download.Result {
	exps := expanders(cfg, s)

	var results []download.Result
	for _, u := range urls {
		targets, err := media.Expand(ctx, exps, u)
		if err != nil {
			res := download.Result{
				URL: u,
				Err: &download.TransportError{URL: u, Err: err},
			}
			report(out, res)
			results = append(results, res)
			continue
		}

		for _, t := range targets {
			log.Debugf("processing url: %s", t)
			res := s.Fetch(ctx, t)
			report(out, res)
			results = append(results, res)
		}
	}

	return results
}

// report writes a user-facing description of the given result to out.
func report(out io.Writer, res download.Result) {
	var te *download.TransportError

	switch {
	case errors.As(res.Err, &te):
		fmt.Fprintf(out, "✗ Connection error for URL %s: %v\n", res.URL, te.Err)

	case res.Err != nil:
		fmt.Fprintf(out, "✗ An error occurred for URL %s: %v\n", res.URL, res.Err)

	case res.Existed:
		fmt.Fprintf(out, "✓ Image already exists: %s\n", res.Filename)

	default:
		fmt.Fprintf(out, "✓ Successfully fetched: %s\n", res.Filename)
		fmt.Fprintf(out, "✓ Image saved to %s\n", res.Path)
	}
}

// summarize counts the fetched, skipped (already present) and failed results.
func summarize(results []download.Result) (fetched, skipped, failed int) {
	for _, res := range results {
		switch {
		case !res.OK():
			failed++
		case res.Existed:
			skipped++
		default:
			fetched++
		}
	}
	return
}

// writeGallery saves an html page in the destination directory showing every
// image that is on disk as a result of this run. An existing file with the
// gallery's name is left alone.
func writeGallery(s *download.Store, results []download.Result) error {
	galleryPath := filepath.Join(s.DestDir(), galleryFilename)
	if fileutil.FileExists(galleryPath) {
		log.Warnf("not writing gallery: file already exists: %s", galleryPath)
		return nil
	}

	var filenames []string
	seen := map[string]struct{}{}

	for _, res := range results {
		if !res.OK() {
			continue
		}
		if _, ok := seen[res.Filename]; ok {
			continue
		}
		seen[res.Filename] = struct{}{}
		filenames = append(filenames, res.Filename)
	}

	err := fileutil.EnsureDir(s.DestDir())
	if err != nil {
		return err
	}

	gallery := web.BuildGallery("Fetched Images", filenames)
	return s.SaveFile(galleryFilename, []byte(gallery))
}
