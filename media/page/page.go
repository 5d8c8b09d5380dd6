package page

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/ccollins476ad/imgfetch/download"
	"github.com/ccollins476ad/imgfetch/web"
	"golang.org/x/net/html"
)

// Expander lists the images embedded in html pages. It implements the
// media.Expander interface.
type Expander struct {
	s *download.Store
}

// NewExpander creates an expander that fetches pages through s.
func NewExpander(s *download.Store) *Expander {
	return &Expander{
		s: s,
	}
}

// isPage reports whether the url's path names an html document.
func isPage(pu *url.URL) bool {
	p := strings.ToLower(pu.Path)
	return strings.HasSuffix(p, ".html") || strings.HasSuffix(p, ".htm")
}

// Expand returns the urls of all images embedded in the html page at url=u.
// See media.Expander#Expand for API details.
func (e *Expander) Expand(ctx context.Context, u string) ([]string, error) {
	pu, err := url.Parse(u)
	if err != nil || !isPage(pu) {
		return nil, nil
	}

	b, err := e.s.Get(ctx, u, nil)
	if err != nil {
		return nil, err
	}

	doc, err := html.Parse(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to parse html page: %w", err)
	}

	urls := web.EmbeddedImageURLs(doc, pu)
	if len(urls) == 0 {
		return nil, fmt.Errorf("html page contains 0 embedded image urls")
	}

	return urls, nil
}
