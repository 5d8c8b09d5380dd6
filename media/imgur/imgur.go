package imgur

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/ccollins476ad/imgfetch/download"
	"github.com/koffeinsource/go-imgur"
	log "github.com/sirupsen/logrus"
)

const (
	clientID = "ab1802d70cb1deb"

	albumPrefix    = "https://imgur.com/a/"
	defaultAPIBase = "https://api.imgur.com/3/album/"

	hashLen = 7
)

var getHeader = http.Header{
	"Authorization": []string{"Client-ID " + clientID},
	"Referer":       []string{"https://imgur.com/"},
	"Origin":        []string{"https://imgur.com"},
	"Content-Type":  []string{"application/json"},
}

type albumInfoDataWrapper struct {
	AI      *imgur.AlbumInfo `json:"data"`
	Success bool             `json:"success"`
	Status  int              `json:"status"`
}

// Expander lists the images of imgur albums. It implements the media.Expander
// interface.
type Expander struct {
	s       *download.Store
	apiBase string
}

// NewExpander creates an expander that queries the imgur api through s.
func NewExpander(s *download.Store) *Expander {
	return &Expander{
		s:       s,
		apiBase: defaultAPIBase,
	}
}

// Expand returns the image urls of the imgur album at url=u. See
// media.Expander#Expand for API details.
func (e *Expander) Expand(ctx context.Context, u string) ([]string, error) {
	if !strings.HasPrefix(u, albumPrefix) {
		return nil, nil
	}

	hash, err := albumHash(u)
	if err != nil {
		return nil, err
	}

	return e.albumLinks(ctx, hash)
}

// albumHash extracts the album hash from an imgur album url. Albums are also
// linked as "<title-slug>-<hash>", so only the trailing characters count.
func albumHash(u string) (string, error) {
	trimmed := strings.TrimPrefix(u, albumPrefix)
	if i := strings.IndexAny(trimmed, "?#/"); i >= 0 {
		trimmed = trimmed[:i]
	}

	if len(trimmed) < hashLen {
		return "", fmt.Errorf("imgur album hash length too short: have=%d want=%d hash=%s", len(trimmed), hashLen, trimmed)
	}
	if len(trimmed) > hashLen {
		hash := trimmed[len(trimmed)-hashLen:]
		log.Debugf("removing imgur album prefix: %s --> %s", trimmed, hash)
		trimmed = hash
	}

	return trimmed, nil
}

// albumLinks queries the imgur api for the album with the given hash and
// returns the urls of all its images.
func (e *Expander) albumLinks(ctx context.Context, hash string) ([]string, error) {
	log.Debugf("scanning imgur album: %s", hash)

	b, err := e.s.Get(ctx, e.apiBase+hash, getHeader)
	if err != nil {
		return nil, err
	}

	aidw := &albumInfoDataWrapper{}
	err = json.Unmarshal(b, aidw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode album info: %w", err)
	}

	if !aidw.Success || aidw.AI == nil {
		return nil, fmt.Errorf("album info response has success=false: status=%d", aidw.Status)
	}

	var links []string
	for _, img := range aidw.AI.Images {
		if img.Link == "" {
			continue
		}
		log.Debugf("detected imgur album image link: %s", img.Link)
		links = append(links, img.Link)
	}

	if len(links) == 0 {
		return nil, fmt.Errorf("imgur album contains 0 images: hash=%s", hash)
	}

	return links, nil
}
