package media

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// Expander turns a url that points at a collection of media (an album, a web
// page) into the urls of the individual media files. Most expander
// implementations only know how to read a particular kind of collection.
type Expander interface {
	// Expand returns the urls of the media files contained in the collection
	// at url=u. It returns nil and no error if it does not recognize u. A
	// recognized collection with no media is an error.
	Expand(ctx context.Context, u string) ([]string, error)
}

// Expand offers u to each expander in turn and returns the result of the
// first one that recognizes it. If none does, it returns u unchanged.
func Expand(ctx context.Context, exps []Expander, u string) ([]string, error) {
	for _, e := range exps {
		urls, err := e.Expand(ctx, u)
		if err != nil {
			return nil, err
		}
		if urls != nil {
			log.Debugf("expanded %s into %d urls", u, len(urls))
			return urls, nil
		}
	}

	return []string{u}, nil
}
