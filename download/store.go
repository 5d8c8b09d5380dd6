package download

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	"github.com/ccollins476ad/imgfetch/fileutil"
	log "github.com/sirupsen/logrus"
)

const (
	// DefaultDir is the destination directory used when none is configured.
	DefaultDir = "Fetched_Images"

	// DefaultTimeout bounds each GET, including reading the response body.
	DefaultTimeout = 10 * time.Second

	// UserAgent identifies every request the store sends.
	UserAgent = "Ubuntu-Image-Fetcher/1.0"
)

// Store downloads media files into a destination directory.
type Store struct {
	destDir string        // constant
	timeout time.Duration // constant

	hc *http.Client

	ownersMtx sync.Mutex        // Protects the "owners" field.
	owners    map[string]string // filename -> url that wrote it this run.
}

// Desc describes a media file.
type Desc struct {
	Filename string // Relative to destination directory
	Path     string // Destination directory joined with Filename
	IsLocal  bool   // True if file already downloaded
}

// NewStore creates a store that saves files into destDir. A zero timeout
// selects DefaultTimeout.
func NewStore(destDir string, timeout time.Duration) *Store {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Store{
		destDir: destDir,
		timeout: timeout,
		hc:      &http.Client{},
		owners:  map[string]string{},
	}
}

// DestDir returns the store's destination directory.
func (s *Store) DestDir() string {
	return s.destDir
}

// Get performs an http GET with url=u, bounded by the store's timeout, and
// returns the full response body. The request identifies itself with
// UserAgent unless header specifies otherwise.
func (s *Store) Get(ctx context.Context, u string, header http.Header) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	h := header.Clone()
	if h == nil {
		h = http.Header{}
	}
	if h.Get("User-Agent") == "" {
		h.Set("User-Agent", UserAgent)
	}

	return Get(ctx, s.hc, u, h)
}

// EvaluateURL returns a descriptor for the media file that the given url
// points to. It does not download anything. The `IsLocal` field in the
// descriptor is true if a file with the resolved name is already on disk.
func (s *Store) EvaluateURL(u string) *Desc {
	filename := ResolveFilename(u)
	destPath := filepath.Join(s.destDir, filename)

	return &Desc{
		Filename: filename,
		Path:     destPath,
		IsLocal:  fileutil.FileExists(destPath),
	}
}

// SaveFile writes b to the given path, relative to the destination directory.
func (s *Store) SaveFile(relPath string, b []byte) error {
	destPath := filepath.Join(s.destDir, relPath)
	log.Debugf("writing %d bytes: %s", len(b), destPath)
	return fileutil.WriteFileAtomic(destPath, b, 0644)
}

// Fetch retrieves the media file at url=u and saves it to the destination
// directory, creating the directory if necessary. It is a no-op that appears
// successful if a file with the destination path already exists; the
// existing file is never overwritten or compared. All failures are reported
// through the returned Result. Transport failures carry a *TransportError.
func (s *Store) Fetch(ctx context.Context, u string) Result {
	res := Result{URL: u}

	err := fileutil.EnsureDir(s.destDir)
	if err != nil {
		res.Err = fmt.Errorf("failed to create destination directory: %w", err)
		return res
	}

	b, err := s.Get(ctx, u, nil)
	if err != nil {
		res.Err = &TransportError{URL: u, Err: err}
		return res
	}

	desc := s.EvaluateURL(u)
	res.Filename = desc.Filename

	if desc.IsLocal {
		log.Debugf("skipping %s: file already exists: %s", u, desc.Path)
		s.checkOwner(desc.Filename, u)
		res.Path = desc.Path
		res.Existed = true
		return res
	}

	err = s.SaveFile(desc.Filename, b)
	if err != nil {
		res.Err = fmt.Errorf("failed to save http response: %w", err)
		return res
	}
	s.claim(desc.Filename, u)

	res.Path = desc.Path
	return res
}

// claim records u as the url that produced the given file.
func (s *Store) claim(filename string, u string) {
	s.ownersMtx.Lock()
	defer s.ownersMtx.Unlock()

	if _, ok := s.owners[filename]; !ok {
		s.owners[filename] = u
	}
}

// checkOwner warns if the given existing file was written earlier in this run
// by a url other than u. Such a url is still skipped, even though its
// content may differ.
func (s *Store) checkOwner(filename string, u string) {
	s.ownersMtx.Lock()
	owner, ok := s.owners[filename]
	s.ownersMtx.Unlock()

	if ok && owner != u {
		log.WithFields(log.Fields{
			"filename": filename,
			"url":      u,
			"owner":    owner,
		}).Warn("filename collision: skipping url whose file was written by a different url")
	}
}
