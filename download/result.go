package download

import "fmt"

// Result is the outcome of fetching a single url. The fetch succeeded iff Err
// is nil.
type Result struct {
	URL      string
	Filename string // Relative to the destination directory.
	Path     string // Full path of the local file. Empty on failure.
	Existed  bool   // True if the file was already on disk and left alone.
	Err      error
}

// OK returns true if the url was saved or was already present.
func (r Result) OK() bool {
	return r.Err == nil
}

// TransportError indicates that a url could not be retrieved: the host was
// unreachable, the request timed out, or the server responded with a non-2xx
// status.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("failed to fetch %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
