package download

import (
	"context"
	"fmt"
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"
)

// GetBody performs an http GET with url=u using the supplied client and
// header. The caller must close the returned body.
func GetBody(ctx context.Context, hc *http.Client, u string, header http.Header) (io.ReadCloser, error) {
	log.Debugf("get: %s", u)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	rsp, err := hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	if rsp.StatusCode < 200 || rsp.StatusCode >= 300 {
		rsp.Body.Close()
		return nil, fmt.Errorf("error status: %s", rsp.Status)
	}

	return rsp.Body, nil
}

// Get calls GetBody(), then reads the full response and returns the result.
// Reads are bounded by ctx.
func Get(ctx context.Context, hc *http.Client, u string, header http.Header) ([]byte, error) {
	body, err := GetBody(ctx, hc, u, header)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	b, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return b, nil
}
