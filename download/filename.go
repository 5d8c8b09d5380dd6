package download

import (
	"crypto/md5"
	"encoding/hex"
	"net/url"
	"path"
	"strings"

	"github.com/flytam/filenamify"
)

const (
	// FallbackExt is appended to hash-derived filenames.
	FallbackExt = ".jpg"

	maxFilenameLen = 255
)

// ResolveFilename returns the local filename for the media file at url=u. It
// is the last segment of the url's path as written in the url, percent
// escapes included, made safe for use as a filename. If the url has no usable
// basename (no path, trailing slash, unparseable), it is the hex md5 of the
// raw url followed by FallbackExt.
func ResolveFilename(u string) string {
	if base := urlBasename(u); base != "" {
		return base
	}

	sum := md5.Sum([]byte(u))
	return hex.EncodeToString(sum[:]) + FallbackExt
}

func urlBasename(u string) string {
	pu, err := url.Parse(u)
	if err != nil {
		return ""
	}

	p := pu.EscapedPath()
	if p == "" || strings.HasSuffix(p, "/") {
		return ""
	}

	base := path.Base(p)
	switch base {
	case ".", "..", "/":
		return ""
	}

	safe, err := filenamify.Filenamify(base, filenamify.Options{
		Replacement: "_",
		MaxLength:   maxFilenameLen,
	})
	if err != nil {
		return ""
	}
	return safe
}
