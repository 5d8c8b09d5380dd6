package download

import (
	"regexp"
	"strings"
	"testing"
)

func TestResolveFilename(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://a.test/x.jpg", "x.jpg"},
		{"https://example.com/images/cat.png", "cat.png"},
		{"https://example.com/images/cat.png?size=large#top", "cat.png"},
		{"a.test/img/dog.gif", "dog.gif"},
		{"https://a.test/img/a:b.png", "a_b.png"},
		{"https://a.test/img/a%3Ab.png", "a%3Ab.png"},
		{"https://a.test/a%2Fb.png", "a%2Fb.png"},
		{"https://a.test/my%20cat.png", "my%20cat.png"},
		{"https://a.test/x/" + strings.Repeat("a", 150) + ".jpg", strings.Repeat("a", 150) + ".jpg"},
		{"https://a.test/", "33cf21e73678173f96ceea309e5bd564.jpg"},
		{"https://example.com", "c984d06aafbecf6bc55569f964148ea3.jpg"},
	}

	for _, tt := range tests {
		have := ResolveFilename(tt.url)
		if have != tt.want {
			t.Errorf("ResolveFilename(%q): have=%q want=%q", tt.url, have, tt.want)
		}
	}
}

func TestResolveFilenameFallback(t *testing.T) {
	rx := regexp.MustCompile(`^[0-9a-f]{32}\.jpg$`)

	urls := []string{
		"https://example.com",
		"https://example.com/",
		"https://example.com/gallery/",
		"https://example.com/..",
		"http://[::1]:namedport", // Unparseable.
		"",
	}

	for _, u := range urls {
		first := ResolveFilename(u)
		if !rx.MatchString(first) {
			t.Errorf("ResolveFilename(%q) is not a fallback name: %q", u, first)
		}

		second := ResolveFilename(u)
		if first != second {
			t.Errorf("ResolveFilename(%q) not deterministic: first=%q second=%q", u, first, second)
		}
	}

	if ResolveFilename("https://a.test/a%2Fb.png") == ResolveFilename("https://a.test/x/b.png") {
		t.Errorf("escaped slash resolved to the same name as a real path segment")
	}

	if ResolveFilename("https://a.test/") == ResolveFilename("https://b.test/") {
		t.Errorf("distinct urls produced the same fallback name")
	}
}
