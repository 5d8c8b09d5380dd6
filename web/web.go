package web

import (
	"html"
	"net/url"
	"strings"
)

// BuildGallery constructs an html web page displaying images with the given
// filenames. Filenames are relative to the page's directory.
func BuildGallery(title string, filenames []string) string {
	sb := strings.Builder{}

	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	sb.WriteString("<meta charset=\"utf-8\">\n")
	sb.WriteString("<title>" + html.EscapeString(title) + "</title>\n")
	sb.WriteString("</head>\n<body>\n")

	for _, f := range filenames {
		src := html.EscapeString((&url.URL{Path: f}).EscapedPath())
		alt := html.EscapeString(f)
		sb.WriteString("<img src=\"" + src + "\" alt=\"" + alt + "\" style=\"max-width:100%\">\n")
	}

	sb.WriteString("</body>\n</html>\n")

	return sb.String()
}
