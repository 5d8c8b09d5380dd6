package web

import (
	"net/url"

	"golang.org/x/net/html"
)

// ForEachNode applies a function to the given node and each of its
// descendants, depth first. It stops at the first error.
func ForEachNode(node *html.Node, fn func(n *html.Node) error) error {
	err := fn(node)
	if err != nil {
		return err
	}

	for c := node.FirstChild; c != nil; c = c.NextSibling {
		err := ForEachNode(c, fn)
		if err != nil {
			return err
		}
	}

	return nil
}

// Attr returns the value of the named attribute of n, or "" if n lacks it.
func Attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// NodesWithDataVal returns a slice of all descendant element nodes whose
// "data" field (tag name) has the given value.
func NodesWithDataVal(node *html.Node, dataName string) []*html.Node {
	var nodes []*html.Node

	ForEachNode(node, func(n *html.Node) error {
		if n.Type == html.ElementNode && n.Data == dataName {
			nodes = append(nodes, n)
		}
		return nil
	})

	return nodes
}

// EmbeddedImageURLs returns the urls of all images embedded in the given html
// document, in document order, without duplicates. Relative urls are
// resolved against base. Only http and https urls are returned.
func EmbeddedImageURLs(doc *html.Node, base *url.URL) []string {
	var urls []string
	seen := map[string]struct{}{}

	for _, n := range NodesWithDataVal(doc, "img") {
		src := Attr(n, "src")
		if src == "" {
			continue
		}

		ref, err := url.Parse(src)
		if err != nil {
			continue
		}
		if base != nil {
			ref = base.ResolveReference(ref)
		}
		if ref.Scheme != "http" && ref.Scheme != "https" {
			continue
		}

		u := ref.String()
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		urls = append(urls, u)
	}

	return urls
}
