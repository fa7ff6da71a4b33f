package htmlutils

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// ParseDocument parses a full HTML document. An empty source yields the
// html/head/body skeleton.
func ParseDocument(source string) (*html.Node, error) {
	return html.Parse(strings.NewReader(strings.TrimSpace(source)))
}

func Render(node *html.Node) string {
	var buf bytes.Buffer
	html.Render(&buf, node)
	return buf.String()
}

// RenderChildren renders the children of node, like innerHTML.
func RenderChildren(node *html.Node) string {
	var buf bytes.Buffer
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		html.Render(&buf, c)
	}

	return buf.String()
}
