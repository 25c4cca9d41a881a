package reader

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/docsignal/outline/model"
)

// Synthetic font metrics for HTML documents. HTML carries no font sizes,
// so heading tags are mapped onto a fixed size ladder that the font
// analyzer resolves the same way it resolves real PDF sizes.
const (
	htmlBodySize    = 12.0
	htmlH1Size      = 24.0
	htmlH2Size      = 18.0
	htmlH3Size      = 15.0
	htmlLineAdvance = 14.0
)

// HTMLSource reads text fragments from an HTML document. Every block
// element becomes one fragment; h1-h3 elements get large bold synthetic
// font sizes so the downstream engine classifies them without any
// HTML-specific logic.
type HTMLSource struct {
	filename string
}

// NewHTMLSource creates a fragment source for an HTML file.
func NewHTMLSource(filename string) *HTMLSource {
	return &HTMLSource{filename: filename}
}

// Fragments returns the document's fragments in document order. HTML has
// no pagination, so everything is reported on page 1 with vertical
// positions following element order.
func (s *HTMLSource) Fragments() ([]model.TextFragment, error) {
	f, err := os.Open(s.filename)
	if err != nil {
		return nil, fmt.Errorf("open html %s: %w", s.filename, err)
	}
	defer f.Close()

	return htmlFragments(f)
}

func htmlFragments(r io.Reader) ([]model.TextFragment, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	body := findElement(doc, "body")
	if body == nil {
		body = doc
	}

	var fragments []model.TextFragment
	line := 0

	emit := func(text string, size float64, bold bool) {
		text = strings.Join(strings.Fields(text), " ")
		if text == "" {
			return
		}
		fragments = append(fragments, model.TextFragment{
			Text: text,
			Size: size,
			Bold: bold,
			Page: 1,
			Y:    float64(line) * htmlLineAdvance,
		})
		line++
	}

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript":
				return
			case "h1":
				emit(textContent(n), htmlH1Size, true)
				return
			case "h2":
				emit(textContent(n), htmlH2Size, true)
				return
			case "h3":
				emit(textContent(n), htmlH3Size, true)
				return
			case "h4", "h5", "h6":
				emit(textContent(n), htmlBodySize, true)
				return
			case "p", "li", "td", "th", "blockquote", "pre", "figcaption":
				emit(textContent(n), htmlBodySize, false)
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(body)

	return fragments, nil
}

// findElement finds the first element with the given tag name.
func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// textContent collects the concatenated text of a node's subtree.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
