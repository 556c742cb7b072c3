package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"golang.org/x/net/html"
)

// HTMLRenderer converts Gemtext to Markdown and feeds the result through
// goldmark, wrapping the body in a minimal HTML document titled after the
// first heading.
type HTMLRenderer struct{}

func (r *HTMLRenderer) Render(src io.Reader) ([]byte, error) {
	md, err := (&MarkdownRenderer{}).Render(src)
	if err != nil {
		return nil, err
	}

	var body bytes.Buffer
	if err := goldmark.New().Convert(md, &body); err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}

	title := Title(body.Bytes())
	if title == "" {
		title = "Converted document"
	}

	var out bytes.Buffer
	out.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>")
	out.WriteString(html.EscapeString(title))
	out.WriteString("</title>\n</head>\n<body>\n")
	out.Write(body.Bytes())
	out.WriteString("</body>\n</html>\n")
	return out.Bytes(), nil
}

func (r *HTMLRenderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Title extracts the text of the first h1-h3 element in an HTML fragment.
// It returns "" when the fragment has no heading.
func Title(fragment []byte) string {
	doc, err := html.Parse(bytes.NewReader(fragment))
	if err != nil {
		return ""
	}
	h := findHeading(doc)
	if h == nil {
		return ""
	}
	return textContent(h)
}

func findHeading(n *html.Node) *html.Node {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "h1", "h2", "h3":
			return n
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if h := findHeading(c); h != nil {
			return h
		}
	}
	return nil
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(buf.String())
}
