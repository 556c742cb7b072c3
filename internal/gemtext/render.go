package gemtext

import "strings"

// RenderBlock renders one block as CommonMark text. It is a pure function:
// rendering the same block twice produces byte-identical output.
func RenderBlock(b Block) string {
	switch b.Kind {
	case BlockParagraph:
		return b.Text + "\n\n"
	case BlockHeading:
		return strings.Repeat("#", int(b.Heading.Level)) + " " + b.Heading.Text + "\n\n"
	case BlockPreformatted:
		return fenceMarker + "\n" + strings.Join(b.Lines, "\n") + "\n" + fenceMarker + "\n\n"
	case BlockLinks:
		return renderLinks(b.Links)
	}
	return ""
}

// renderLinks renders each link as a Markdown list item. An empty list
// renders as empty text with no trailing blank line.
func renderLinks(links []Link) string {
	if len(links) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, l := range links {
		caption := l.Caption
		if caption == "" {
			caption = l.URL
		}
		sb.WriteString("* [")
		sb.WriteString(caption)
		sb.WriteString("](")
		sb.WriteString(l.URL)
		sb.WriteString(")\n")
	}
	sb.WriteString("\n")
	return sb.String()
}
