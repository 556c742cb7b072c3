package gemtext

import "strings"

// HeadingLevel is the number of leading '#' markers on a heading line (1-3).
type HeadingLevel int

const (
	Level1 HeadingLevel = 1
	Level2 HeadingLevel = 2
	Level3 HeadingLevel = 3
)

// Link is one "=>" line. Caption is empty when the line carried none;
// rendering falls back to the URL in that case.
type Link struct {
	URL     string
	Caption string
}

// Heading is one well-formed heading line with the marker stripped.
type Heading struct {
	Level HeadingLevel
	Text  string
}

// LineKind discriminates classified lines.
type LineKind int

const (
	LineBlank LineKind = iota
	LineParagraph
	LineLink
	LineHeading
	LinePreformatted
)

// Line is one classified input line, or one completed preformatted run.
// Only the fields for its Kind are populated.
type Line struct {
	Kind    LineKind
	Text    string   // paragraph text, trimmed
	Link    Link     // LineLink
	Heading Heading  // LineHeading
	Pre     []string // LinePreformatted, raw lines with fences stripped
}

const (
	linkMarker = "=>"
	maxHeading = 3
)

// ClassifyLine applies the lexical rules to one non-preformatted line.
// Malformed lines return a *MalformedError with Line unset; the caller
// supplies the input line number.
func ClassifyLine(raw string) (Line, error) {
	if raw == "" {
		return Line{Kind: LineBlank}, nil
	}
	if strings.HasPrefix(raw, linkMarker) {
		return classifyLink(raw)
	}
	// Heading markers are recognized after trimming the whole line. A marker
	// preceded by whitespace therefore still counts; this does not match the
	// strictest reading of the Gemtext grammar but is the documented
	// behavior of this converter and is deliberately kept.
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "#") {
		return classifyHeading(trimmed)
	}
	return Line{Kind: LineParagraph, Text: trimmed}, nil
}

// classifyLink parses "=> url" or "=> url caption". The only well-formed
// shape is the two-character marker, exactly one space, then a non-empty
// URL; a second single space begins the caption, which may contain spaces.
func classifyLink(raw string) (Line, error) {
	fields := strings.SplitN(raw, " ", 3)
	if fields[0] != linkMarker || len(fields) < 2 || fields[1] == "" {
		return Line{}, &MalformedError{Kind: LinkSyntax}
	}
	l := Link{URL: fields[1]}
	if len(fields) == 3 {
		l.Caption = fields[2]
	}
	return Line{Kind: LineLink, Link: l}, nil
}

// classifyHeading parses a trimmed line starting with '#'. Well-formed is
// one to three markers, one space, then at least one further character.
func classifyHeading(trimmed string) (Line, error) {
	n := 0
	for n < len(trimmed) && trimmed[n] == '#' {
		n++
	}
	if n > maxHeading || n >= len(trimmed) || trimmed[n] != ' ' {
		return Line{}, &MalformedError{Kind: HeadingSyntax}
	}
	// Offset is applied to the trimmed string, after the markers and the
	// single separating space.
	return Line{Kind: LineHeading, Heading: Heading{
		Level: HeadingLevel(n),
		Text:  trimmed[n+1:],
	}}, nil
}
