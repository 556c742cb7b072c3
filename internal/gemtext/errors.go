package gemtext

import "fmt"

// MalformedKind identifies which grammar a malformed line violated.
type MalformedKind string

const (
	LinkSyntax    MalformedKind = "link_syntax"
	HeadingSyntax MalformedKind = "heading_syntax"
)

// MalformedError reports a line that begins with a recognized marker but
// does not satisfy that marker's grammar. Line is the 1-based input line
// number, filled in by the conversion driver.
type MalformedError struct {
	Kind MalformedKind
	Line int
}

func (e *MalformedError) Error() string {
	what := "line"
	switch e.Kind {
	case LinkSyntax:
		what = "link line"
	case HeadingSyntax:
		what = "heading line"
	}
	return fmt.Sprintf("line %d: malformed %s", e.Line, what)
}
