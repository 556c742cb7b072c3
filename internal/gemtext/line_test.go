package gemtext

import (
	"errors"
	"testing"
)

func TestClassifyBlankLine(t *testing.T) {
	ln, err := ClassifyLine("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ln.Kind != LineBlank {
		t.Errorf("expected blank, got kind %d", ln.Kind)
	}
}

func TestClassifyParagraphTrims(t *testing.T) {
	ln, err := ClassifyLine("  plain text  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ln.Kind != LineParagraph {
		t.Fatalf("expected paragraph, got kind %d", ln.Kind)
	}
	if ln.Text != "plain text" {
		t.Errorf("expected trimmed text %q, got %q", "plain text", ln.Text)
	}
}

func TestClassifyWhitespaceOnlyLineIsParagraph(t *testing.T) {
	// Only the empty string is blank; a whitespace-only line trims to an
	// empty paragraph.
	ln, err := ClassifyLine("   ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ln.Kind != LineParagraph || ln.Text != "" {
		t.Errorf("expected empty paragraph, got kind %d text %q", ln.Kind, ln.Text)
	}
}

func TestClassifyHeadings(t *testing.T) {
	cases := []struct {
		in    string
		level HeadingLevel
		text  string
	}{
		{"# Title", Level1, "Title"},
		{"## Section", Level2, "Section"},
		{"### Sub section", Level3, "Sub section"},
		{"# Title ", Level1, "Title"},
	}
	for _, c := range cases {
		ln, err := ClassifyLine(c.in)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", c.in, err)
		}
		if ln.Kind != LineHeading {
			t.Fatalf("%q: expected heading, got kind %d", c.in, ln.Kind)
		}
		if ln.Heading.Level != c.level {
			t.Errorf("%q: expected level %d, got %d", c.in, c.level, ln.Heading.Level)
		}
		if ln.Heading.Text != c.text {
			t.Errorf("%q: expected text %q, got %q", c.in, c.text, ln.Heading.Text)
		}
	}
}

func TestClassifyHeadingLeadingWhitespaceQuirk(t *testing.T) {
	// The whole line is trimmed before the marker is counted, so a heading
	// marker preceded by whitespace is still a heading. This is a documented
	// quirk of the converter, kept deliberately; do not "fix" it here.
	ln, err := ClassifyLine("  ## Indented")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ln.Kind != LineHeading {
		t.Fatalf("expected heading, got kind %d", ln.Kind)
	}
	if ln.Heading.Level != Level2 || ln.Heading.Text != "Indented" {
		t.Errorf("expected level 2 %q, got level %d %q", "Indented", ln.Heading.Level, ln.Heading.Text)
	}
}

func TestClassifyMalformedHeadings(t *testing.T) {
	cases := []string{
		"#",
		"##",
		"###",
		"# ",
		"#### Too deep",
		"#NoSpace",
		"##x",
		"###text",
	}
	for _, in := range cases {
		_, err := ClassifyLine(in)
		var me *MalformedError
		if !errors.As(err, &me) {
			t.Fatalf("%q: expected MalformedError, got %v", in, err)
		}
		if me.Kind != HeadingSyntax {
			t.Errorf("%q: expected heading kind, got %q", in, me.Kind)
		}
	}
}

func TestClassifyLinks(t *testing.T) {
	cases := []struct {
		in      string
		url     string
		caption string
	}{
		{"=> https://example.org", "https://example.org", ""},
		{"=> https://example.org Example", "https://example.org", "Example"},
		{"=> gemini://host/path a caption with spaces", "gemini://host/path", "a caption with spaces"},
	}
	for _, c := range cases {
		ln, err := ClassifyLine(c.in)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", c.in, err)
		}
		if ln.Kind != LineLink {
			t.Fatalf("%q: expected link, got kind %d", c.in, ln.Kind)
		}
		if ln.Link.URL != c.url {
			t.Errorf("%q: expected url %q, got %q", c.in, c.url, ln.Link.URL)
		}
		if ln.Link.Caption != c.caption {
			t.Errorf("%q: expected caption %q, got %q", c.in, c.caption, ln.Link.Caption)
		}
	}
}

func TestClassifyMalformedLinks(t *testing.T) {
	cases := []string{
		"=>",
		"=> ",
		"=>no-space",
		"=>  double-space",
	}
	for _, in := range cases {
		_, err := ClassifyLine(in)
		var me *MalformedError
		if !errors.As(err, &me) {
			t.Fatalf("%q: expected MalformedError, got %v", in, err)
		}
		if me.Kind != LinkSyntax {
			t.Errorf("%q: expected link kind, got %q", in, me.Kind)
		}
	}
}

func TestClassifyLinkWithLeadingWhitespaceIsParagraph(t *testing.T) {
	// Unlike headings, the link marker is only recognized at the start of
	// the raw line.
	ln, err := ClassifyLine("  => https://example.org")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ln.Kind != LineParagraph {
		t.Errorf("expected paragraph, got kind %d", ln.Kind)
	}
}
