package gemtext

import "testing"

func TestRenderParagraphBlock(t *testing.T) {
	got := RenderBlock(Block{Kind: BlockParagraph, Text: "plain text"})
	if got != "plain text\n\n" {
		t.Errorf("expected %q, got %q", "plain text\n\n", got)
	}
}

func TestRenderHeadingBlocks(t *testing.T) {
	cases := []struct {
		level HeadingLevel
		text  string
		want  string
	}{
		{Level1, "Title", "# Title\n\n"},
		{Level2, "Section", "## Section\n\n"},
		{Level3, "Sub", "### Sub\n\n"},
	}
	for _, c := range cases {
		got := RenderBlock(Block{Kind: BlockHeading, Heading: Heading{Level: c.level, Text: c.text}})
		if got != c.want {
			t.Errorf("level %d: expected %q, got %q", c.level, c.want, got)
		}
	}
}

func TestRenderPreformattedBlock(t *testing.T) {
	got := RenderBlock(Block{Kind: BlockPreformatted, Lines: []string{"a", "  b"}})
	want := "```\na\n  b\n```\n\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRenderLinksBlock(t *testing.T) {
	got := RenderBlock(Block{Kind: BlockLinks, Links: []Link{
		{URL: "https://example.org", Caption: "Example"},
		{URL: "gemini://host/"},
	}})
	want := "* [Example](https://example.org)\n* [gemini://host/](gemini://host/)\n\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRenderEmptyLinksBlock(t *testing.T) {
	if got := RenderBlock(Block{Kind: BlockLinks}); got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}

func TestRenderIsPure(t *testing.T) {
	b := Block{Kind: BlockLinks, Links: []Link{{URL: "u", Caption: "c"}}}
	first := RenderBlock(b)
	second := RenderBlock(b)
	if first != second {
		t.Errorf("expected byte-identical re-render, got %q then %q", first, second)
	}
}
