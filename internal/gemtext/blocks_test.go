package gemtext

import (
	"reflect"
	"testing"
)

func feedAll(t *testing.T, c *Classifier, a *Aggregator, inputs []struct {
	pre bool
	raw string
}) []Block {
	t.Helper()
	var blocks []Block
	for _, in := range inputs {
		lines, err := c.Feed(in.pre, in.raw)
		if err != nil {
			t.Fatalf("feed %q: unexpected error: %v", in.raw, err)
		}
		for _, ln := range lines {
			blocks = append(blocks, a.Feed(ln)...)
		}
	}
	return blocks
}

func TestClassifierBuffersPreformattedRun(t *testing.T) {
	var c Classifier

	for _, raw := range []string{"one", "two"} {
		lines, err := c.Feed(true, raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(lines) != 0 {
			t.Fatalf("expected no emission inside region, got %d lines", len(lines))
		}
	}

	lines, err := c.Feed(false, "after")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected preformatted run + classified line, got %d", len(lines))
	}
	if lines[0].Kind != LinePreformatted || !reflect.DeepEqual(lines[0].Pre, []string{"one", "two"}) {
		t.Errorf("expected preformatted [one two], got %+v", lines[0])
	}
	if lines[1].Kind != LineParagraph || lines[1].Text != "after" {
		t.Errorf("expected paragraph %q, got %+v", "after", lines[1])
	}
}

func TestClassifierFlushEmitsUnterminatedRun(t *testing.T) {
	var c Classifier
	c.Feed(true, "dangling")

	ln, ok := c.Flush()
	if !ok {
		t.Fatal("expected flush to emit buffered run")
	}
	if ln.Kind != LinePreformatted || !reflect.DeepEqual(ln.Pre, []string{"dangling"}) {
		t.Errorf("expected preformatted [dangling], got %+v", ln)
	}
	if _, ok := c.Flush(); ok {
		t.Error("expected second flush to be empty")
	}
}

func TestAggregatorCollectsConsecutiveLinks(t *testing.T) {
	var a Aggregator

	for _, url := range []string{"a", "b", "c"} {
		if got := a.Feed(Line{Kind: LineLink, Link: Link{URL: url}}); len(got) != 0 {
			t.Fatalf("expected link line to only accumulate, got %d blocks", len(got))
		}
	}

	blocks := a.Feed(Line{Kind: LineParagraph, Text: "end"})
	if len(blocks) != 2 {
		t.Fatalf("expected links block + paragraph block, got %d", len(blocks))
	}
	if blocks[0].Kind != BlockLinks {
		t.Fatalf("expected links block first, got kind %d", blocks[0].Kind)
	}
	want := []Link{{URL: "a"}, {URL: "b"}, {URL: "c"}}
	if !reflect.DeepEqual(blocks[0].Links, want) {
		t.Errorf("expected links in original order %v, got %v", want, blocks[0].Links)
	}
	if blocks[1].Kind != BlockParagraph || blocks[1].Text != "end" {
		t.Errorf("expected paragraph %q, got %+v", "end", blocks[1])
	}
}

func TestAggregatorBlankLineSplitsLinkRuns(t *testing.T) {
	var c Classifier
	var a Aggregator
	blocks := feedAll(t, &c, &a, []struct {
		pre bool
		raw string
	}{
		{false, "=> one"},
		{false, ""},
		{false, "=> two"},
	})
	if b, ok := a.Flush(); ok {
		blocks = append(blocks, b)
	}

	if len(blocks) != 2 {
		t.Fatalf("expected two separate links blocks, got %d", len(blocks))
	}
	if blocks[0].Links[0].URL != "one" || blocks[1].Links[0].URL != "two" {
		t.Errorf("expected split runs [one] [two], got %v and %v", blocks[0].Links, blocks[1].Links)
	}
}

func TestAggregatorSuppressesEmptyLinkFlush(t *testing.T) {
	// Flush points with an empty pending buffer emit nothing. This pins the
	// chosen policy: empty links blocks are suppressed everywhere, not just
	// at end of input.
	var a Aggregator

	if got := a.Feed(Line{Kind: LineBlank}); len(got) != 0 {
		t.Errorf("expected no blocks for blank with empty buffer, got %d", len(got))
	}
	got := a.Feed(Line{Kind: LineHeading, Heading: Heading{Level: Level1, Text: "T"}})
	if len(got) != 1 || got[0].Kind != BlockHeading {
		t.Errorf("expected only the heading block, got %+v", got)
	}
	if _, ok := a.Flush(); ok {
		t.Error("expected empty flush at end of input to be suppressed")
	}
}

func TestAggregatorFlushesTrailingLinks(t *testing.T) {
	var a Aggregator
	a.Feed(Line{Kind: LineLink, Link: Link{URL: "tail"}})

	b, ok := a.Flush()
	if !ok {
		t.Fatal("expected trailing links to flush at end of input")
	}
	if b.Kind != BlockLinks || len(b.Links) != 1 || b.Links[0].URL != "tail" {
		t.Errorf("expected links block [tail], got %+v", b)
	}
}
