package gemtext

// BlockKind discriminates renderable blocks.
type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockHeading
	BlockLinks
	BlockPreformatted
)

// Block is a maximal run of semantically related lines, the unit of
// rendering. Blocks are never mutated after emission.
type Block struct {
	Kind    BlockKind
	Text    string   // BlockParagraph
	Heading Heading  // BlockHeading
	Links   []Link   // BlockLinks, original order
	Lines   []string // BlockPreformatted
}

// Classifier owns the buffer for the current preformatted run. Lines inside
// a region are collected verbatim; the first line after the region closes
// (or end of input) emits the whole run as one LinePreformatted record.
type Classifier struct {
	pre []string
}

// Feed consumes one (flag, raw line) pair from the fence tracker and
// returns zero, one, or two classified lines in order. When the current
// line is malformed, a preformatted run completed by it is still returned
// alongside the error: the run finished before the bad line.
func (c *Classifier) Feed(pre bool, raw string) ([]Line, error) {
	if pre {
		c.pre = append(c.pre, raw)
		return nil, nil
	}

	var out []Line
	if len(c.pre) > 0 {
		out = append(out, c.takePre())
	}
	ln, err := ClassifyLine(raw)
	if err != nil {
		return out, err
	}
	return append(out, ln), nil
}

// Flush emits the final preformatted run when input ends inside an
// unterminated region. ok is false when there is nothing buffered.
func (c *Classifier) Flush() (Line, bool) {
	if len(c.pre) == 0 {
		return Line{}, false
	}
	return c.takePre(), true
}

func (c *Classifier) takePre() Line {
	lines := c.pre
	c.pre = nil
	return Line{Kind: LinePreformatted, Pre: lines}
}

// Aggregator groups consecutive link lines into a single links block. The
// pending buffer is its only state and is cleared on every flush.
type Aggregator struct {
	links []Link
}

// Feed consumes one classified line and returns the blocks it completes, in
// emission order. A link line only accumulates; any other line flushes the
// pending links first. Empty flushes are suppressed: an empty links block
// renders as nothing, so emitting it would only complicate the contract.
func (a *Aggregator) Feed(ln Line) []Block {
	if ln.Kind == LineLink {
		a.links = append(a.links, ln.Link)
		return nil
	}

	var out []Block
	if b, ok := a.takeLinks(); ok {
		out = append(out, b)
	}
	switch ln.Kind {
	case LineBlank:
		// Flush point only.
	case LineParagraph:
		out = append(out, Block{Kind: BlockParagraph, Text: ln.Text})
	case LineHeading:
		out = append(out, Block{Kind: BlockHeading, Heading: ln.Heading})
	case LinePreformatted:
		out = append(out, Block{Kind: BlockPreformatted, Lines: ln.Pre})
	}
	return out
}

// Flush emits the trailing links block at end of input, if any.
func (a *Aggregator) Flush() (Block, bool) {
	return a.takeLinks()
}

func (a *Aggregator) takeLinks() (Block, bool) {
	if len(a.links) == 0 {
		return Block{}, false
	}
	links := a.links
	a.links = nil
	return Block{Kind: BlockLinks, Links: links}, true
}
