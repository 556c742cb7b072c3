package gemtext

import "strings"

const fenceMarker = "```"

// FenceTracker tracks preformatted regions bounded by fence markers. It is
// the only owner of the in-region flag.
type FenceTracker struct {
	inPre bool
}

// Track consumes one raw line. A line whose first three characters are the
// fence marker toggles the region flag and is consumed (fence=true); every
// other line passes through tagged with the current flag. An odd number of
// fences simply leaves the tracker inside a region at end of input.
func (t *FenceTracker) Track(raw string) (pre, fence bool) {
	if strings.HasPrefix(raw, fenceMarker) {
		t.inPre = !t.inPre
		return false, true
	}
	return t.inPre, false
}
