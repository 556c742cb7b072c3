// Package gemtext converts Gemtext documents into CommonMark Markdown.
//
// Conversion is a classify→group→render pipeline over the input lines:
// a FenceTracker tags lines with the preformatted-region flag, a Classifier
// turns them into typed lines, an Aggregator groups consecutive link lines
// into blocks, and each completed block is rendered and written immediately.
package gemtext

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Convert reads Gemtext from r and writes Markdown to w, one block at a
// time as blocks complete. On a malformed line it returns a
// *MalformedError carrying the 1-based line number; nothing after the
// malformed point is written. Read failures abort immediately without
// flushing pending state, since an incomplete block must not be presented
// as complete.
func Convert(r io.Reader, w io.Writer) error {
	var (
		tracker    FenceTracker
		classifier Classifier
		agg        Aggregator
	)

	emit := func(b Block) error {
		_, err := io.WriteString(w, RenderBlock(b))
		return err
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineno := 0
	for scanner.Scan() {
		lineno++
		pre, fence := tracker.Track(scanner.Text())
		if fence {
			continue
		}
		lines, cerr := classifier.Feed(pre, scanner.Text())
		for _, ln := range lines {
			for _, b := range agg.Feed(ln) {
				if err := emit(b); err != nil {
					return fmt.Errorf("write block: %w", err)
				}
			}
		}
		if cerr != nil {
			var me *MalformedError
			if errors.As(cerr, &me) {
				me.Line = lineno
			}
			return cerr
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read line %d: %w", lineno+1, err)
	}

	// Drain: an unterminated preformatted region becomes a final block, and
	// trailing links flush as one last links block.
	if ln, ok := classifier.Flush(); ok {
		for _, b := range agg.Feed(ln) {
			if err := emit(b); err != nil {
				return fmt.Errorf("write block: %w", err)
			}
		}
	}
	if b, ok := agg.Flush(); ok {
		if err := emit(b); err != nil {
			return fmt.Errorf("write block: %w", err)
		}
	}
	return nil
}
