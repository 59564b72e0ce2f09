package listing

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
)

// IngestError indicates that the listing source could not be fully read.
// The partially accumulated buffer is discarded; the engine is left empty.
type IngestError struct {
	cause error
}

func (e IngestError) Error() string {
	return fmt.Sprintf("ingest listing: %s", e.cause)
}

func (e IngestError) Unwrap() error {
	return e.cause
}

// Engine buffers the raw entries of one directory listing and materializes
// them into records on demand. An engine is bound to a single parser for its
// whole lifetime and is not safe for concurrent use.
type Engine[R any] struct {
	parser  EntryParser[R]
	entries []string
	cursor  int
}

// NewEngine creates an engine bound to parser. The binding is mandatory; a
// nil parser is rejected here so that no later operation has to check.
func NewEngine[R any](parser EntryParser[R]) (*Engine[R], error) {
	if parser == nil {
		return nil, errors.New("listing: entry parser must not be nil")
	}
	return &Engine[R]{parser: parser}, nil
}

// Ingest drains src into a fresh entry buffer using the parser's tokenizer,
// then hands the completed buffer to the parser's Cleanup exactly once and
// adopts the result. The cursor is reset to the start. src is closed on both
// the success and failure paths. On failure the partial buffer is discarded
// and the engine is left empty, so callers never observe a half-read listing.
func (e *Engine[R]) Ingest(ctx context.Context, src io.ReadCloser) (err error) {
	e.entries = nil
	e.cursor = 0

	defer func() {
		if cerr := src.Close(); cerr != nil && err == nil {
			e.entries = nil
			e.cursor = 0
			err = IngestError{cause: cerr}
		}
	}()

	reader := bufio.NewReader(src)
	var entries []string
	for {
		if ctx.Err() != nil {
			return IngestError{cause: ctx.Err()}
		}
		raw, rerr := e.parser.ReadNextEntry(reader)
		if errors.Is(rerr, io.EOF) {
			break
		}
		if rerr != nil {
			return IngestError{cause: rerr}
		}
		entries = append(entries, raw)
	}

	e.entries = e.parser.Cleanup(entries)
	return nil
}

// Next materializes up to count entries starting at the cursor, advancing
// the cursor by the number of entries consumed. When fewer than count
// entries remain the result is correspondingly shorter, possibly empty; the
// transport is never touched.
func (e *Engine[R]) Next(count int) []R {
	var records []R
	for count > 0 && e.cursor < len(e.entries) {
		records = append(records, e.parser.Materialize(e.entries[e.cursor]))
		e.cursor++
		count--
	}
	return records
}

// Previous materializes up to count entries walking backward from the
// cursor, moving the cursor back by the number of entries consumed. The
// result is in the buffer's forward order, not reversed.
func (e *Engine[R]) Previous(count int) []R {
	var records []R
	for count > 0 && e.cursor > 0 {
		e.cursor--
		records = append([]R{e.parser.Materialize(e.entries[e.cursor])}, records...)
		count--
	}
	return records
}

// All materializes every buffered entry from start to end. The cursor is
// neither consulted nor moved.
func (e *Engine[R]) All() []R {
	var records []R
	for _, raw := range e.entries {
		records = append(records, e.parser.Materialize(raw))
	}
	return records
}

// HasNext reports whether the cursor is strictly before the end of the
// buffer.
func (e *Engine[R]) HasNext() bool {
	return e.cursor < len(e.entries)
}

// HasPrevious reports whether the cursor is strictly after the start of the
// buffer.
func (e *Engine[R]) HasPrevious() bool {
	return e.cursor > 0
}

// ResetCursor moves the cursor back to the start so the buffer can be
// re-walked without re-reading the transport.
func (e *Engine[R]) ResetCursor() {
	e.cursor = 0
}

// Len returns the number of buffered raw entries.
func (e *Engine[R]) Len() int {
	return len(e.entries)
}
