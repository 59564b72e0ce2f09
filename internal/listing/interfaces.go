// Package listing implements two-phase ingestion of server directory
// listings. A pluggable dialect parser tokenizes a raw byte stream into
// per-file text entries, the engine buffers them, and records are
// materialized lazily through a bidirectional paging cursor.
package listing

import "bufio"

// EntryParser is the dialect-specific strategy driven by the Engine. R is
// the record type the parser produces; the engine never inspects it.
type EntryParser[R any] interface {
	// ReadNextEntry consumes enough of r to identify one complete raw entry
	// and returns it, or io.EOF once the input is exhausted. The delimiter
	// convention is parser-specific; most dialects split on line breaks.
	// An entry is never returned twice, and a returned entry is never
	// accompanied by io.EOF.
	ReadNextEntry(r *bufio.Reader) (string, error)

	// Cleanup is called exactly once per ingestion with the complete raw
	// entry buffer. Implementations may drop banner/trailer noise,
	// deduplicate repeated entries, or otherwise filter and reorder. The
	// returned slice becomes the engine's buffer; returning the argument
	// unchanged is valid.
	Cleanup(entries []string) []string

	// Materialize parses one raw entry into a record. Entries that do not
	// describe a file materialize to the parser's sentinel value (nil for
	// pointer records); the engine passes such records through unfiltered.
	// Materialize must not depend on engine state.
	Materialize(raw string) R
}
