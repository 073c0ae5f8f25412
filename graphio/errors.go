// Package graphio reads the GraphIO.c text format (a "&Graph" header line,
// a title line, then a signed-integer adjacency-list stream) and the
// legacy GnG binary format, grounded on GraphIO.c and readGnGFile, and
// exposes a multi-file, multi-graph Walk matching loadNextGraph's
// iteration contract: a malformed graph is skipped, not fatal, and a
// "-" path means stdin.
package graphio

import "errors"

var (
	// ErrStreamMissingToken is returned when the integer token stream ends
	// before a graph's adjacency list is complete (STATUS_STREAM_MISSING_TOKEN).
	ErrStreamMissingToken = errors.New("graphio: stream ended before graph was complete")

	// ErrInvalidInput is returned when a graph's header, title, or binary
	// marker bytes do not match the expected format (STATUS_INVALID_INPUT).
	ErrInvalidInput = errors.New("graphio: invalid graph input")

	// ErrFileReadError is returned by Walk, wrapping the underlying error,
	// when a named input cannot be opened (STATUS_FILE_READ_ERROR). Errors
	// while reading an opened input are passed on unwrapped.
	ErrFileReadError = errors.New("graphio: file read error")

	// ErrTooManyVertices names a declared vertex count above
	// search.MaxVertices. The readers in this package do not return it:
	// such a count surfaces as search.ErrTooManyVertices from
	// search.NewGraph.
	ErrTooManyVertices = errors.New("graphio: too many vertices")
)
