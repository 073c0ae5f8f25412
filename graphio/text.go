package graphio

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/katalvlaran/hamilton/search"
)

const (
	startingChar    = '$'
	graphHeaderLine = "&Graph"
)

// ReadText reads one graph from the GraphIO.c text format: scans forward
// for a line containing only "$" (skipping anything before it, so a
// stream may carry stray commentary or multiple graphs back to back),
// requires the following line to read exactly "&Graph", then a title
// line, then a vertex count and a signed-integer adjacency stream where a
// negative value starts a new vertex's neighbor list and a non-positive
// value ends it.
//
// End-of-line is autodetected per line (LF, CRLF, or bare CR), matching
// determineEOfLn's tolerance for all three conventions a GraphIO.c input
// may use, rather than bufio.Scanner's newline-only splitting.
func ReadText(r *bufio.Reader) (*search.Graph, error) {
	if err := scanHeader(r); err != nil {
		return nil, err
	}

	title, err := scanTitle(r)
	if err != nil {
		return nil, err
	}

	var n int
	if _, err := fmt.Fscan(r, &n); err != nil {
		return nil, ErrStreamMissingToken
	}

	g, err := search.NewGraph(title, n)
	if err != nil {
		return nil, err
	}

	var x int
	if _, err := fmt.Fscan(r, &x); err != nil {
		return nil, ErrStreamMissingToken
	}
	if x == 0 {
		// an all-zero first token means the stream never names vertex n
		// explicitly — treat it as if it had.
		x = -n
	}

	max := n - 1
	neighbors := make([]int, 0, max)
	for x < 0 {
		u := -x
		if _, err := fmt.Fscan(r, &x); err != nil {
			return nil, ErrStreamMissingToken
		}

		neighbors = neighbors[:0]
		for x > 0 && len(neighbors) < max {
			neighbors = append(neighbors, x)
			if _, err := fmt.Fscan(r, &x); err != nil {
				return nil, ErrStreamMissingToken
			}
		}
		g.CreateEdges(u, neighbors)
	}

	return g, nil
}

// readLine reads up to the next line terminator — "\n", "\r\n", or a bare
// "\r" — and returns the line's content with the terminator stripped.
// Grounded on determineEOfLn/TERM_LINE: GraphIO.c detects a file's EOL
// style once and holds it fixed; this reader instead detects it fresh per
// line, a strict superset of correctness for any file that (as the format
// requires) uses one EOL style throughout.
func readLine(r *bufio.Reader) (line string, err error) {
	var b strings.Builder
	for {
		c, rerr := r.ReadByte()
		if rerr != nil {
			if b.Len() > 0 {
				return b.String(), nil
			}
			return "", rerr
		}
		switch c {
		case '\n':
			return b.String(), nil
		case '\r':
			if next, perr := r.Peek(1); perr == nil && next[0] == '\n' {
				_, _ = r.Discard(1)
			}
			return b.String(), nil
		default:
			b.WriteByte(c)
		}
	}
}

// scanHeader advances r past the next line whose sole content is "$",
// skipping any preceding lines, then requires the line immediately after
// it to read exactly "&Graph" — mirrors startScan/scanHeader's two-step
// contract in GraphIO.c.
func scanHeader(r *bufio.Reader) error {
	for {
		line, err := readLine(r)
		if err != nil {
			return err
		}
		if len(line) == 1 && line[0] == startingChar {
			break
		}
	}

	line, err := readLine(r)
	if err != nil {
		return err
	}
	if line != graphHeaderLine {
		return ErrInvalidInput
	}
	return nil
}

// scanTitle reads the line following a header and truncates it to
// search.MaxTitleLength, matching scanTitle's fixed-size title buffer.
func scanTitle(r *bufio.Reader) (string, error) {
	title, err := readLine(r)
	if err != nil && title == "" {
		return "", err
	}
	if len(title) > search.MaxTitleLength {
		title = title[:search.MaxTitleLength]
	}
	return title, nil
}
