package graphio

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/hamilton/search"
)

// VisitFunc is called once per graph Walk decodes, or once per decode
// failure that did not exhaust the stream (loadNextGraph's own contract:
// a malformed graph is skipped, not fatal). Returning false stops the
// walk early.
type VisitFunc func(g *search.Graph, source string, err error) bool

// Walk iterates every graph found across paths in order, handling the
// "-" convention for stdin and detecting each stream's format (text or
// legacy binary) once per file.
func Walk(paths []string, visit VisitFunc) error {
	for _, path := range paths {
		if err := walkOne(path, visit); err != nil {
			return err
		}
	}
	return nil
}

func walkOne(path string, visit VisitFunc) error {
	var f io.ReadCloser
	name := path
	if path == "-" {
		f = io.NopCloser(os.Stdin)
		name = "stdin"
	} else {
		file, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrFileReadError, err)
		}
		f = file
	}
	defer f.Close()

	r := bufio.NewReader(f)
	binFile, err := IsBinary(r)
	if err != nil {
		return err
	}

	if binFile {
		g, err := ReadBinary(r, name)
		visit(g, name, err)
		return nil
	}

	for {
		g, err := ReadText(r)
		if err == io.EOF {
			return nil
		}
		if !visit(g, name, err) {
			return nil
		}
	}
}
