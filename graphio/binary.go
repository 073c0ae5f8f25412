package graphio

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/katalvlaran/hamilton/search"
)

// gngMarker is the leading little-endian int16 a legacy GnG binary graph
// file starts with, distinguishing it from the text format's "&Graph"
// header line.
const gngMarker = -1

// IsBinary peeks the next two bytes of r and reports whether they match
// the legacy GnG binary marker, without consuming them — mirrors
// isGnGFile, but without that function's rewind-on-mismatch: callers keep
// reading text from the same, unconsumed buffer.
func IsBinary(r *bufio.Reader) (bool, error) {
	peek, err := r.Peek(2)
	if err != nil {
		if err == io.EOF {
			return false, nil
		}
		return false, err
	}
	return int16(binary.LittleEndian.Uint16(peek)) == gngMarker, nil
}

// ReadBinary reads one graph from the legacy GnG binary format: the -1
// marker, a 1-byte type tag (must be 1, "graph"), 3 reserved bytes, a
// 2-byte vertex count, 14 bytes of window/UI/edge-count data this engine
// has no use for, then a stream of 2-byte signed vertex/neighbor values —
// each neighbor followed by a 2-byte edge-multiplicity field this engine
// also ignores, since the format predates the simple-graph-only
// restriction this engine enforces.
func ReadBinary(r *bufio.Reader, name string) (*search.Graph, error) {
	var marker int16
	if err := binary.Read(r, binary.LittleEndian, &marker); err != nil {
		return nil, err
	}
	if marker != gngMarker {
		return nil, ErrInvalidInput
	}

	tag, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	if tag != 1 {
		return nil, ErrInvalidInput
	}

	if _, err := io.CopyN(io.Discard, r, 3); err != nil {
		return nil, err
	}

	var pts int16
	if err := binary.Read(r, binary.LittleEndian, &pts); err != nil {
		return nil, err
	}

	if _, err := io.CopyN(io.Discard, r, 14); err != nil {
		return nil, err
	}

	g, err := search.NewGraph(name, int(pts))
	if err != nil {
		return nil, err
	}

	var x int16
	if err := binary.Read(r, binary.LittleEndian, &x); err != nil {
		return nil, err
	}

	neighbors := make([]int, 0, pts)
	for x < 0 {
		u := int(-x)

		var y int16
		if err := binary.Read(r, binary.LittleEndian, &y); err != nil {
			return nil, err
		}

		neighbors = neighbors[:0]
		for y > 0 {
			neighbors = append(neighbors, int(y))
			if _, err := io.CopyN(io.Discard, r, 2); err != nil {
				return nil, err
			}
			if err := binary.Read(r, binary.LittleEndian, &y); err != nil {
				return nil, err
			}
		}
		g.CreateEdges(u, neighbors)
		x = y
	}

	return g, nil
}
