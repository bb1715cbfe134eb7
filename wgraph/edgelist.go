// SPDX-License-Identifier: MIT
// Package: rmwcs/wgraph
//
// edgelist.go - line-oriented text encoding of a Graph.
//
// Format (one record per line, fields separated by blanks):
//
//	# comment            ignored, as are blank lines
//	n <count>            optional vertex count (must cover every referenced id)
//	v <id> <weight>      vertex weight; unlisted vertices weigh 0
//	e <from> <to> [w]    undirected edge; weight defaults to 0
//
// Without an "n" record the vertex count is max referenced id + 1.
// Edge IDs follow the order of "e" records.

package wgraph

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadEdgeList parses a Graph from r.
//
// Errors: ErrSyntax wrapped with the offending line number; construction errors
// (ErrLoopNotAllowed, ErrBadWeight, ErrVertexOutOfRange) wrapped likewise; I/O
// errors from r as-is.
// Complexity: O(size of input).
func ReadEdgeList(r io.Reader) (*Graph, error) {
	var (
		declared = -1
		maxID    = -1
		weights  = map[int]float64{}
		edges    []EdgeSpec
		lines    []int // line number per edge, for error reporting
	)

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = strings.TrimSpace(line[:i])
		}
		if line == "" {
			continue
		}
		f := strings.Fields(line)
		switch f[0] {
		case "n":
			if len(f) != 2 {
				return nil, syntaxErr(lineNo, "want: n <count>")
			}
			c, err := strconv.Atoi(f[1])
			if err != nil || c < 0 {
				return nil, syntaxErr(lineNo, "bad vertex count %q", f[1])
			}
			declared = c
		case "v":
			if len(f) != 3 {
				return nil, syntaxErr(lineNo, "want: v <id> <weight>")
			}
			id, err := parseID(f[1])
			if err != nil {
				return nil, syntaxErr(lineNo, "%v", err)
			}
			w, err := strconv.ParseFloat(f[2], 64)
			if err != nil {
				return nil, syntaxErr(lineNo, "bad weight %q", f[2])
			}
			weights[id] = w
			maxID = max(maxID, id)
		case "e":
			if len(f) != 3 && len(f) != 4 {
				return nil, syntaxErr(lineNo, "want: e <from> <to> [weight]")
			}
			from, err := parseID(f[1])
			if err != nil {
				return nil, syntaxErr(lineNo, "%v", err)
			}
			to, err := parseID(f[2])
			if err != nil {
				return nil, syntaxErr(lineNo, "%v", err)
			}
			var w float64
			if len(f) == 4 {
				if w, err = strconv.ParseFloat(f[3], 64); err != nil {
					return nil, syntaxErr(lineNo, "bad weight %q", f[3])
				}
			}
			edges = append(edges, EdgeSpec{From: from, To: to, Weight: w})
			lines = append(lines, lineNo)
			maxID = max(maxID, from, to)
		default:
			return nil, syntaxErr(lineNo, "unknown record %q", f[0])
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	n := maxID + 1
	if declared >= 0 {
		if declared < n {
			return nil, fmt.Errorf("ReadEdgeList: n=%d but id %d referenced: %w", declared, maxID, ErrVertexOutOfRange)
		}
		n = declared
	}

	b := NewBuilder(n)
	for id, w := range weights {
		if err := b.SetVertexWeight(id, w); err != nil {
			return nil, fmt.Errorf("ReadEdgeList: %w", err)
		}
	}
	for i, es := range edges {
		if _, err := b.AddEdge(es.From, es.To, es.Weight); err != nil {
			return nil, fmt.Errorf("ReadEdgeList: line %d: %w", lines[i], err)
		}
	}
	return b.Build()
}

// WriteEdgeList writes g in the format read by ReadEdgeList: an "n" record,
// one "v" record per non-zero vertex weight and one "e" record per edge in ID
// order. Floats use the shortest round-tripping representation.
func WriteEdgeList(w io.Writer, g *Graph) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "n %d\n", g.VertexCount())
	for v, wt := range g.vertexWeights {
		if wt != 0 {
			fmt.Fprintf(bw, "v %d %s\n", v, formatFloat(wt))
		}
	}
	for _, e := range g.edges {
		fmt.Fprintf(bw, "e %d %d %s\n", e.From, e.To, formatFloat(e.Weight))
	}
	return bw.Flush()
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("bad vertex id %q", s)
	}
	return id, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func syntaxErr(line int, format string, args ...any) error {
	return fmt.Errorf("ReadEdgeList: line %d: %s: %w", line, fmt.Sprintf(format, args...), ErrSyntax)
}
