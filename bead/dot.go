package bead

import (
	"fmt"
	"io"
	"sort"
)

// WriteDOT writes bdd as Graphviz DOT to w, purely for diagnostics (spec
// section 6's recommended debug format). Nodes are grouped into
// rank=same clusters by variable; sinks render as boxes labelled "T" and
// the upside-down-T glyph for False; a dashed edge points to Lo, a solid
// edge to Hi. This is a direct port of toy_bdd's dot_bdd.py dump_graph.
func (b *BDD) WriteDOT(w io.Writer) error {
	layers := make(map[int][]int, b.NVars+1)
	for id := range b.Nodes {
		v := b.Var(id)
		layers[v] = append(layers[v], id)
	}
	vars := make([]int, 0, len(layers))
	for v := range layers {
		vars = append(vars, v)
	}
	sort.Ints(vars)

	lines := []string{"digraph bdd {", "\tgraph []"}
	for _, v := range vars {
		ids := layers[v]
		sort.Ints(ids)
		lines = append(lines, "\t{", "\t\trank = same;")
		for _, id := range ids {
			if b.IsSink(id) {
				label := "T"
				if id == False {
					label = "⊥"
				}
				lines = append(lines, fmt.Sprintf("\t\t%q [label=%q, shape = box];", nodeName(id), label))
			} else {
				lines = append(lines, fmt.Sprintf("\t\t%q [label=%q, shape = circle];", nodeName(id), fmt.Sprint(v)))
			}
		}
		lines = append(lines, "\t}")
	}
	for _, v := range vars {
		for _, id := range layers[v] {
			if b.IsSink(id) {
				continue
			}
			lines = append(lines,
				fmt.Sprintf("\t%q -> %q [style=dashed];", nodeName(id), nodeName(b.Low(id))),
				fmt.Sprintf("\t%q -> %q [style=solid];", nodeName(id), nodeName(b.High(id))),
			)
		}
	}
	lines = append(lines, "}")

	for _, line := range lines {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return fmt.Errorf("bead: writing DOT output: %w", err)
		}
	}
	return nil
}

func nodeName(id int) string { return fmt.Sprintf("%d", id) }
