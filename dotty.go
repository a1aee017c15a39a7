package gted

import (
	"fmt"
	"io"
	"strings"
)

// Mapping2Dot outputs trees a and b with the edit mapping m overlaid in
// Graphviz DOT format (for debugging purposes).
//
// Deleted nodes of a and inserted nodes of b are highlighted, matched nodes
// are connected by dashed edges. m may be nil to output the trees only.
func Mapping2Dot(a, b Tree, m *Mapping, w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	var deleted, inserted map[int]bool
	var matches []Pair
	if m != nil {
		deleted, inserted = idSet(m.Deletes()), idSet(m.Inserts())
		matches = m.Matches()
	}
	io.WriteString(w, treeCluster(a, "a", deleted))
	io.WriteString(w, treeCluster(b, "b", inserted))
	for _, p := range matches {
		x, y := p.IDs()
		fmt.Fprintf(w, "\"a%d\" -> \"b%d\" [style=dashed,color=\"#888888\",constraint=false,arrowhead=none];\n", x, y)
	}
	io.WriteString(w, "}\n")
}

func treeCluster(t Tree, prefix string, highlight map[int]bool) string {
	var nodelist, edgelist strings.Builder
	fmt.Fprintf(&nodelist, "subgraph cluster_%s {\nlabel=\"%s\";\n", prefix, dotEscape(t.Name()))
	for id := 0; id < t.Size(); id++ {
		label := fmt.Sprintf("%s\\n%d", dotEscape(t.Label(id)), id)
		styles := nodeDotStyles(t.Paired(id), highlight[id], prefix)
		fmt.Fprintf(&nodelist, "\"%s%d\" [label=\"%s\" %s];\n", prefix, id, label, styles)
		for _, ch := range t.Children(id) {
			fmt.Fprintf(&edgelist, "\"%s%d\" -> \"%s%d\";\n", prefix, id, prefix, ch)
		}
	}
	nodelist.WriteString(edgelist.String())
	nodelist.WriteString("}\n")
	return nodelist.String()
}

func nodeDotStyles(paired bool, highlight bool, prefix string) string {
	s := ",style=filled"
	if paired {
		s += ",shape=box"
	} else {
		s += ",shape=circle"
	}
	if highlight {
		s += fmt.Sprintf(",fillcolor=\"%s\"", hexhlcolors[prefix == "b"])
	} else {
		s += ",fillcolor=\"#a3d7e4\""
	}
	return s
}

// highlight colors for deleted (a) and inserted (b) nodes
var hexhlcolors = map[bool]string{false: "#FF9944", true: "#88BBFF"}

func dotEscape(s string) string {
	return strings.ReplaceAll(s, "\"", "\\\"")
}

func idSet(ids []int) map[int]bool {
	set := make(map[int]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
