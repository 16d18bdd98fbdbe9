package treaps

import (
	"fmt"
	"io"
	"iter"
)

// Seq2Dot outputs the internal structure of a sequence in Graphviz DOT format
// (for debugging purposes). Nodes show the element, the sub-tree size and
// the priority.
func Seq2Dot[T any](s *Seq[T], w io.Writer) error {
	return nodes2Dot(s.Nodes(), w)
}

// Map2Dot outputs the internal structure of a map in Graphviz DOT format
// (for debugging purposes).
func Map2Dot[K, V any](m *Map[K, V], w io.Writer) error {
	return nodes2Dot(m.Nodes(), w)
}

func nodes2Dot(nodes iter.Seq[NodeInfo], w io.Writer) error {
	var infos []NodeInfo
	for info := range nodes {
		infos = append(infos, info)
	}
	hasLeft := make([]bool, len(infos))
	hasRight := make([]bool, len(infos))
	for _, info := range infos {
		if info.Parent < 0 {
			continue
		}
		if info.Index < info.Parent {
			hasLeft[info.Parent] = true
		} else {
			hasRight[info.Parent] = true
		}
	}
	nodelist, edgelist := "", ""
	nilid := len(infos) + 10000
	emptyChild := func(id int) {
		nodelist += fmt.Sprintf("\"%d\" %s;\n", nilid, emptyNode(nilid))
		edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", id, nilid)
		nilid++
	}
	for _, info := range infos {
		label := fmt.Sprintf("%s\\n%d / %04x", escapeDot(info.Label), info.Size,
			info.Priority>>48)
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", info.Index, label,
			nodeDotStyles(info.Depth, info.Size == 1))
		if info.Parent >= 0 {
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", info.Parent, info.Index)
		}
		if info.Size > 1 {
			if !hasLeft[info.Index] {
				emptyChild(info.Index)
			}
			if !hasRight[info.Index] {
				emptyChild(info.Index)
			}
		}
	}
	parts := []string{
		"strict digraph {\n",
		"\tnode [fontname=Arial,fontsize=12];\n",
		nodelist,
		edgelist,
		"}\n",
	}
	for _, part := range parts {
		if _, err := io.WriteString(w, part); err != nil {
			tracer().Errorf("treap DOT: %s", err.Error())
			return err
		}
	}
	return nil
}

func emptyNode(id int) string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles(depth int, isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,shape=ellipse"
	}
	s += fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[min(depth, len(hexcolors)-1)])
	return s
}

func escapeDot(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '"' || r == '\\' {
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}

var hexcolors = [...]string{"white", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}
