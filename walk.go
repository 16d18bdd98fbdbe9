package treaps

import (
	"fmt"
	"iter"
)

// NodeInfo describes a node of a treap, for debugging and visualization.
type NodeInfo struct {
	Index    int    // 0-based in-order position
	Depth    int    // depth of the node, root is at depth 0
	Size     int    // size of the sub-tree rooted at the node
	Priority uint64 // random priority of the node
	Parent   int    // in-order position of the parent, -1 for the root
	Label    string // payload formatted with %v
}

// walk visits all nodes of a treap in-order.
func walk[P any](root *node[P], label func(P) string) iter.Seq[NodeInfo] {
	return func(yield func(NodeInfo) bool) {
		index := 0
		var visit func(n *node[P], depth int, parent int) bool
		visit = func(n *node[P], depth int, parent int) bool {
			me := index + size(n.left)
			if n.left != nil && !visit(n.left, depth+1, me) {
				return false
			}
			index++
			info := NodeInfo{
				Index:    me,
				Depth:    depth,
				Size:     n.size,
				Priority: n.priority,
				Parent:   parent,
				Label:    label(n.payload),
			}
			if !yield(info) {
				return false
			}
			return n.right == nil || visit(n.right, depth+1, me)
		}
		if root != nil {
			visit(root, 0, -1)
		}
	}
}

// Nodes iterates over the nodes of the tree holding the elements of s,
// in order.
func (s *Seq[T]) Nodes() iter.Seq[NodeInfo] {
	return walk(s.t.root, func(v T) string {
		return fmt.Sprintf("%v", v)
	})
}

// Nodes iterates over the nodes of the tree holding the entries of m,
// in key order. Labels show the keys.
func (m *Map[K, V]) Nodes() iter.Seq[NodeInfo] {
	return walk(m.t.root, func(e entry[K, V]) string {
		return fmt.Sprintf("%v", e.key)
	})
}
