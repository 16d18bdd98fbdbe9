package treaps

/*
BSD 3-Clause License

Copyright (c) 2021–26, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// node is a node of a treap. A node owns its children, the parent link is
// a back-reference only. size caches the number of nodes in the sub-tree
// rooted at this node.
//
// owner is meaningful for the root node only: it references the tree
// header the root currently belongs to. Iterators use it to find their
// container after structural changes moved their node to another tree.
type node[P any] struct {
	left, right *node[P]
	parent      *node[P]
	owner       *tree[P]
	size        int
	priority    uint64
	payload     P
}

func size[P any](n *node[P]) int {
	if n == nil {
		return 0
	}
	return n.size
}

func (n *node[P]) update() {
	n.size = 1 + size(n.left) + size(n.right)
}

func (n *node[P]) setLeft(child *node[P]) {
	n.left = child
	if child != nil {
		child.parent = n
	}
}

func (n *node[P]) setRight(child *node[P]) {
	n.right = child
	if child != nil {
		child.parent = n
	}
}

// unlink clears all links of a node which has been removed from its tree.
func (n *node[P]) unlink() {
	n.left, n.right, n.parent, n.owner = nil, nil, nil, nil
	n.size = 1
}

// replaceChild puts n in place of old at old's parent, or returns false if
// old has been a root.
func replaceChild[P any](old, n *node[P]) bool {
	p := old.parent
	if p == nil {
		return false
	}
	if p.left == old {
		p.setLeft(n)
	} else {
		p.setRight(n)
	}
	return true
}

// --- Structural primitives -------------------------------------------------

// merge joins two treaps, where all the elements of left precede all the
// elements of right. The root with the higher priority becomes the new root,
// on equal priorities the right root wins.
//
// The parent link of the resulting root is not touched; callers either
// attach the result as a child or install it as a root.
func merge[P any](left, right *node[P]) *node[P] {
	if left == nil {
		return right
	}
	if right == nil {
		return left
	}
	if left.priority > right.priority {
		left.setRight(merge(left.right, right))
		left.update()
		return left
	}
	right.setLeft(merge(left, right.left))
	right.update()
	return right
}

// splitAt cuts a treap into the first k elements and the rest.
// k is clamped to the size of the tree.
//
// As with merge, the parent links of the two resulting roots are left for
// the caller to fix.
func splitAt[P any](n *node[P], k int) (*node[P], *node[P]) {
	if n == nil {
		return nil, nil
	}
	if size(n.left) < k {
		l, r := splitAt(n.right, k-size(n.left)-1)
		n.setRight(l)
		n.update()
		return n, r
	}
	l, r := splitAt(n.left, k)
	n.setLeft(r)
	n.update()
	return l, n
}

// splitBy cuts a treap into the elements for which goLeft holds and the
// rest. goLeft has to be monotone with respect to in-order: once it reports
// false, it has to report false for all subsequent elements.
func splitBy[P any](n *node[P], goLeft func(P) bool) (*node[P], *node[P]) {
	if n == nil {
		return nil, nil
	}
	if goLeft(n.payload) {
		l, r := splitBy(n.right, goLeft)
		n.setRight(l)
		n.update()
		return n, r
	}
	l, r := splitBy(n.left, goLeft)
	n.setLeft(r)
	n.update()
	return l, n
}

// --- Navigation ------------------------------------------------------------

func leftmost[P any](n *node[P]) *node[P] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

func rightmost[P any](n *node[P]) *node[P] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

// successor returns the in-order successor of n. If n is the last node of its
// tree, successor returns nil together with the root of the tree.
func successor[P any](n *node[P]) (next *node[P], root *node[P]) {
	if n.right != nil {
		return leftmost(n.right), nil
	}
	for n.parent != nil {
		if n.parent.left == n {
			return n.parent, nil
		}
		n = n.parent
	}
	return nil, n
}

// predecessor returns the in-order predecessor of n, or nil if n is the first
// node of its tree.
func predecessor[P any](n *node[P]) *node[P] {
	if n.left != nil {
		return rightmost(n.left)
	}
	for n.parent != nil {
		if n.parent.right == n {
			return n.parent
		}
		n = n.parent
	}
	return nil
}

// rank returns the 1-based in-order position of n within its tree, together
// with the tree's root.
func rank[P any](n *node[P]) (int, *node[P]) {
	r := size(n.left) + 1
	for n.parent != nil {
		if n.parent.right == n {
			r += size(n.parent.left) + 1
		}
		n = n.parent
	}
	return r, n
}

// nth returns the node at 0-based position i, or nil if i is out of range.
func nth[P any](n *node[P], i int) *node[P] {
	for n != nil {
		l := size(n.left)
		switch {
		case i < l:
			n = n.left
		case i == l:
			return n
		default:
			i -= l + 1
			n = n.right
		}
	}
	return nil
}

func height[P any](n *node[P]) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}

// clone deep-copies a sub-tree, keeping shape and priorities.
func clone[P any](n *node[P]) *node[P] {
	if n == nil {
		return nil
	}
	c := &node[P]{size: n.size, priority: n.priority, payload: n.payload}
	c.setLeft(clone(n.left))
	c.setRight(clone(n.right))
	return c
}
