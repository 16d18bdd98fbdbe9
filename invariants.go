package treaps

import "fmt"

// check validates the structural invariants of a treap.
//
// If inOrder is non-nil, it is called for every pair of in-order neighbours
// and has to report whether they are in strictly ascending order.
func (t *tree[P]) check(inOrder func(a, b P) bool) error {
	if t.root == nil {
		return nil
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root has a parent", ErrInvariant)
	}
	if t.root.owner != t {
		return fmt.Errorf("%w: root is not owned by its container", ErrInvariant)
	}
	var prev *node[P]
	_, err := checkNode(t.root, func(n *node[P]) error {
		if inOrder != nil && prev != nil && !inOrder(prev.payload, n.payload) {
			return fmt.Errorf("%w: elements out of order", ErrInvariant)
		}
		prev = n
		return nil
	})
	if err != nil {
		tracer().Errorf("treap check: %s", err.Error())
	}
	return err
}

// checkNode recursively checks sizes, parent links and heap order of a
// sub-tree, calling visit for every node in in-order. It returns the number
// of nodes it found.
func checkNode[P any](n *node[P], visit func(*node[P]) error) (int, error) {
	if n == nil {
		return 0, nil
	}
	count := 1
	for i, child := range [2]*node[P]{n.left, n.right} {
		if child == nil {
			if i == 0 {
				if err := visit(n); err != nil {
					return 0, err
				}
			}
			continue
		}
		if child.parent != n {
			return 0, fmt.Errorf("%w: broken parent link", ErrInvariant)
		}
		if child.priority > n.priority {
			return 0, fmt.Errorf("%w: heap order violated (%d > %d)", ErrInvariant,
				child.priority, n.priority)
		}
		c, err := checkNode(child, visit)
		if err != nil {
			return 0, err
		}
		count += c
		if i == 0 {
			if err := visit(n); err != nil {
				return 0, err
			}
		}
	}
	if count != n.size {
		return 0, fmt.Errorf("%w: size mismatch (%d != %d)", ErrInvariant, n.size, count)
	}
	return count, nil
}
