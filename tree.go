package treaps

/*
BSD 3-Clause License

Copyright (c) 2021–26, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"math/rand/v2"
)

// DefaultSeed is the seed of a container's random generator if clients do
// not supply one.
const DefaultSeed uint64 = 5489

// second PCG word; the first one is the client's seed
const pcgStream uint64 = 0xda3e39cb94b95bdb

// Option configures a container at creation time.
type Option func(*config)

type config struct {
	seed uint64
}

// WithSeed sets the seed of the random generator of a container.
// Containers created with identical seeds and identical operation histories
// have identical shapes.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
	}
}

func configure(opts []Option) config {
	c := config{seed: DefaultSeed}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	return c
}

// tree is the header shared by Seq and Map. It holds the root of the treap
// and the generator for node priorities.
//
// The header must not be copied after first use, as the root node refers
// back to it.
type tree[P any] struct {
	root *node[P]
	rnd  *rand.PCG
}

func (t *tree[P]) init(seed uint64) {
	t.root = nil
	t.rnd = rand.NewPCG(seed, pcgStream)
}

func (t *tree[P]) len() int {
	return size(t.root)
}

// seed re-seeds the generator. Existing priorities are not touched.
func (t *tree[P]) seed(seed uint64) {
	if t.rnd == nil {
		t.rnd = rand.NewPCG(seed, pcgStream)
		return
	}
	t.rnd.Seed(seed, pcgStream)
}

func (t *tree[P]) draw() uint64 {
	if t.rnd == nil { // zero-value containers are valid
		t.rnd = rand.NewPCG(DefaultSeed, pcgStream)
	}
	return t.rnd.Uint64()
}

func (t *tree[P]) newNode(payload P) *node[P] {
	return &node[P]{
		size:     1,
		priority: t.draw(),
		payload:  payload,
	}
}

// setRoot installs n as the root of t and makes t its owner.
func (t *tree[P]) setRoot(n *node[P]) {
	t.root = n
	if n != nil {
		n.parent = nil
		n.owner = t
	}
}

// swap exchanges roots and generators of two trees.
func (t *tree[P]) swap(other *tree[P]) {
	if t == other {
		return
	}
	r, o := t.root, other.root
	t.rnd, other.rnd = other.rnd, t.rnd
	t.setRoot(o)
	other.setRoot(r)
}

// ownerOf returns the tree a node currently belongs to.
func ownerOf[P any](n *node[P]) *tree[P] {
	for n.parent != nil {
		n = n.parent
	}
	return n.owner
}

// --- Bulk construction -----------------------------------------------------

// spine builds a treap from elements arriving in order, in O(n) overall.
// It keeps the right spine of the tree built so far: every new node becomes
// the right child of the deepest spine node with a priority not lower than
// its own, and adopts the part of the spine below as its left sub-tree.
type spine[P any] struct {
	path []*node[P]
}

func (sp *spine[P]) push(n *node[P]) {
	var adopt *node[P]
	for len(sp.path) > 0 {
		last := sp.path[len(sp.path)-1]
		if last.priority >= n.priority {
			break
		}
		last.update() // sub-tree of last is complete
		adopt = last
		sp.path = sp.path[:len(sp.path)-1]
	}
	n.setLeft(adopt)
	if len(sp.path) > 0 {
		sp.path[len(sp.path)-1].setRight(n)
	}
	sp.path = append(sp.path, n)
}

// finish completes the pending sizes and returns the root.
func (sp *spine[P]) finish() *node[P] {
	if len(sp.path) == 0 {
		return nil
	}
	for i := len(sp.path) - 1; i >= 0; i-- {
		sp.path[i].update()
	}
	root := sp.path[0]
	sp.path = sp.path[:0]
	return root
}
