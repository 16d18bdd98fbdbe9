/*
Package treaps implements randomized balanced binary search trees (treaps).

Treaps

A treap is a binary tree which is a search tree with respect to its payloads
and, at the same time, a heap with respect to random priorities drawn when a
node is created. The random priorities keep the tree balanced in expectation,
without any rotations bookkeeping or colors. Every operation of this package
is composed from two structural primitives: merge, which joins two trees whose
elements are already in order, and split, which cuts a tree into the elements
before a boundary and the rest.

From a paper by Raimund Seidel and Cecilia R. Aragon, 1996:

Randomized Search Trees

Let X be a set of items each of which has associated with it a key and a
priority. […] A treap for X is a rooted binary tree with node set X that is
arranged in in-order with respect to the keys and in heap-order with respect
to the priorities. […] The expected depth of any node is O(log n).

_________________________________________________________________________

Containers

Package treaps offers two containers built on the same primitives.

Map is an ordered associative container. Its elements are ordered by keys,
either by their natural order (NewMap) or by a client-supplied comparison
(NewMapFunc).

Seq is a positional sequence. Its order is implicit from the shape of the
tree, and every node caches the size of its sub-tree, which gives O(log n)
insertion, deletion and indexing at arbitrary positions, as well as cutting,
joining and rotating whole ranges:

	Operation       |   Seq           |  Slice
	----------------+-----------------+--------
	Index           |   O(log n)      |   O(1)
	Insert          |   O(log n)      |   O(n)
	Erase           |   O(log n)      |   O(n)
	Extract range   |   O(log n)      |   O(n)
	Concatenate     |   O(log n)      |   O(n)
	Rotate range    |   O(log n)      |   O(n)
	Build           |   O(n)          |   O(n)

Both containers provide iterators which follow their node through structural
changes of the tree. An iterator stays valid until the element it points to is
erased or its container is cleared. Iterators support random access jumps and
differences in O(log n).

Randomness

Every container owns its private random generator. Creating containers with
an explicit seed (see WithSeed) makes the shapes of trees reproducible, which
is helpful for tests and benchmarks. Seeding changes the shape of a tree, never
its contents.

Containers are not safe for concurrent use.

Contract violations, i.e. positions out of range or iterators moved beyond
the bounds of their container, are checked and panic with a TreapError.
Building with tag `treaps_nocheck` removes these checks.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2021–26, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package treaps

import (
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the tracer selected by key "treaps".
func T() tracing.Trace {
	return tracing.Select("treaps")
}

func tracer() tracing.Trace {
	return T()
}
