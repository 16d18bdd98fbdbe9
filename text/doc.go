/*
Package text implements an editable text buffer on top of a treap sequence.

A Buffer stores text as a sequence of grapheme clusters, i.e. of
user-perceived characters. Positions are counted in grapheme clusters, which
is what users of an editor expect when moving a cursor. Insertion, deletion,
cut and paste are all O(log n) in the length of the text, plus the length of
the inserted fragment.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2021–26, Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package text

import (
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uax/grapheme"
)

// tracer writes to trace with key 'treaps'
func tracer() tracing.Trace {
	return tracing.Select("treaps")
}

var setupGraphemes sync.Once

func setup() {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
}
