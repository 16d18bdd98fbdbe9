/*
Package console prints the shape of treaps to a terminal.

Trees are printed sideways, with the root at the left margin and right
sub-trees above their parents. Nodes are colored by their depth.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2021–26, Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package console

import (
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the 'treaps' key.
func T() tracing.Trace {
	return tracing.Select("treaps")
}
