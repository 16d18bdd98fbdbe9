/*
Package textfile provides API helpers to load UTF-8 text files as sequences
of lines.

Loading uses an asynchronous reader internally, which publishes fragments of
lines as soon as they are read, while preserving a synchronous `Load` API.
Clients may observe the progress of loading large files.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'treaps'
func tracer() tracing.Trace {
	return tracing.Select("treaps")
}
