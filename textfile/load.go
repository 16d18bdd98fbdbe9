package textfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/guiguan/caster"
	"github.com/npillmayer/treaps"
)

/*
BSD 3-Clause License

Copyright (c) 2020–26, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Some constants for fragment size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 102400
	oneMb     = 1048576
)

// ErrNotRegular is returned when trying to load something other than a
// regular file.
var ErrNotRegular = errors.New("textfile: not a regular file")

// Progress is called while a file is loading, with the number of bytes
// loaded so far and the size of the file.
type Progress func(loaded, total int64)

// fragment is a run of lines of a text file.
type fragment struct {
	lines []string
	pos   int64 // start position of this fragment within the file
	size  int64 // length of this fragment in bytes
	last  bool  // last fragment of the file
	err   error // I/O error terminating the load
}

// textFile represents an OS file which will be loaded as a sequence.
type textFile struct {
	path     string         // file name
	info     os.FileInfo    // result from Stat(path)
	file     *os.File       // file handle
	cast     *caster.Caster // broadcaster for async file loading
	fragSize int64
}

// Load reads a file, which must be a text file, and loads it as a sequence
// of lines. Every line keeps its terminating newline, thus concatenating all
// lines reproduces the file's content. Clients may indicate a recommended
// fragment length for reading, 0 lets Load use sensible defaults.
//
// Options are applied to the resulting sequence.
func Load(name string, fragSize int64, opts ...treaps.Option) (*treaps.Seq[string], error) {
	return LoadWithProgress(name, fragSize, nil, opts...)
}

// LoadWithProgress is like Load, but calls progress for every fragment
// loaded. progress runs in a separate goroutine, but has returned for all
// fragments when LoadWithProgress returns.
func LoadWithProgress(name string, fragSize int64, progress Progress,
	opts ...treaps.Option) (*treaps.Seq[string], error) {
	//
	tf, err := openFile(name)
	if err != nil {
		return nil, err
	}
	defer tf.file.Close()
	tf.fragSize = defaultFragSize(tf.info.Size(), fragSize)
	ctx := context.Background()
	tf.cast = caster.New(ctx) // we will broadcast messages when fragments are loaded
	//
	frags, ok := tf.cast.Sub(ctx, 16)
	if !ok {
		tf.cast.Close()
		return nil, fmt.Errorf("textfile: cannot subscribe to loader of %s", name)
	}
	observed := make(chan struct{})
	if progress != nil {
		pch, ok := tf.cast.Sub(ctx, 16)
		if !ok {
			tf.cast.Close()
			return nil, fmt.Errorf("textfile: cannot subscribe to loader of %s", name)
		}
		go observe(pch, tf.info.Size(), progress, observed)
	} else {
		close(observed)
	}
	go tf.loadAllFragments()
	//
	b := treaps.NewBuilder[string](opts...)
	var loadErr error
	for msg := range frags {
		frag := msg.(*fragment)
		if frag.err != nil {
			loadErr = frag.err
		} else if err := b.Append(frag.lines...); err != nil {
			loadErr = err
		}
		if frag.last {
			break
		}
	}
	<-observed
	tf.cast.Close()
	if loadErr != nil {
		tracer().Errorf("textfile: loading %s: %v", name, loadErr)
		return nil, fmt.Errorf("textfile: loading %s: %w", name, loadErr)
	}
	seq := b.Seq()
	tracer().Debugf("textfile: loaded %d lines from %s", seq.Size(), name)
	return seq, nil
}

func defaultFragSize(size int64, fragSize int64) int64 {
	if fragSize > 0 && fragSize <= tenKb {
		return fragSize
	}
	switch {
	case size < 1024:
		return 64
	case size < tenKb:
		return 256
	case size < hundredKb:
		return 512
	case size < oneMb:
		return twoKb
	}
	return sixKb
}

// openFile opens an OS file and collects some useful information on it,
// checking for error conditions.
func openFile(name string) (*textFile, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegular, name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	return &textFile{
		path: name,
		info: fi,
		file: file,
	}, nil
}

// --- File loading goroutine ------------------------------------------------

// loadAllFragments reads lines until a fragment of at least fragSize bytes is
// complete and publishes it. The last fragment is flagged, also in case of an
// error.
func (tf *textFile) loadAllFragments() {
	r := bufio.NewReader(tf.file)
	frag := &fragment{}
	for {
		line, err := r.ReadString('\n')
		if len(line) > 0 {
			frag.lines = append(frag.lines, line)
			frag.size += int64(len(line))
		}
		if err != nil {
			frag.last = true
			if err != io.EOF {
				frag.err = err
			}
			tf.cast.Pub(frag)
			return
		}
		if frag.size >= tf.fragSize {
			if !tf.cast.Pub(frag) {
				return // caster closed, nobody listening any more
			}
			frag = &fragment{pos: frag.pos + frag.size}
		}
	}
}

func observe(ch chan interface{}, total int64, progress Progress, done chan<- struct{}) {
	defer close(done)
	for msg := range ch {
		frag := msg.(*fragment)
		progress(frag.pos+frag.size, total)
		if frag.last {
			return
		}
	}
}
