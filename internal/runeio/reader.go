// Package runeio provides rune oriented reading and writing, used for the
// ASCII conventions of machine I/O.
package runeio

import (
	"bufio"
	"io"
)

// Reader is an io.Reader that also supports reading runes.
type Reader interface {
	io.Reader
	io.RuneReader
}

// NewReader returns r if it is already a Reader, otherwise it wraps r in a
// bufio.Reader. Any Name() string method on r is preserved.
func NewReader(r io.Reader) Reader {
	if impl, ok := r.(Reader); ok {
		return impl
	}
	br := bufio.NewReader(r)
	if impl, ok := r.(interface{ Name() string }); ok {
		return namedRuneReader{br, impl.Name()}
	}
	return br
}

type namedRuneReader struct {
	Reader
	name string
}

func (nr namedRuneReader) Name() string { return nr.name }
