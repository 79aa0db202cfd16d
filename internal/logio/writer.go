// Package logio adapts line oriented byte streams to printf-style logging
// functions, like testing.T.Logf or a zap SugaredLogger method.
package logio

import (
	"bytes"
	"sync"
)

// Writer implements an io.Writer around a formatted logging function.
// It also satisfies zapcore.WriteSyncer, so that a zap logger may be pointed
// at a test's log.
type Writer struct {
	Logf   func(string, ...interface{})
	Prefix string

	mu  sync.Mutex
	buf bytes.Buffer
}

// Write buffers p, then passes any completed lines through Logf, all while
// holding a lock so that it's safe to write from multiple goroutines.
func (lw *Writer) Write(p []byte) (n int, err error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	lw.buf.Write(p)
	lw.flushLines(false)
	return len(p), nil
}

// Sync passes any incomplete final line through Logf.
func (lw *Writer) Sync() error {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	lw.flushLines(true)
	return nil
}

// Close calls Sync.
func (lw *Writer) Close() error {
	return lw.Sync()
}

func (lw *Writer) flushLines(all bool) {
	for lw.buf.Len() > 0 {
		line := lw.buf.Bytes()
		i := bytes.IndexByte(line, '\n')
		switch {
		case i >= 0:
			line = line[:i]
		case !all:
			return
		}
		lw.Logf("%s%s", lw.Prefix, line)
		lw.buf.Next(len(line))
		if i >= 0 {
			lw.buf.Next(1)
		}
	}
}
