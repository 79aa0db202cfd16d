package intcode

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// New creates a program running a private copy of tape.
func New(tape *Tape, opts ...Option) *Program {
	p := &Program{tape: tape.Clone()}
	options(opts).apply(p)
	return p
}

// Parse creates a program from comma separated program text.
func Parse(text string, opts ...Option) (*Program, error) {
	tape, err := ParseTape(text)
	if err != nil {
		return nil, err
	}
	p := &Program{tape: tape}
	options(opts).apply(p)
	return p, nil
}

// Load creates a program from a file containing program text.
func Load(path string, opts ...Option) (*Program, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p, err := Parse(string(text), opts...)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}
	return p, nil
}

// ParseTape creates a tape from comma separated program text.
func ParseTape(text string) (*Tape, error) {
	program, err := ParseInts(text)
	if err != nil {
		return nil, err
	}
	return NewTape(program), nil
}

// ParseInts parses comma separated base 10 integers, like "1,0,-3,99".
// Space around each value is ignored, as is a trailing empty value.
func ParseInts(text string) ([]int64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	tokens := strings.Split(text, ",")
	if last := len(tokens) - 1; last > 0 && strings.TrimSpace(tokens[last]) == "" {
		tokens = tokens[:last]
	}
	values := make([]int64, len(tokens))
	for i, token := range tokens {
		token = strings.TrimSpace(token)
		val, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return nil, ParseError{i, token, err}
		}
		values[i] = val
	}
	return values, nil
}

// WithLogf enables trace logging of every executed instruction and store.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }

// WithMemLimit bounds memory: any address at or past limit fails to load or
// store. Zero means unbounded, the default.
func WithMemLimit(limit uint64) Option { return memLimitOption(limit) }

// WithPageSize sets the size of newly allocated memory pages.
func WithPageSize(size uint64) Option { return pageSizeOption(size) }
