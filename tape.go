package intcode

import "github.com/jcorbin/intcode/internal/mem"

// Tape is the machine's memory: an unbounded sparse space of int64 cells,
// where any address never written reads as 0, along with the relative base
// register used by relative mode arguments.
type Tape struct {
	cells   mem.Cells
	relBase int64
}

// NewTape creates a tape holding program starting at address 0.
func NewTape(program []int64) *Tape {
	var t Tape
	if err := t.cells.Stor(0, program...); err != nil {
		// unlimited memory never fails to store
		panic(err)
	}
	return &t
}

// Load returns the value at addr, or 0 if it was never written.
// Fails only for negative addresses, or those past any memory limit.
func (t *Tape) Load(addr int64) (int64, error) {
	if addr < 0 {
		return 0, AddressError{addr, "load"}
	}
	return t.cells.Load(uint64(addr))
}

// LoadInto reads len(buf) consecutive values starting at addr.
func (t *Tape) LoadInto(addr int64, buf []int64) error {
	if addr < 0 {
		return AddressError{addr, "load"}
	}
	return t.cells.LoadInto(uint64(addr), buf)
}

// Stor writes values starting at addr, growing memory as needed.
func (t *Tape) Stor(addr int64, values ...int64) error {
	if addr < 0 {
		return AddressError{addr, "stor"}
	}
	return t.cells.Stor(uint64(addr), values...)
}

// RelativeBase returns the current relative base.
func (t *Tape) RelativeBase() int64 { return t.relBase }

// SetRelativeBase sets the relative base.
func (t *Tape) SetRelativeBase(base int64) { t.relBase = base }

// Len returns an address one past the highest memory cell allocated so far;
// every address at or beyond Len reads as 0.
func (t *Tape) Len() int64 { return int64(t.cells.Size()) }

// Clone returns an independent copy of the tape.
func (t *Tape) Clone() *Tape {
	return &Tape{
		cells:   *t.cells.Clone(),
		relBase: t.relBase,
	}
}

// runs calls f with every allocated page of memory, in address order.
func (t *Tape) runs(f func(base int64, values []int64)) {
	t.cells.Each(func(base uint64, page []int64) bool {
		f(int64(base), page)
		return true
	})
}
