package intcode

import (
	"errors"
	"fmt"
)

var (
	// ErrInputExhausted is returned when an input instruction executes while
	// the input queue is empty.
	ErrInputExhausted = errors.New("input exhausted")

	// ErrChainStalled is returned by Chain.Run when every running program is
	// waiting for input that no other program will provide.
	ErrChainStalled = errors.New("chain stalled")
)

// DecodeKind classifies a DecodeError.
type DecodeKind int

// Decode error kinds.
const (
	UnknownOpcode DecodeKind = iota + 1
	UnknownMode
	ArgCount
)

func (kind DecodeKind) String() string {
	switch kind {
	case UnknownOpcode:
		return "unknown opcode"
	case UnknownMode:
		return "unknown mode"
	case ArgCount:
		return "argument count mismatch"
	default:
		return fmt.Sprintf("DecodeKind(%d)", int(kind))
	}
}

// DecodeError indicates that the cell at Addr does not hold a valid
// instruction.
type DecodeError struct {
	Kind  DecodeKind
	Addr  int64
	Value int64
}

func (err DecodeError) Error() string {
	return fmt.Sprintf("%v %v @%v", err.Kind, err.Value, err.Addr)
}

// AddressError indicates an attempt to load or store a negative address.
type AddressError struct {
	Addr int64
	Op   string
}

func (err AddressError) Error() string {
	return fmt.Sprintf("invalid %v address %v", err.Op, err.Addr)
}

// StoreTargetError indicates an instruction whose store destination argument
// is in immediate mode.
type StoreTargetError struct{ Arg Argument }

func (err StoreTargetError) Error() string {
	return fmt.Sprintf("invalid store target %v", err.Arg)
}

// ExecError wraps any failure to execute the instruction at Addr.
type ExecError struct {
	Addr int64
	Op   Opcode
	Err  error
}

func (err ExecError) Error() string {
	return fmt.Sprintf("exec %v @%v: %v", err.Op, err.Addr, err.Err)
}

func (err ExecError) Unwrap() error { return err.Err }

// ParseError indicates a malformed token in program text.
type ParseError struct {
	Index int
	Token string
	Err   error
}

func (err ParseError) Error() string {
	return fmt.Sprintf("invalid program value #%v %q: %v", err.Index, err.Token, err.Err)
}

func (err ParseError) Unwrap() error { return err.Err }
