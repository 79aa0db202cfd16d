package intcode

import (
	"context"

	"github.com/jcorbin/intcode/internal/panicerr"
)

// State is a program's execution state.
type State int

// Program states; Terminated is final.
const (
	Running State = iota
	Terminated
)

func (state State) String() string {
	switch state {
	case Running:
		return "running"
	case Terminated:
		return "terminated"
	default:
		return "invalid"
	}
}

// Program is a machine executing the code held in its own Tape.
//
// Its three run methods differ only in where they return control to the
// caller. All state lives in the Program, so a caller may resume execution by
// simply calling a run method again. Any error is fatal to the program: pc
// and memory are left as they were at the point of failure.
//
// Once a program has terminated, any further run call returns immediately
// with no output and no error.
type Program struct {
	logging

	tape  *Tape
	pc    int64
	state State
	steps uint64
}

// Run executes until the program terminates, returning all output produced.
func (p *Program) Run(ctx context.Context, in *Queue) ([]int64, error) {
	return p.run(ctx, in, untilHalt)
}

// RunToNextOutput executes until the program produces an output value, which
// is returned with ok set, or terminates without producing one.
func (p *Program) RunToNextOutput(ctx context.Context, in *Queue) (value int64, ok bool, _ error) {
	out, err := p.run(ctx, in, untilOutput)
	if i := len(out) - 1; i >= 0 {
		value, ok = out[i], true
	}
	return value, ok, err
}

// RunToNextInput executes until the program terminates or would execute an
// input instruction while in is empty. In the latter case the instruction is
// left unexecuted, so that the caller may supply input and call again.
// Returns all output produced during the call.
func (p *Program) RunToNextInput(ctx context.Context, in *Queue) ([]int64, error) {
	return p.run(ctx, in, untilInput)
}

// State returns the program's execution state.
func (p *Program) State() State { return p.state }

// PC returns the address of the next instruction to execute.
func (p *Program) PC() int64 { return p.pc }

// Steps returns the number of instructions executed so far.
func (p *Program) Steps() uint64 { return p.steps }

// Tape returns the program's memory.
func (p *Program) Tape() *Tape { return p.tape }

// SetMemoryValue pokes a memory cell, typically before the first run.
func (p *Program) SetMemoryValue(addr, value int64) error {
	return p.tape.Stor(addr, value)
}

// MemoryValue peeks a memory cell.
func (p *Program) MemoryValue(addr int64) (int64, error) {
	return p.tape.Load(addr)
}

type runUntil int

const (
	untilHalt runUntil = iota
	untilOutput
	untilInput
)

func (p *Program) run(ctx context.Context, in *Queue, until runUntil) (out []int64, err error) {
	if p.state == Terminated {
		return nil, nil
	}

	if p.logfn != nil {
		defer func(start uint64) {
			p.logf("ran %v instruction(s)", p.steps-start)
		}(p.steps)
	}

	err = panicerr.Recover("intcode", func() error {
		for {
			if err := ctx.Err(); err != nil {
				return err
			}

			inst, err := Decode(p.tape, p.pc)
			if err != nil {
				return err
			}

			if until == untilInput && inst.Op == OpInput && in.Len() == 0 {
				p.logf("wait @%v %v", inst.Addr, inst)
				return nil
			}

			if p.logfn != nil {
				p.logf("exec @%v %v", inst.Addr, inst)
			}
			n := len(out)
			st, err := p.exec(inst, in, &out)
			if err != nil {
				return ExecError{inst.Addr, inst.Op, err}
			}
			p.steps++

			if st.halt {
				p.state = Terminated
				p.logf("halt")
				return nil
			}
			p.pc = st.next
			p.tape.SetRelativeBase(st.relBase)

			if until == untilOutput && len(out) > n {
				return nil
			}
		}
	})
	return out, err
}

type logging struct {
	logfn func(mess string, args ...interface{})
}

func (log logging) logf(mess string, args ...interface{}) {
	if log.logfn != nil {
		log.logfn(mess, args...)
	}
}

func (log *logging) withLogPrefix(prefix string) func() {
	logfn := log.logfn
	if logfn == nil {
		return func() {}
	}
	log.logfn = func(mess string, args ...interface{}) {
		logfn(prefix+mess, args...)
	}
	return func() {
		log.logfn = logfn
	}
}
