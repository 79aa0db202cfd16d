package intcode

// step is the outcome of executing one instruction.
type step struct {
	next    int64
	relBase int64
	halt    bool
}

// exec applies one instruction's effects, appending any output value to out.
// The relative base is returned in the step result rather than applied, so
// that a failed instruction leaves it untouched.
func (p *Program) exec(inst Instruction, in *Queue, out *[]int64) (step, error) {
	st := step{
		next:    inst.Addr + inst.Size(),
		relBase: p.tape.RelativeBase(),
	}
	args := inst.Args

	switch inst.Op {
	case OpAdd:
		a, b, err := p.loadPair(args)
		if err != nil {
			return st, err
		}
		return st, p.storArg(args[2], a+b)

	case OpMultiply:
		a, b, err := p.loadPair(args)
		if err != nil {
			return st, err
		}
		return st, p.storArg(args[2], a*b)

	case OpInput:
		addr, err := args[0].Target(p.tape)
		if err != nil {
			return st, err
		}
		val, ok := in.Pop()
		if !ok {
			return st, ErrInputExhausted
		}
		return st, p.stor(addr, val)

	case OpOutput:
		val, err := args[0].Load(p.tape)
		if err != nil {
			return st, err
		}
		*out = append(*out, val)
		return st, nil

	case OpJumpIfTrue, OpJumpIfFalse:
		cond, to, err := p.loadPair(args)
		if err != nil {
			return st, err
		}
		if (cond != 0) == (inst.Op == OpJumpIfTrue) {
			st.next = to
		}
		return st, nil

	case OpLessThan:
		a, b, err := p.loadPair(args)
		if err != nil {
			return st, err
		}
		return st, p.storArg(args[2], boolInt(a < b))

	case OpEquals:
		a, b, err := p.loadPair(args)
		if err != nil {
			return st, err
		}
		return st, p.storArg(args[2], boolInt(a == b))

	case OpAdjustRelativeBase:
		delta, err := args[0].Load(p.tape)
		if err != nil {
			return st, err
		}
		st.relBase += delta
		return st, nil

	case OpHalt:
		st.halt = true
		return st, nil

	default:
		return st, DecodeError{UnknownOpcode, inst.Addr, int64(inst.Op)}
	}
}

func (p *Program) loadPair(args []Argument) (a, b int64, err error) {
	if a, err = args[0].Load(p.tape); err == nil {
		b, err = args[1].Load(p.tape)
	}
	return a, b, err
}

func (p *Program) storArg(arg Argument, val int64) error {
	addr, err := arg.Target(p.tape)
	if err != nil {
		return err
	}
	return p.stor(addr, val)
}

func (p *Program) stor(addr, val int64) error {
	if err := p.tape.Stor(addr, val); err != nil {
		return err
	}
	if p.logfn != nil {
		p.logf("stor @%v = %v", addr, val)
	}
	return nil
}

func boolInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
