package intcode

import (
	"fmt"
	"strconv"
	"strings"
)

// Opcode identifies an instruction; it is encoded in the last two decimal
// digits of an instruction's first cell.
type Opcode int64

// The ten machine opcodes.
const (
	OpAdd                Opcode = 1
	OpMultiply           Opcode = 2
	OpInput              Opcode = 3
	OpOutput             Opcode = 4
	OpJumpIfTrue         Opcode = 5
	OpJumpIfFalse        Opcode = 6
	OpLessThan           Opcode = 7
	OpEquals             Opcode = 8
	OpAdjustRelativeBase Opcode = 9
	OpHalt               Opcode = 99
)

var opNames = map[Opcode]string{
	OpAdd:                "add",
	OpMultiply:           "mul",
	OpInput:              "in",
	OpOutput:             "out",
	OpJumpIfTrue:         "jt",
	OpJumpIfFalse:        "jf",
	OpLessThan:           "lt",
	OpEquals:             "eq",
	OpAdjustRelativeBase: "arb",
	OpHalt:               "hlt",
}

func (op Opcode) String() string {
	if name, ok := opNames[op]; ok {
		return name
	}
	return fmt.Sprintf("op%d", int64(op))
}

// Arity returns the number of arguments taken by op, or -1 if op is unknown.
func (op Opcode) Arity() int {
	switch op {
	case OpAdd, OpMultiply, OpLessThan, OpEquals:
		return 3
	case OpJumpIfTrue, OpJumpIfFalse:
		return 2
	case OpInput, OpOutput, OpAdjustRelativeBase:
		return 1
	case OpHalt:
		return 0
	default:
		return -1
	}
}

// Mode is an argument addressing mode; it is encoded in the decimal digits
// preceding an instruction's opcode, one digit per argument.
type Mode int64

// Addressing modes.
const (
	// Positional arguments name the address of their value.
	Positional Mode = 0

	// Immediate arguments are their value.
	Immediate Mode = 1

	// Relative arguments name an address offset from the relative base.
	Relative Mode = 2
)

func (mode Mode) String() string {
	switch mode {
	case Positional:
		return "positional"
	case Immediate:
		return "immediate"
	case Relative:
		return "relative"
	default:
		return fmt.Sprintf("Mode(%d)", int64(mode))
	}
}

// Argument is a decoded instruction argument: a raw cell value, and the
// mode used to resolve it.
type Argument struct {
	Mode Mode
	Raw  int64
}

// String formats the argument as an assembly operand: "#" marks immediate
// mode, "~" relative mode, while positional operands are bare addresses.
func (arg Argument) String() string {
	switch arg.Mode {
	case Immediate:
		return "#" + strconv.FormatInt(arg.Raw, 10)
	case Relative:
		return "~" + strconv.FormatInt(arg.Raw, 10)
	default:
		return strconv.FormatInt(arg.Raw, 10)
	}
}

// Load resolves the argument's value.
func (arg Argument) Load(t *Tape) (int64, error) {
	switch arg.Mode {
	case Immediate:
		return arg.Raw, nil
	case Relative:
		return t.Load(arg.Raw + t.RelativeBase())
	default:
		return t.Load(arg.Raw)
	}
}

// Target resolves the argument as a store destination address.
// Immediate arguments are not valid destinations.
func (arg Argument) Target(t *Tape) (int64, error) {
	switch arg.Mode {
	case Positional:
		return arg.Raw, nil
	case Relative:
		return arg.Raw + t.RelativeBase(), nil
	default:
		return 0, StoreTargetError{arg}
	}
}

// Instruction is a decoded instruction.
type Instruction struct {
	Addr int64
	Op   Opcode
	Args []Argument
}

func (inst Instruction) String() string {
	var sb strings.Builder
	sb.WriteString(inst.Op.String())
	for _, arg := range inst.Args {
		sb.WriteByte(' ')
		sb.WriteString(arg.String())
	}
	return sb.String()
}

// Size returns the number of cells occupied by the instruction.
func (inst Instruction) Size() int64 { return 1 + int64(len(inst.Args)) }

// Decode decodes the instruction at addr.
func Decode(t *Tape, addr int64) (inst Instruction, err error) {
	code, err := t.Load(addr)
	if err != nil {
		return inst, err
	}

	inst.Addr = addr
	inst.Op = Opcode(code % 100)
	arity := inst.Op.Arity()
	if code < 0 || arity < 0 {
		return inst, DecodeError{UnknownOpcode, addr, code}
	}

	modes := code / 100
	inst.Args = make([]Argument, 0, arity)
	for i := 0; i < arity; i++ {
		mode := Mode(modes % 10)
		modes /= 10
		if mode != Positional && mode != Immediate && mode != Relative {
			return inst, DecodeError{UnknownMode, addr, code}
		}
		raw, err := t.Load(addr + int64(i) + 1)
		if err != nil {
			return inst, err
		}
		inst.Args = append(inst.Args, Argument{mode, raw})
	}

	if len(inst.Args) != arity {
		return inst, DecodeError{ArgCount, addr, code}
	}
	return inst, nil
}
