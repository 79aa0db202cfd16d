/*
Package intcode implements the Intcode virtual machine.

An Intcode program is a sequence of signed integers, usually written as comma
separated text like "1,9,10,3,2,3,11,0,99,30,40,50". The program is loaded
into memory at address 0, and executed starting there.

Memory

Memory is an unbounded sparse space of int64 cells indexed by non-negative
addresses; any cell never written reads as 0. Alongside memory the machine
keeps a relative base register, initially 0. Together these form a Tape.
A memory limit may be imposed with WithMemLimit.

Instructions

The value at the program counter encodes an instruction: its last two decimal
digits are the opcode, while each preceding digit gives the mode of one
argument, least significant first. So 1002 is a multiply (02) whose first
argument is positional (0), second immediate (1), and third positional
(missing digits are 0).

	op  name  args  effect
	 1  add   a b c  c = a + b
	 2  mul   a b c  c = a * b
	 3  in    a      a = next input
	 4  out   a      output a
	 5  jt    a b    if a != 0 { pc = b }
	 6  jf    a b    if a == 0 { pc = b }
	 7  lt    a b c  c = a < b ? 1 : 0
	 8  eq    a b c  c = a == b ? 1 : 0
	 9  arb   a      relative base += a
	99  hlt          terminate

Argument modes:
  - positional (0): the argument is an address holding the value
  - immediate (1): the argument is the value; invalid as a store target
  - relative (2): the argument plus the relative base is an address

Disassembly, as written by Dumper and trace logging, marks immediate
arguments with "#" and relative ones with "~".

Running

A Program owns a private Tape, a program counter, and an execution State.
Input comes from a caller owned Queue, while produced output is returned by
each run call:
  - Run executes until termination
  - RunToNextOutput executes until the next output
  - RunToNextInput executes until input is needed but none is queued; the
    input instruction is left unexecuted, so the caller may push more input
    and call again

Programs may be chained output to input with a Chain, and saved or restored
mid-run as a Snapshot.
*/
package intcode
