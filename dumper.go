package intcode

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"
)

// Dumper writes a human readable dump of a program: its registers, followed
// by a disassembly of its memory.
//
// Memory is disassembled from address 0, decoding an instruction wherever
// one is valid; any other cell is listed as data, and runs of zero cells are
// collapsed. Unallocated memory is never visited cell by cell, so a far write
// costs a single ".zero" line. The cell at the program counter is always
// decoded, and marked with a ">".
type Dumper struct {
	Program *Program
	Out     io.Writer

	addrWidth int
	end       int64
	spans     []span
}

// Dump writes the dump, returning the first write error encountered.
func (dump Dumper) Dump() error {
	p := dump.Program
	var buf lineBuffer
	buf.WriteString("# Program Dump\n")
	fmt.Fprintf(&buf, "  pc: %v\n", p.pc)
	fmt.Fprintf(&buf, "  rb: %v\n", p.tape.RelativeBase())
	fmt.Fprintf(&buf, "  state: %v\n", p.state)
	fmt.Fprintf(&buf, "  steps: %v\n", p.steps)
	buf.WriteString("# Memory")
	if _, err := buf.WriteTo(dump.Out); err != nil {
		return err
	}
	return dump.dumpMem()
}

func (dump *Dumper) dumpMem() error {
	p := dump.Program
	dump.spans = dump.spans[:0]
	p.tape.runs(func(base int64, values []int64) {
		dump.spans = append(dump.spans, span{base, base + int64(len(values))})
	})
	dump.end = p.tape.Len()
	if p.pc >= dump.end {
		dump.end = p.pc + 1
	}
	if dump.addrWidth == 0 {
		dump.addrWidth = len(strconv.FormatInt(dump.end, 10))
	}

	var buf lineBuffer
	for addr := int64(0); addr < dump.end; {
		if addr == p.pc {
			buf.WriteString("> ")
		} else {
			buf.WriteString("  ")
		}
		fmt.Fprintf(&buf, "@%*v ", dump.addrWidth, addr)
		addr = dump.formatMem(&buf, addr)
		if _, err := buf.WriteTo(dump.Out); err != nil {
			return err
		}
	}
	return nil
}

func (dump *Dumper) formatMem(buf *lineBuffer, addr int64) int64 {
	p := dump.Program
	val, _ := p.tape.Load(addr)

	if val == 0 && addr != p.pc {
		if next := dump.zeroRun(addr); next-addr > 1 {
			fmt.Fprintf(buf, ".zero %v", next-addr)
			return next
		}
	}

	// an instruction may not straddle pc, since pc must begin one
	if inst, err := Decode(p.tape, addr); err == nil {
		if next := addr + inst.Size(); addr >= p.pc || next <= p.pc {
			buf.WriteString(inst.String())
			return next
		}
	} else if addr == p.pc {
		fmt.Fprintf(buf, ".data %v # %v", val, err)
		return addr + 1
	}

	buf.WriteString(".data ")
	buf.WriteString(strconv.FormatInt(val, 10))
	return addr + 1
}

// zeroRun returns the end of the run of zero cells starting at addr. The run
// stops short of pc, so that it gets its own line. Unallocated gaps between
// pages are skipped over whole.
func (dump *Dumper) zeroRun(addr int64) int64 {
	pc := dump.Program.pc
	for addr < dump.end && addr != pc {
		i := sort.Search(len(dump.spans), func(i int) bool { return dump.spans[i].end > addr })
		if i < len(dump.spans) && dump.spans[i].start <= addr {
			if v, _ := dump.Program.tape.Load(addr); v != 0 {
				break
			}
			addr++
			continue
		}
		next := dump.end
		if i < len(dump.spans) {
			next = dump.spans[i].start
		}
		if addr < pc && pc < next {
			next = pc
		}
		addr = next
	}
	return addr
}

// span is an allocated range of memory addresses [start, end).
type span struct{ start, end int64 }

// lineBuffer terminates its content with a newline when written out.
type lineBuffer struct{ bytes.Buffer }

func (buf *lineBuffer) WriteTo(w io.Writer) (int64, error) {
	if buf.Len() > 0 {
		buf.WriteByte('\n')
	}
	return buf.Buffer.WriteTo(w)
}
