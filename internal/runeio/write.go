package runeio

import (
	"io"
	"strconv"
)

// WriteANSIRune writes a rune to the given writer:
// - ASCII runes are written directly as bytes
// - NEL is written as the more conventional \r\n
// - all other C1 controls are written in their classic 7-bit form
//   e.g. "\x9b" "\x1b\x5b" for CSI
// - all other runes are written in utf8 form
func WriteANSIRune(w io.Writer, r rune) (n int, err error) {
	type runeWriter interface {
		WriteRune(r rune) (n int, err error)
	}
	if r < 0x80 {
		if bw, ok := w.(io.ByteWriter); ok {
			return 1, bw.WriteByte(byte(r))
		}
		return w.Write([]byte{byte(r)})
	}
	if r == 0x85 {
		return w.Write([]byte{'\r', '\n'})
	}
	if r <= 0x9f {
		return w.Write([]byte{0x1b, byte(r ^ 0xc0)})
	}
	if rw, ok := w.(runeWriter); ok {
		return rw.WriteRune(r)
	}
	if sw, ok := w.(io.StringWriter); ok {
		return sw.WriteString(string(r))
	}
	return w.Write([]byte(string(r)))
}

// WriteASCIIValue writes a machine output value in ASCII mode: values in the
// 7-bit ASCII range are written as runes, anything else is written as a
// decimal number on a line of its own.
func WriteASCIIValue(w io.Writer, value int64) (n int, err error) {
	if 0 <= value && value < 0x80 {
		return WriteANSIRune(w, rune(value))
	}
	var buf [24]byte
	b := strconv.AppendInt(buf[:0], value, 10)
	return w.Write(append(b, '\n'))
}

// ASCIIValues encodes a line of text as machine input values: one value per
// rune, followed by a terminating newline.
func ASCIIValues(line string) []int64 {
	values := make([]int64, 0, len(line)+1)
	for _, r := range line {
		values = append(values, int64(r))
	}
	return append(values, '\n')
}
