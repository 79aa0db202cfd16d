package intcode

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDumper(t *testing.T) {
	for _, tc := range []struct {
		name  string
		code  []int64
		input bool
		want  string
	}{
		{
			name: "initial",
			code: []int64{1, 9, 10, 3, 2, 3, 11, 0, 99, 30, 40, 50},
			want: lines(
				"# Program Dump",
				"  pc: 0",
				"  rb: 0",
				"  state: running",
				"  steps: 0",
				"# Memory",
				"> @ 0 add 9 10 3",
				"  @ 4 mul 3 11 0",
				"  @ 8 hlt",
				"  @ 9 .data 30",
				"  @10 .data 40",
				"  @11 .data 50",
				"  @12 .zero 4",
			),
		},
		{
			name:  "pc inside instruction",
			code:  []int64{1106, 0, 4, 7, 3, 0, 99},
			input: true,
			want: lines(
				"# Program Dump",
				"  pc: 4",
				"  rb: 0",
				"  state: running",
				"  steps: 1",
				"# Memory",
				"  @ 0 jf #0 #4",
				"  @ 3 .data 7",
				"> @ 4 in 0",
				"  @ 6 hlt",
				"  @ 7 .zero 9",
			),
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			p := New(&Tape{}, WithPageSize(16), WithLogf(t.Logf))
			require.NoError(t, p.Tape().Stor(0, tc.code...))
			if tc.input {
				_, err := p.RunToNextInput(context.Background(), nil)
				require.NoError(t, err)
			}

			var out strings.Builder
			require.NoError(t, Dumper{Program: p, Out: &out}.Dump())
			assert.Equal(t, tc.want, out.String())
		})
	}
}

func TestDumper_farMemory(t *testing.T) {
	const far = 1 << 40
	at := func(mark string, width int, addr int64, text string) string {
		return fmt.Sprintf("%s @%*v %s", mark, width, addr, text)
	}

	t.Run("store", func(t *testing.T) {
		p := New(&Tape{}, WithPageSize(16), WithLogf(t.Logf))
		require.NoError(t, p.Tape().Stor(0, 1101, 3, 4, far, 99))
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_, err := p.Run(ctx, nil)
		require.NoError(t, err)

		done := make(chan error, 1)
		var out strings.Builder
		go func() { done <- Dumper{Program: p, Out: &out}.Dump() }()
		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(time.Second):
			t.Fatal("dump did not finish")
		}
		assert.Equal(t, lines(
			"# Program Dump",
			"  pc: 4",
			"  rb: 0",
			"  state: terminated",
			"  steps: 2",
			"# Memory",
			at(" ", 13, 0, "add #3 #4 1099511627776"),
			at(">", 13, 4, "hlt"),
			at(" ", 13, 5, fmt.Sprintf(".zero %v", far-5)),
			at(" ", 13, far, "lt 0 0 0"),
			at(" ", 13, far+4, ".zero 12"),
		), out.String())
	})

	t.Run("pc in gap", func(t *testing.T) {
		const dest = 1 << 30
		p := New(&Tape{}, WithPageSize(16), WithLogf(t.Logf))
		require.NoError(t, p.Tape().Stor(0, 1105, 1, dest))
		_, err := p.Run(context.Background(), nil)
		assert.Equal(t, DecodeError{UnknownOpcode, dest, 0}, err)

		var out strings.Builder
		require.NoError(t, Dumper{Program: p, Out: &out}.Dump())
		all := strings.SplitAfter(out.String(), "# Memory\n")
		require.Len(t, all, 2)
		assert.Equal(t, lines(
			at(" ", 10, 0, "jt #1 #1073741824"),
			at(" ", 10, 3, fmt.Sprintf(".zero %v", dest-3)),
			at(">", 10, dest, ".data 0 # unknown opcode 0 @1073741824"),
		), all[1])
	})
}

func lines(parts ...string) string {
	return strings.Join(parts, "\n") + "\n"
}
