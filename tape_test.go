package intcode

import (
	"testing"

	"github.com/jcorbin/intcode/internal/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTape(t *testing.T) {
	tape := NewTape([]int64{1, 2, 3})

	val, err := tape.Load(1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), val)

	val, err = tape.Load(1 << 50)
	require.NoError(t, err)
	assert.Equal(t, int64(0), val, "expected unwritten memory to read 0")

	require.NoError(t, tape.Stor(1<<20, 7, 8))
	buf := make([]int64, 4)
	require.NoError(t, tape.LoadInto(1<<20-1, buf))
	assert.Equal(t, []int64{0, 7, 8, 0}, buf)
	assert.True(t, tape.Len() > 1<<20+1, "expected memory to grow")

	assert.Equal(t, AddressError{-1, "load"}, tape.LoadInto(-1, buf))
	assert.Equal(t, AddressError{-5, "stor"}, tape.Stor(-5, 1))
	_, err = tape.Load(-2)
	assert.Equal(t, AddressError{-2, "load"}, err)

	tape.SetRelativeBase(-10)
	assert.Equal(t, int64(-10), tape.RelativeBase())
}

func TestTape_Clone(t *testing.T) {
	tape := NewTape([]int64{1, 2, 3})
	tape.SetRelativeBase(5)

	clone := tape.Clone()
	require.NoError(t, clone.Stor(0, 100))
	clone.SetRelativeBase(6)

	val, err := tape.Load(0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), val, "expected cloned-from tape unmodified")
	assert.Equal(t, int64(5), tape.RelativeBase(), "expected cloned-from relative base unmodified")

	val, err = clone.Load(0)
	require.NoError(t, err)
	assert.Equal(t, int64(100), val, "expected clone modified")
}

func TestTape_limit(t *testing.T) {
	p := New(NewTape([]int64{99}), WithMemLimit(8))
	tape := p.Tape()

	require.NoError(t, tape.Stor(7, 1))
	assert.Equal(t, mem.LimitError{Addr: 8, Limit: 8, Op: "stor"}, tape.Stor(8, 1))
	_, err := tape.Load(9)
	assert.Equal(t, mem.LimitError{Addr: 9, Limit: 8, Op: "load"}, err)
}
