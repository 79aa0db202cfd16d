package intcode

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInts(t *testing.T) {
	for _, tc := range []struct {
		name    string
		text    string
		want    []int64
		wantErr error
	}{
		{name: "empty", text: ""},
		{name: "blank", text: " \n"},
		{name: "single", text: "99", want: []int64{99}},
		{name: "signed", text: "1101,100,-1,4,0", want: []int64{1101, 100, -1, 4, 0}},
		{name: "spaced", text: " 1 , 2,3\n", want: []int64{1, 2, 3}},
		{name: "trailing comma", text: "1,2,3,\n", want: []int64{1, 2, 3}},
		{name: "large", text: "104,1125899906842624,99", want: []int64{104, 1125899906842624, 99}},
		{name: "bad token", text: "1,x,3", wantErr: ParseError{Index: 1, Token: "x"}},
		{name: "empty token", text: "1,,3", wantErr: ParseError{Index: 1, Token: ""}},
		{name: "overflow", text: "99999999999999999999", wantErr: ParseError{Index: 0, Token: "99999999999999999999"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			values, err := ParseInts(tc.text)
			if tc.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, tc.want, values)
				return
			}
			var pe ParseError
			if assert.True(t, errors.As(err, &pe), "expected ParseError, got %v", err) {
				want := tc.wantErr.(ParseError)
				assert.Equal(t, want.Index, pe.Index, "expected token index")
				assert.Equal(t, want.Token, pe.Token, "expected token")
				var numErr *strconv.NumError
				assert.True(t, errors.As(err, &numErr), "expected underlying strconv error")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "echo.txt")
	require.NoError(t, os.WriteFile(path, []byte("3,0,4,0,99\n"), 0o644))
	p, err := Load(path, WithLogf(t.Logf))
	require.NoError(t, err)
	out, err := p.Run(context.Background(), NewQueue(42))
	require.NoError(t, err)
	assert.Equal(t, []int64{42}, out)

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("3,0,four"), 0o644))
	_, err = Load(bad)
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), bad)
		assert.True(t, errors.As(err, new(ParseError)), "expected ParseError")
	}

	_, err = Load(filepath.Join(dir, "missing.txt"))
	assert.True(t, errors.Is(err, os.ErrNotExist), "expected not exist error, got %v", err)
}

func TestOptions(t *testing.T) {
	assert.Nil(t, Options())
	assert.Nil(t, Options(nil, nil))
	lim := WithMemLimit(10)
	assert.Equal(t, lim, Options(nil, lim))

	p := New(NewTape(nil), Options(Options(WithMemLimit(10), WithPageSize(4)), nil))
	assert.Equal(t, uint64(10), p.tape.cells.Limit)
	assert.Equal(t, uint64(4), p.tape.cells.PageSize)
}
