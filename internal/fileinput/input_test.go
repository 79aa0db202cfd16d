package fileinput_test

import (
	"io"
	"strings"
	"testing"

	"github.com/jcorbin/intcode/internal/fileinput"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type namedReader struct {
	io.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }

func Test_Input_ReadLine(t *testing.T) {
	in := fileinput.Input{Queue: []io.Reader{
		namedReader{strings.NewReader("1,2\r\n3\n"), "first"},
		namedReader{strings.NewReader("WALK\nRUN"), "second"},
	}}

	for _, expect := range []struct {
		line string
		loc  fileinput.Location
	}{
		{"1,2", fileinput.Location{Name: "first", Line: 1}},
		{"3", fileinput.Location{Name: "first", Line: 2}},
		{"WALK", fileinput.Location{Name: "second", Line: 1}},
		{"RUN", fileinput.Location{Name: "second", Line: 2}},
	} {
		line, err := in.ReadLine()
		require.NoError(t, err)
		assert.Equal(t, expect.line, line)
		assert.Equal(t, expect.loc, in.Last.Location, "expected location of %q", line)
	}

	_, err := in.ReadLine()
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, "second:2", in.Last.Location.String())
}

func Test_Input_unnamed(t *testing.T) {
	in := fileinput.Input{Queue: []io.Reader{strings.NewReader("x")}}
	r, _, err := in.ReadRune()
	require.NoError(t, err)
	assert.Equal(t, 'x', r)
	assert.Equal(t, "<unnamed *strings.Reader>", in.Scan.Name)
}
