package ioutil_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexborn/httpmodel/internal/ioutil"
)

var errWrite = errors.New("write failed")

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) { return 0, errWrite }

func TestCountingWriter(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	cw := ioutil.GetCountingWriter(&sb)
	defer ioutil.FreeCountingWriter(cw)

	cw.Fprint("Host", ": ")
	cw.WriteString("example.com")
	cw.Call(func(w io.Writer) (int, error) { return io.WriteString(w, ":8080") })

	num, err := cw.Result()
	require.NoError(t, err)
	assert.Equal(t, "Host: example.com:8080", sb.String())
	assert.Equal(t, sb.Len(), num)
}

func TestCountingWriter_StopsAfterError(t *testing.T) {
	t.Parallel()

	cw := ioutil.GetCountingWriter(failWriter{})
	defer ioutil.FreeCountingWriter(cw)

	cw.Fprint("a")
	cw.Fprint("b")
	cw.Call(func(w io.Writer) (int, error) {
		t.Error("Call must not run after a write error")
		return 0, nil
	})

	num, err := cw.Result()
	assert.ErrorIs(t, err, errWrite)
	assert.Zero(t, num)
}

func TestCountingWriter_Reuse(t *testing.T) {
	t.Parallel()

	cw := ioutil.GetCountingWriter(failWriter{})
	cw.Fprint("x")
	ioutil.FreeCountingWriter(cw)

	var sb strings.Builder
	cw = ioutil.GetCountingWriter(&sb)
	defer ioutil.FreeCountingWriter(cw)

	cw.Fprint("fresh")
	num, err := cw.Result()
	require.NoError(t, err)
	assert.Equal(t, 5, num)
}
