package errorutil_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hexborn/httpmodel/internal/errorutil"
)

func TestNewInvalidArgumentError(t *testing.T) {
	t.Parallel()

	err := errorutil.NewInvalidArgumentError("port %d out of range", 70000)
	assert.ErrorIs(t, err, errorutil.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "port 70000 out of range")
}

func TestError_Sentinel(t *testing.T) {
	t.Parallel()

	const errSentinel = errorutil.Error("boom")
	assert.EqualError(t, errSentinel, "boom")
}

func TestNewWrapperError(t *testing.T) {
	t.Parallel()

	const errSentinel = errorutil.Error("boom")

	cases := []struct {
		name string
		err  error
		want string
	}{
		{"no args", errorutil.NewWrapperError(errSentinel), "boom"},
		{"message", errorutil.NewWrapperError(errSentinel, "details"), "boom: details"},
		{"format", errorutil.NewWrapperError(errSentinel, "port %d", 70000), "boom: port 70000"},
		{"wrap error", errorutil.NewWrapperError(errSentinel, errors.New("inner")), "boom: inner"},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			assert.True(t, errors.Is(c.err, errSentinel))
			assert.EqualError(t, c.err, c.want)
		})
	}

	already := errorutil.NewWrapperError(errSentinel, "details")
	assert.Same(t, already, errorutil.NewWrapperError(errSentinel, already))
}
