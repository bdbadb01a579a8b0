package log_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hexborn/httpmodel/internal/log"
)

type pair struct{ Name, Value string }

func TestNoop(t *testing.T) {
	t.Parallel()

	assert.False(t, log.Noop.Enabled(context.Background(), slog.LevelError))

	// Must swallow records at any level, derived loggers included.
	log.Noop.With("k", "v").WithGroup("g").Error("dropped", "pair", pair{"a", "b"})
}

func TestFmtValue(t *testing.T) {
	t.Parallel()

	v := pair{Name: "a", Value: "b"}
	assert.Equal(t, "{Name:a Value:b}", log.FmtValue(v, false).LogValue().String())
	assert.Equal(t, `log_test.pair{Name:"a", Value:"b"}`, log.FmtValue(v, true).LogValue().String())
}
