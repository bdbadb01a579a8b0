package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hexborn/httpmodel/internal/types"
)

func TestAddr_String(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		addr types.Addr
		want string
	}{
		{"host only", types.Host("example.com"), "example.com"},
		{"host and port", types.HostPort("example.com", 8080), "example.com:8080"},
		{"ipv4", types.HostPort("127.0.0.1", 80), "127.0.0.1:80"},
		{"ipv6 no port", types.Host("2001:db8::1"), "[2001:db8::1]"},
		{"ipv6 with port", types.HostPort("2001:db8::1", 443), "[2001:db8::1]:443"},
		{"bracketed input", types.HostPort("[::1]", 8080), "[::1]:8080"},
		{"zero", types.Addr{}, ""},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, c.want, c.addr.String())
		})
	}
}

func TestAddr_Port(t *testing.T) {
	t.Parallel()

	_, ok := types.Host("example.com").Port()
	assert.False(t, ok)

	port, ok := types.HostPort("example.com", 8080).Port()
	assert.True(t, ok)
	assert.Equal(t, uint16(8080), port)
}

func TestAddr_Equal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		addr types.Addr
		val  any
		want bool
	}{
		{"to nil", types.Host("example.com"), nil, false},
		{"host case-insensitive", types.Host("Example.COM"), types.Host("example.com"), true},
		{"ip forms", types.Host("::ffff:127.0.0.1"), types.Host("127.0.0.1"), true},
		{"port matters", types.HostPort("example.com", 80), types.HostPort("example.com", 81), false},
		{"unset vs zero port", types.Host("example.com"), types.HostPort("example.com", 0), false},
		{"ip vs hostname", types.Host("127.0.0.1"), types.Host("localhost"), false},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, c.want, c.addr.Equal(c.val))
		})
	}
}

func TestAddr_IsZero(t *testing.T) {
	t.Parallel()

	assert.True(t, types.Addr{}.IsZero())
	assert.False(t, types.Host("example.com").IsZero())
	assert.False(t, types.HostPort("", 1).IsZero())
}

func TestAddr_MarshalText(t *testing.T) {
	t.Parallel()

	text, err := types.HostPort("example.com", 8080).MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "example.com:8080", string(text))
}
