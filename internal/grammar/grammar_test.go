package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hexborn/httpmodel/internal/grammar"
)

func TestIsToken(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want bool
	}{
		{"empty", "", false},
		{"simple", "gzip", true},
		{"digits", "100-continue", true},
		{"specials", "!#$%&'*+-.^_`|~", true},
		{"header name", "Content-Type", true},
		{"space", "no cache", false},
		{"separator", "a/b", false},
		{"quote", `a"b`, false},
		{"high byte", "caf\xc3\xa9", false},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, c.want, grammar.IsToken(c.in))
		})
	}
}

func TestQuote(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "x.txt", `"x.txt"`},
		{"empty", "", `""`},
		{"space", "a b", `"a b"`},
		{"embedded quote", `say "hi"`, `"say \"hi\""`},
		{"backslash", `c:\tmp`, `"c:\\tmp"`},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			got := grammar.Quote(c.in)
			assert.Equal(t, c.want, got)
			assert.True(t, grammar.IsQuoted(got))
		})
	}
}

func TestIsHost(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want bool
	}{
		{"empty", "", false},
		{"hostname", "example.com", true},
		{"ipv4", "127.0.0.1", true},
		{"ipv6", "2001:db8::1", true},
		{"bracketed ipv6", "[::1]", true},
		{"zone", "fe80::1%eth0", true},
		{"space", "example com", false},
		{"slash", "example.com/x", false},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, c.want, grammar.IsHost(c.in))
		})
	}
}
