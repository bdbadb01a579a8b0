package header_test

import (
	"fmt"
	"testing"

	"github.com/hexborn/httpmodel/header"
)

func TestRaw(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		hdr       *header.Raw
		wantName  header.Name
		wantLower header.Name
		wantLine  string
	}{
		{
			"name case preserved",
			header.NewRaw("X-Request-ID", "abc-123"),
			"X-Request-ID",
			"x-request-id",
			"X-Request-ID: abc-123",
		},
		{
			"lowercase given",
			header.NewRaw("x-trace", "1"),
			"x-trace",
			"x-trace",
			"x-trace: 1",
		},
		{
			"opaque value",
			header.NewRaw("X-Meta", `a="b"; c`),
			"X-Meta",
			"x-meta",
			`X-Meta: a="b"; c`,
		},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.hdr.CanonicName(); got != c.wantName {
				t.Errorf("hdr.CanonicName() = %q, want %q", got, c.wantName)
			}
			if got := c.hdr.LowerName(); got != c.wantLower {
				t.Errorf("hdr.LowerName() = %q, want %q", got, c.wantLower)
			}
			if got := c.hdr.Render(); got != c.wantLine {
				t.Errorf("hdr.Render() = %q, want %q", got, c.wantLine)
			}
		})
	}
}

func TestRaw_Equal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		hdr  *header.Raw
		val  any
		want bool
	}{
		{"to nil", header.NewRaw("X-A", "1"), nil, false},
		{"match", header.NewRaw("X-A", "1"), header.NewRaw("X-A", "1"), true},
		{"name case-insensitive", header.NewRaw("x-a", "1"), header.NewRaw("X-A", "1"), true},
		{"value exact", header.NewRaw("X-A", "1"), header.NewRaw("X-A", "2"), false},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.hdr.Equal(c.val); got != c.want {
				t.Errorf("hdr.Equal(val) = %v, want %v", got, c.want)
			}
		})
	}
}

func TestRaw_Format(t *testing.T) {
	t.Parallel()

	hdr := header.NewRaw("X-A", "1")
	if got, want := fmt.Sprintf("%s", hdr), "X-A: 1"; got != want {
		t.Errorf("%%s = %q, want %q", got, want)
	}
	if got, want := fmt.Sprintf("%q", hdr), `"X-A: 1"`; got != want {
		t.Errorf("%%q = %q, want %q", got, want)
	}
}
