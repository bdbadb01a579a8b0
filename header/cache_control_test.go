package header_test

import (
	"testing"

	"github.com/hexborn/httpmodel/header"
)

func TestCacheControl_Render(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		hdr  header.CacheControl
		want string
	}{
		{
			"flag directive",
			header.NewCacheControl(header.CacheDirective{Name: "no-cache"}),
			"Cache-Control: no-cache",
		},
		{
			"valued directive",
			header.NewCacheControl(header.CacheDirective{Name: "max-age", Value: "60"}),
			"Cache-Control: max-age=60",
		},
		{
			"mixed",
			header.NewCacheControl(
				header.CacheDirective{Name: "public"},
				header.CacheDirective{Name: "max-age", Value: "31536000"},
				header.CacheDirective{Name: "immutable"},
			),
			"Cache-Control: public, max-age=31536000, immutable",
		},
		{
			"non-token argument quoted",
			header.NewCacheControl(header.CacheDirective{Name: "no-cache", Value: "set-cookie, vary"}),
			`Cache-Control: no-cache="set-cookie, vary"`,
		},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.hdr.Render(); got != c.want {
				t.Errorf("hdr.Render() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestCacheDirective_Equal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		d    header.CacheDirective
		val  any
		want bool
	}{
		{"name case-insensitive", header.CacheDirective{Name: "No-Cache"}, header.CacheDirective{Name: "no-cache"}, true},
		{"value exact", header.CacheDirective{Name: "max-age", Value: "60"}, header.CacheDirective{Name: "max-age", Value: "61"}, false},
		{"to nil", header.CacheDirective{Name: "public"}, nil, false},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.d.Equal(c.val); got != c.want {
				t.Errorf("d.Equal(val) = %v, want %v", got, c.want)
			}
		})
	}
}
