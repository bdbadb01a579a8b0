package header_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hexborn/httpmodel/header"
)

func TestParseProducts(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want []header.ProductVersion
	}{
		{"empty", "", nil},
		{
			"product only",
			"nginx",
			[]header.ProductVersion{{Product: "nginx"}},
		},
		{
			"product version",
			"nginx/1.25.3",
			[]header.ProductVersion{{Product: "nginx", Version: "1.25.3"}},
		},
		{
			"comment attaches to previous",
			"Mozilla/5.0 (X11; Linux x86_64) Gecko/20100101 Firefox/121.0",
			[]header.ProductVersion{
				{Product: "Mozilla", Version: "5.0", Comment: "X11; Linux x86_64"},
				{Product: "Gecko", Version: "20100101"},
				{Product: "Firefox", Version: "121.0"},
			},
		},
		{
			"leading comment stands alone",
			"(internal build) curl/8.5.0",
			[]header.ProductVersion{
				{Comment: "internal build"},
				{Product: "curl", Version: "8.5.0"},
			},
		},
		{
			"unterminated comment",
			"curl/8.5.0 (linux",
			[]header.ProductVersion{
				{Product: "curl", Version: "8.5.0", Comment: "linux"},
			},
		},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got := header.ParseProducts(c.in)
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("ParseProducts(%q) mismatch (-want +got):\n%v", c.in, diff)
			}
		})
	}
}

func TestServer_Render(t *testing.T) {
	t.Parallel()

	hdr := header.NewServer(
		header.ProductVersion{Product: "nginx", Version: "1.25.3"},
		header.ProductVersion{Product: "ngx_http_stub", Comment: "status"},
	)
	if got, want := hdr.Render(), "Server: nginx/1.25.3 ngx_http_stub (status)"; got != want {
		t.Errorf("hdr.Render() = %q, want %q", got, want)
	}
}

func TestUserAgent_RoundTrip(t *testing.T) {
	t.Parallel()

	const value = "Mozilla/5.0 (X11; Linux x86_64) Gecko/20100101"
	hdr := header.ParseUserAgent(value)
	if got := hdr.RenderValue(); got != value {
		t.Errorf("hdr.RenderValue() = %q, want %q", got, value)
	}
	if got, want := hdr.Render(), "User-Agent: "+value; got != want {
		t.Errorf("hdr.Render() = %q, want %q", got, want)
	}
}
