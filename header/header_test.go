package header_test

import (
	"strings"
	"testing"

	"github.com/hexborn/httpmodel/header"
)

func catalogue() []header.Header {
	return []header.Header{
		header.Accept{},
		header.AcceptCharset{},
		header.AcceptEncoding{},
		header.AcceptLanguage{},
		header.AcceptRanges{},
		&header.Authorization{},
		header.CacheControl{},
		header.Connection{},
		&header.ContentDisposition{},
		header.ContentEncoding("gzip"),
		header.ContentLength(0),
		&header.ContentType{},
		header.Cookie{},
		&header.Date{},
		header.Expect{},
		&header.Host{},
		&header.LastModified{},
		&header.Location{},
		&header.RemoteAddress{},
		header.Server{},
		&header.SetCookie{},
		header.TransferEncoding{},
		header.UserAgent{},
		header.WWWAuthenticate{},
		header.XForwardedFor{},
	}
}

func TestCanonicName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want header.Name
	}{
		{"lowercase", "content-type", "Content-Type"},
		{"uppercase", "CONTENT-LENGTH", "Content-Length"},
		{"mixed", "x-forwarded-for", "X-Forwarded-For"},
		{"www authenticate", "www-authenticate", "WWW-Authenticate"},
		{"etag", "etag", "ETag"},
		{"padded", "  Host ", "Host"},
		{"custom", "x-request-id", "X-Request-Id"},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := header.CanonicName(c.in); got != c.want {
				t.Errorf("CanonicName(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

// Every catalogue variant must expose a LowerName that is exactly the
// lowercased form of its canonical name. Transfer-Encoding is part of the
// table on purpose: its lowercase name regressed to mixed case once.
func TestHeader_LowerName(t *testing.T) {
	t.Parallel()

	for _, hdr := range catalogue() {
		hdr := hdr
		t.Run(string(hdr.CanonicName()), func(t *testing.T) {
			t.Parallel()

			want := header.Name(strings.ToLower(string(hdr.CanonicName())))
			if got := hdr.LowerName(); got != want {
				t.Errorf("hdr.LowerName() = %q, want %q", got, want)
			}
		})
	}
}

func TestIs_IsNot(t *testing.T) {
	t.Parallel()

	names := []header.Name{"host", "content-type", "x-custom", ""}
	hdrs := append(catalogue(), header.NewRaw("X-Custom", "1"))

	for _, hdr := range hdrs {
		for _, n := range names {
			if header.Is(hdr, n) == header.IsNot(hdr, n) {
				t.Errorf("Is(%q, %q) and IsNot must be complementary", hdr.CanonicName(), n)
			}
		}
		if !header.Is(hdr, hdr.LowerName()) {
			t.Errorf("Is(%q, its own lower name) = false, want true", hdr.CanonicName())
		}
	}
}

func TestDecompose(t *testing.T) {
	t.Parallel()

	name, value := header.Decompose(header.ContentLength(123))
	if name != "content-length" {
		t.Errorf("Decompose name = %q, want %q", name, "content-length")
	}
	if value != "123" {
		t.Errorf("Decompose value = %q, want %q", value, "123")
	}
}

func TestContentLength_Render(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		hdr  header.ContentLength
		want string
	}{
		{"zero", header.ContentLength(0), "Content-Length: 0"},
		{"full", header.ContentLength(123), "Content-Length: 123"},
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
