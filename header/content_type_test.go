package header_test

import (
	"net/url"
	"testing"

	"github.com/hexborn/httpmodel/header"
)

func TestContentType_Render(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		hdr  *header.ContentType
		want string
	}{
		{
			"bare",
			header.NewContentType(header.MIMEType{Type: "application", Subtype: "json"}),
			"Content-Type: application/json",
		},
		{
			"with charset",
			header.NewContentType(header.MIMEType{
				Type:    "text",
				Subtype: "html",
				Params:  header.Params{{Name: "charset", Value: "utf-8"}},
			}),
			"Content-Type: text/html; charset=utf-8",
		},
		{
			"non-token param quoted",
			header.NewContentType(header.MIMEType{
				Type:    "multipart",
				Subtype: "form-data",
				Params:  header.Params{{Name: "boundary", Value: "--x y"}},
			}),
			`Content-Type: multipart/form-data; boundary="--x y"`,
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

func TestLocation_Render(t *testing.T) {
	t.Parallel()

	u, err := url.Parse("https://example.com/next?page=2")
	if err != nil {
		t.Fatalf("url.Parse error = %v, want nil", err)
	}

	hdr := header.NewLocation(u)
	if got, want := hdr.Render(), "Location: https://example.com/next?page=2"; got != want {
		t.Errorf("hdr.Render() = %q, want %q", got, want)
	}
	if (&header.Location{}).RenderValue() != "" {
		t.Error("empty Location must render an empty value")
	}
}

func TestLocation_IsValid(t *testing.T) {
	t.Parallel()

	abs, _ := url.Parse("https://example.com/")
	rel, _ := url.Parse("/next")

	if !header.NewLocation(abs).IsValid() {
		t.Error("absolute URI must be valid")
	}
	if header.NewLocation(rel).IsValid() {
		t.Error("relative reference must be invalid")
	}
	if (&header.Location{}).IsValid() {
		t.Error("missing URI must be invalid")
	}
}

func TestContentEncoding_Render(t *testing.T) {
	t.Parallel()

	hdr := header.ContentEncoding(header.EncodingGzip)
	if got, want := hdr.Render(), "Content-Encoding: gzip"; got != want {
		t.Errorf("hdr.Render() = %q, want %q", got, want)
	}
	if got, want := hdr.RenderValue(), "gzip"; got != want {
		t.Errorf("hdr.RenderValue() = %q, want %q", got, want)
	}
}
