package header_test

import (
	"testing"

	"github.com/hexborn/httpmodel/header"
)

func TestContentDisposition_Render(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		hdr  *header.ContentDisposition
		want string
	}{
		{
			"bare type",
			header.NewContentDisposition("inline"),
			"Content-Disposition: inline",
		},
		{
			"attachment with filename",
			header.NewContentDisposition("attachment", header.Param{Name: "filename", Value: "x.txt"}),
			`Content-Disposition: attachment; filename="x.txt"`,
		},
		{
			"params keep insertion order",
			header.NewContentDisposition("form-data",
				header.Param{Name: "name", Value: "field"},
				header.Param{Name: "filename", Value: "a b.txt"},
			),
			`Content-Disposition: form-data; name="field"; filename="a b.txt"`,
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

func TestContentDisposition_Equal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		hdr  *header.ContentDisposition
		val  any
		want bool
	}{
		{"to nil", header.NewContentDisposition("inline"), nil, false},
		{
			"case-insensitive type",
			header.NewContentDisposition("Attachment"),
			header.NewContentDisposition("attachment"),
			true,
		},
		{
			"param values exact",
			header.NewContentDisposition("attachment", header.Param{Name: "filename", Value: "x.txt"}),
			header.NewContentDisposition("attachment", header.Param{Name: "filename", Value: "X.TXT"}),
			false,
		},
		{
			"param order matters",
			header.NewContentDisposition("form-data",
				header.Param{Name: "name", Value: "f"},
				header.Param{Name: "filename", Value: "x"},
			),
			header.NewContentDisposition("form-data",
				header.Param{Name: "filename", Value: "x"},
				header.Param{Name: "name", Value: "f"},
			),
			false,
		},
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
