package header

import (
	"fmt"
	"io"
	"strconv"

	"braces.dev/errtrace"

	"github.com/hexborn/httpmodel/internal/grammar"
	"github.com/hexborn/httpmodel/internal/ioutil"
	"github.com/hexborn/httpmodel/internal/util"
)

// ContentDisposition represents the Content-Disposition header field: a
// disposition type plus ordered parameters. Parameters render in insertion
// order with quoted values, e.g. `attachment; filename="x.txt"`.
type ContentDisposition struct {
	Type   string
	Params Params
}

// NewContentDisposition returns a Content-Disposition header with the given
// disposition type and parameters.
func NewContentDisposition(dispType string, params ...Param) *ContentDisposition {
	return &ContentDisposition{Type: dispType, Params: params}
}

// CanonicName returns the canonical name of the header.
func (*ContentDisposition) CanonicName() Name { return "Content-Disposition" }

// LowerName returns the lowercase name of the header.
func (*ContentDisposition) LowerName() Name { return "content-disposition" }

// RenderTo writes the header to the provided writer.
func (hdr *ContentDisposition) RenderTo(w io.Writer) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderNameValueTo(w, hdr.CanonicName(), hdr.renderValueTo))
}

func (hdr *ContentDisposition) renderValueTo(w io.Writer) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Fprint(hdr.Type)
	cw.Call(func(w io.Writer) (int, error) { return errtrace.Wrap2(renderParamsTo(w, hdr.Params, true)) })
	return errtrace.Wrap2(cw.Result())
}

// Render returns the full "Name: value" representation of the header.
func (hdr *ContentDisposition) Render() string {
	if hdr == nil {
		return ""
	}
	return renderToString(hdr.RenderTo)
}

// RenderValue returns the header value without the name prefix.
func (hdr *ContentDisposition) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return renderToString(hdr.renderValueTo)
}

func (hdr *ContentDisposition) String() string { return hdr.Render() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *ContentDisposition) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, hdr.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(hdr.String()))
		return
	default:
		type hideMethods ContentDisposition
		type ContentDisposition hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*ContentDisposition)(hdr))
		return
	}
}

// Clone returns a copy of the header.
func (hdr *ContentDisposition) Clone() Header {
	if hdr == nil {
		return nil
	}

	hdr2 := *hdr
	hdr2.Params = hdr.Params.Clone()
	return &hdr2
}

// Equal compares this header with another for equality.
// Disposition types compare case-insensitively.
func (hdr *ContentDisposition) Equal(val any) bool {
	var other *ContentDisposition
	switch v := val.(type) {
	case *ContentDisposition:
		other = v
	case ContentDisposition:
		other = &v
	default:
		return false
	}

	if hdr == other {
		return true
	} else if hdr == nil || other == nil {
		return false
	}

	return util.EqFold(hdr.Type, other.Type) && hdr.Params.Equal(other.Params)
}

// IsValid checks whether the header is syntactically valid.
func (hdr *ContentDisposition) IsValid() bool {
	return hdr != nil && grammar.IsToken(hdr.Type) && hdr.Params.IsValid()
}
