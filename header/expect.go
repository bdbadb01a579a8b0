package header

import (
	"fmt"
	"io"
	"slices"
	"strconv"

	"braces.dev/errtrace"
)

// Expect100Continue is the only expectation defined by RFC 7231.
const Expect100Continue = "100-continue"

// Expect represents the Expect header field: an ordered list of expectations.
type Expect []string

// NewExpect returns an Expect header listing the given expectations in order.
func NewExpect(first string, more ...string) Expect {
	return seq[Expect](first, more)
}

// CanonicName returns the canonical name of the header.
func (Expect) CanonicName() Name { return "Expect" }

// LowerName returns the lowercase name of the header.
func (Expect) LowerName() Name { return "expect" }

// Has100Continue reports whether the "100-continue" expectation is present.
// The comparison is case-insensitive.
func (hdr Expect) Has100Continue() bool { return searchFold(hdr, Expect100Continue) }

// RenderTo writes the header to the provided writer.
func (hdr Expect) RenderTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(renderNameValueTo(w, hdr.CanonicName(), hdr.renderValueTo))
}

func (hdr Expect) renderValueTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(renderEntries(w, hdr, ", "))
}

// Render returns the full "Name: value" representation of the header.
func (hdr Expect) Render() string { return renderToString(hdr.RenderTo) }

// RenderValue returns the header value without the name prefix.
func (hdr Expect) RenderValue() string { return renderToString(hdr.renderValueTo) }

func (hdr Expect) String() string { return hdr.Render() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr Expect) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, hdr.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(hdr.String()))
		return
	default:
		type hideMethods Expect
		type Expect hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), Expect(hdr))
		return
	}
}

// Clone returns a copy of the header.
func (hdr Expect) Clone() Header { return slices.Clone(hdr) }

// Equal compares this header with another for equality.
func (hdr Expect) Equal(val any) bool {
	var other Expect
	switch v := val.(type) {
	case Expect:
		other = v
	case *Expect:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return slices.Equal(hdr, other)
}

// IsValid checks whether the header is syntactically valid.
func (hdr Expect) IsValid() bool { return len(hdr) > 0 }
