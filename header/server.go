package header

import (
	"fmt"
	"io"
	"slices"
	"strconv"

	"braces.dev/errtrace"
)

// Server represents the Server header field: an ordered list of product
// tokens describing the origin server software, joined with spaces.
type Server []ProductVersion

// NewServer returns a Server header listing the given product tokens in order.
func NewServer(first ProductVersion, more ...ProductVersion) Server {
	return seq[Server](first, more)
}

// ParseServer builds a Server header by tokenizing a free-text products
// string with [ParseProducts].
func ParseServer(s string) Server { return Server(ParseProducts(s)) }

// CanonicName returns the canonical name of the header.
func (Server) CanonicName() Name { return "Server" }

// LowerName returns the lowercase name of the header.
func (Server) LowerName() Name { return "server" }

// RenderTo writes the header to the provided writer.
func (hdr Server) RenderTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(renderNameValueTo(w, hdr.CanonicName(), hdr.renderValueTo))
}

func (hdr Server) renderValueTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(renderEntries(w, hdr, " "))
}

// Render returns the full "Name: value" representation of the header.
func (hdr Server) Render() string { return renderToString(hdr.RenderTo) }

// RenderValue returns the header value without the name prefix.
func (hdr Server) RenderValue() string { return renderToString(hdr.renderValueTo) }

func (hdr Server) String() string { return hdr.Render() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr Server) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, hdr.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(hdr.String()))
		return
	default:
		type hideMethods Server
		type Server hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), Server(hdr))
		return
	}
}

// Clone returns a copy of the header.
func (hdr Server) Clone() Header { return cloneEntries(hdr) }

// Equal compares this header with another for equality.
func (hdr Server) Equal(val any) bool {
	var other Server
	switch v := val.(type) {
	case Server:
		other = v
	case *Server:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return slices.EqualFunc(hdr, other, func(pv1, pv2 ProductVersion) bool { return pv1.Equal(pv2) })
}

// IsValid checks whether the header is syntactically valid.
func (hdr Server) IsValid() bool {
	return hdr != nil && !slices.ContainsFunc(hdr, func(pv ProductVersion) bool { return !pv.IsValid() })
}
