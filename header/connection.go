package header

import (
	"fmt"
	"io"
	"slices"
	"strconv"

	"braces.dev/errtrace"

	"github.com/hexborn/httpmodel/internal/grammar"
)

// Connection represents the Connection header field: an ordered list of
// connection option tokens.
type Connection []string

// NewConnection returns a Connection header listing the given option tokens
// in order.
func NewConnection(first string, more ...string) Connection {
	return seq[Connection](first, more)
}

// CanonicName returns the canonical name of the header.
func (Connection) CanonicName() Name { return "Connection" }

// LowerName returns the lowercase name of the header.
func (Connection) LowerName() Name { return "connection" }

// HasClose reports whether the "close" option is present.
// The comparison is case-insensitive.
func (hdr Connection) HasClose() bool { return searchFold(hdr, "close") }

// HasKeepAlive reports whether the "keep-alive" option is present.
// The comparison is case-insensitive.
func (hdr Connection) HasKeepAlive() bool { return searchFold(hdr, "keep-alive") }

// RenderTo writes the header to the provided writer.
func (hdr Connection) RenderTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(renderNameValueTo(w, hdr.CanonicName(), hdr.renderValueTo))
}

func (hdr Connection) renderValueTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(renderEntries(w, hdr, ", "))
}

// Render returns the full "Name: value" representation of the header.
func (hdr Connection) Render() string { return renderToString(hdr.RenderTo) }

// RenderValue returns the header value without the name prefix.
func (hdr Connection) RenderValue() string { return renderToString(hdr.renderValueTo) }

func (hdr Connection) String() string { return hdr.Render() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr Connection) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, hdr.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(hdr.String()))
		return
	default:
		type hideMethods Connection
		type Connection hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), Connection(hdr))
		return
	}
}

// Clone returns a copy of the header.
func (hdr Connection) Clone() Header { return slices.Clone(hdr) }

// Equal compares this header with another for equality.
func (hdr Connection) Equal(val any) bool {
	var other Connection
	switch v := val.(type) {
	case Connection:
		other = v
	case *Connection:
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
func (hdr Connection) IsValid() bool {
	return hdr != nil && !slices.ContainsFunc(hdr, func(opt string) bool { return !grammar.IsToken(opt) })
}
