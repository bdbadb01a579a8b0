package header

import (
	"fmt"
	"io"
	"strconv"

	"braces.dev/errtrace"
)

// SetCookie represents the Set-Cookie response header field carrying a single
// cookie with its attributes.
type SetCookie struct {
	Cookie HTTPCookie
}

// NewSetCookie returns a Set-Cookie header for the given cookie.
func NewSetCookie(c HTTPCookie) *SetCookie { return &SetCookie{c} }

// CanonicName returns the canonical name of the header.
func (*SetCookie) CanonicName() Name { return "Set-Cookie" }

// LowerName returns the lowercase name of the header.
func (*SetCookie) LowerName() Name { return "set-cookie" }

// RenderTo writes the header to the provided writer.
func (hdr *SetCookie) RenderTo(w io.Writer) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderNameValueTo(w, hdr.CanonicName(), hdr.renderValueTo))
}

func (hdr *SetCookie) renderValueTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(fmt.Fprint(w, hdr.Cookie))
}

// Render returns the full "Name: value" representation of the header.
func (hdr *SetCookie) Render() string {
	if hdr == nil {
		return ""
	}
	return renderToString(hdr.RenderTo)
}

// RenderValue returns the header value without the name prefix.
func (hdr *SetCookie) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return renderToString(hdr.renderValueTo)
}

func (hdr *SetCookie) String() string { return hdr.Render() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *SetCookie) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, hdr.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(hdr.String()))
		return
	default:
		type hideMethods SetCookie
		type SetCookie hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*SetCookie)(hdr))
		return
	}
}

// Clone returns a copy of the header.
func (hdr *SetCookie) Clone() Header {
	if hdr == nil {
		return nil
	}
	return &SetCookie{hdr.Cookie.Clone()}
}

// Equal compares this header with another for equality.
func (hdr *SetCookie) Equal(val any) bool {
	var other *SetCookie
	switch v := val.(type) {
	case SetCookie:
		other = &v
	case *SetCookie:
		other = v
	default:
		return false
	}

	if hdr == other {
		return true
	} else if hdr == nil || other == nil {
		return false
	}
	return hdr.Cookie.Equal(other.Cookie)
}

// IsValid checks whether the header is syntactically valid.
func (hdr *SetCookie) IsValid() bool { return hdr != nil && hdr.Cookie.IsValid() }
