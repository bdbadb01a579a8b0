package header

import (
	"fmt"
	"io"
	"slices"
	"strconv"

	"braces.dev/errtrace"
)

// UserAgent represents the User-Agent header field: an ordered list of
// product tokens describing the client software, joined with spaces.
type UserAgent []ProductVersion

// NewUserAgent returns a User-Agent header listing the given product tokens
// in order.
func NewUserAgent(first ProductVersion, more ...ProductVersion) UserAgent {
	return seq[UserAgent](first, more)
}

// ParseUserAgent builds a User-Agent header by tokenizing a free-text
// products string with [ParseProducts].
func ParseUserAgent(s string) UserAgent { return UserAgent(ParseProducts(s)) }

// CanonicName returns the canonical name of the header.
func (UserAgent) CanonicName() Name { return "User-Agent" }

// LowerName returns the lowercase name of the header.
func (UserAgent) LowerName() Name { return "user-agent" }

// RenderTo writes the header to the provided writer.
func (hdr UserAgent) RenderTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(renderNameValueTo(w, hdr.CanonicName(), hdr.renderValueTo))
}

func (hdr UserAgent) renderValueTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(renderEntries(w, hdr, " "))
}

// Render returns the full "Name: value" representation of the header.
func (hdr UserAgent) Render() string { return renderToString(hdr.RenderTo) }

// RenderValue returns the header value without the name prefix.
func (hdr UserAgent) RenderValue() string { return renderToString(hdr.renderValueTo) }

func (hdr UserAgent) String() string { return hdr.Render() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr UserAgent) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, hdr.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(hdr.String()))
		return
	default:
		type hideMethods UserAgent
		type UserAgent hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), UserAgent(hdr))
		return
	}
}

// Clone returns a copy of the header.
func (hdr UserAgent) Clone() Header { return cloneEntries(hdr) }

// Equal compares this header with another for equality.
func (hdr UserAgent) Equal(val any) bool {
	var other UserAgent
	switch v := val.(type) {
	case UserAgent:
		other = v
	case *UserAgent:
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
func (hdr UserAgent) IsValid() bool {
	return hdr != nil && !slices.ContainsFunc(hdr, func(pv ProductVersion) bool { return !pv.IsValid() })
}
