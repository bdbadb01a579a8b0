package header

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"braces.dev/errtrace"
	"github.com/araddon/dateparse"
)

// Date represents the Date header field: the origination timestamp of the
// message, rendered in RFC 1123 form.
type Date struct {
	time.Time
}

// NewDate returns a Date header for the given timestamp.
func NewDate(t time.Time) *Date { return &Date{t} }

// ParseDate builds a Date header from a textual timestamp. It accepts the
// date layouts commonly seen on the wire, not just RFC 1123.
func ParseDate(s string) (*Date, error) {
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &Date{t}, nil
}

// CanonicName returns the canonical name of the header.
func (*Date) CanonicName() Name { return "Date" }

// LowerName returns the lowercase name of the header.
func (*Date) LowerName() Name { return "date" }

// RenderTo writes the header to the provided writer.
func (hdr *Date) RenderTo(w io.Writer) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderNameValueTo(w, hdr.CanonicName(), hdr.renderValueTo))
}

func (hdr *Date) renderValueTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(fmt.Fprint(w, hdr.UTC().Format(http.TimeFormat)))
}

// Render returns the full "Name: value" representation of the header.
func (hdr *Date) Render() string {
	if hdr == nil {
		return ""
	}
	return renderToString(hdr.RenderTo)
}

// RenderValue returns the header value without the name prefix.
func (hdr *Date) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return renderToString(hdr.renderValueTo)
}

func (hdr *Date) String() string { return hdr.Render() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *Date) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, hdr.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(hdr.String()))
		return
	default:
		type hideMethods Date
		type Date hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*Date)(hdr))
		return
	}
}

// Clone returns a copy of the header.
func (hdr *Date) Clone() Header {
	if hdr == nil {
		return nil
	}
	hdr2 := *hdr
	return &hdr2
}

// Equal compares this header with another for equality.
func (hdr *Date) Equal(val any) bool {
	var other *Date
	switch v := val.(type) {
	case Date:
		other = &v
	case *Date:
		other = v
	default:
		return false
	}

	if hdr == other {
		return true
	} else if hdr == nil || other == nil {
		return false
	}
	return hdr.Time.Equal(other.Time)
}

// IsValid checks whether the header is syntactically valid.
func (hdr *Date) IsValid() bool { return hdr != nil && !hdr.IsZero() }
