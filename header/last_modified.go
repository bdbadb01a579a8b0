package header

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"braces.dev/errtrace"
)

// LastModified represents the Last-Modified header field: the modification
// timestamp of the selected resource, rendered in RFC 1123 form.
type LastModified struct {
	time.Time
}

// NewLastModified returns a Last-Modified header for the given timestamp.
func NewLastModified(t time.Time) *LastModified { return &LastModified{t} }

// CanonicName returns the canonical name of the header.
func (*LastModified) CanonicName() Name { return "Last-Modified" }

// LowerName returns the lowercase name of the header.
func (*LastModified) LowerName() Name { return "last-modified" }

// RenderTo writes the header to the provided writer.
func (hdr *LastModified) RenderTo(w io.Writer) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderNameValueTo(w, hdr.CanonicName(), hdr.renderValueTo))
}

func (hdr *LastModified) renderValueTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(fmt.Fprint(w, hdr.UTC().Format(http.TimeFormat)))
}

// Render returns the full "Name: value" representation of the header.
func (hdr *LastModified) Render() string {
	if hdr == nil {
		return ""
	}
	return renderToString(hdr.RenderTo)
}

// RenderValue returns the header value without the name prefix.
func (hdr *LastModified) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return renderToString(hdr.renderValueTo)
}

func (hdr *LastModified) String() string { return hdr.Render() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *LastModified) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, hdr.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(hdr.String()))
		return
	default:
		type hideMethods LastModified
		type LastModified hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*LastModified)(hdr))
		return
	}
}

// Clone returns a copy of the header.
func (hdr *LastModified) Clone() Header {
	if hdr == nil {
		return nil
	}
	hdr2 := *hdr
	return &hdr2
}

// Equal compares this header with another for equality.
func (hdr *LastModified) Equal(val any) bool {
	var other *LastModified
	switch v := val.(type) {
	case LastModified:
		other = &v
	case *LastModified:
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
func (hdr *LastModified) IsValid() bool { return hdr != nil && !hdr.IsZero() }
