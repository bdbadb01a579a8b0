package header

import (
	"fmt"
	"io"
	"net/url"
	"strconv"

	"braces.dev/errtrace"
)

// Location represents the Location header field carrying one absolute URI.
type Location struct {
	URI *url.URL
}

// NewLocation returns a Location header for the given URI.
func NewLocation(u *url.URL) *Location { return &Location{u} }

// CanonicName returns the canonical name of the header.
func (*Location) CanonicName() Name { return "Location" }

// LowerName returns the lowercase name of the header.
func (*Location) LowerName() Name { return "location" }

// RenderTo writes the header to the provided writer.
func (hdr *Location) RenderTo(w io.Writer) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderNameValueTo(w, hdr.CanonicName(), hdr.renderValueTo))
}

func (hdr *Location) renderValueTo(w io.Writer) (num int, err error) {
	if hdr.URI == nil {
		return 0, nil
	}
	return errtrace.Wrap2(fmt.Fprint(w, hdr.URI))
}

// Render returns the full "Name: value" representation of the header.
func (hdr *Location) Render() string {
	if hdr == nil {
		return ""
	}
	return renderToString(hdr.RenderTo)
}

// RenderValue returns the header value without the name prefix.
func (hdr *Location) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return renderToString(hdr.renderValueTo)
}

func (hdr *Location) String() string { return hdr.Render() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *Location) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, hdr.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(hdr.String()))
		return
	default:
		type hideMethods Location
		type Location hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*Location)(hdr))
		return
	}
}

// Clone returns a copy of the header.
func (hdr *Location) Clone() Header {
	if hdr == nil {
		return nil
	}
	if hdr.URI == nil {
		return &Location{}
	}
	u := *hdr.URI
	return &Location{&u}
}

// Equal compares this header with another for equality.
func (hdr *Location) Equal(val any) bool {
	var other *Location
	switch v := val.(type) {
	case Location:
		other = &v
	case *Location:
		other = v
	default:
		return false
	}

	if hdr == other {
		return true
	} else if hdr == nil || other == nil {
		return false
	}
	switch {
	case hdr.URI == nil && other.URI == nil:
		return true
	case hdr.URI == nil || other.URI == nil:
		return false
	}
	return hdr.URI.String() == other.URI.String()
}

// IsValid checks whether the header carries an absolute URI.
func (hdr *Location) IsValid() bool { return hdr != nil && hdr.URI != nil && hdr.URI.IsAbs() }
