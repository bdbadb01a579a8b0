package header

import (
	"fmt"
	"io"
	"net"
	"slices"
	"strconv"

	"braces.dev/errtrace"
)

// RemoteAddress represents the Remote-Address header field carrying the peer
// IP address of the connection.
type RemoteAddress struct {
	IP net.IP
}

// NewRemoteAddress returns a Remote-Address header for the given IP.
func NewRemoteAddress(ip net.IP) *RemoteAddress { return &RemoteAddress{ip} }

// CanonicName returns the canonical name of the header.
func (*RemoteAddress) CanonicName() Name { return "Remote-Address" }

// LowerName returns the lowercase name of the header.
func (*RemoteAddress) LowerName() Name { return "remote-address" }

// RenderTo writes the header to the provided writer.
func (hdr *RemoteAddress) RenderTo(w io.Writer) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderNameValueTo(w, hdr.CanonicName(), hdr.renderValueTo))
}

func (hdr *RemoteAddress) renderValueTo(w io.Writer) (num int, err error) {
	if hdr.IP == nil {
		return 0, nil
	}
	return errtrace.Wrap2(fmt.Fprint(w, hdr.IP.String()))
}

// Render returns the full "Name: value" representation of the header.
func (hdr *RemoteAddress) Render() string {
	if hdr == nil {
		return ""
	}
	return renderToString(hdr.RenderTo)
}

// RenderValue returns the header value without the name prefix.
func (hdr *RemoteAddress) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return renderToString(hdr.renderValueTo)
}

func (hdr *RemoteAddress) String() string { return hdr.Render() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *RemoteAddress) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, hdr.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(hdr.String()))
		return
	default:
		type hideMethods RemoteAddress
		type RemoteAddress hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*RemoteAddress)(hdr))
		return
	}
}

// Clone returns a copy of the header.
func (hdr *RemoteAddress) Clone() Header {
	if hdr == nil {
		return nil
	}
	return &RemoteAddress{slices.Clone(hdr.IP)}
}

// Equal compares this header with another for equality.
func (hdr *RemoteAddress) Equal(val any) bool {
	var other *RemoteAddress
	switch v := val.(type) {
	case RemoteAddress:
		other = &v
	case *RemoteAddress:
		other = v
	default:
		return false
	}

	if hdr == other {
		return true
	} else if hdr == nil || other == nil {
		return false
	}
	return hdr.IP.Equal(other.IP)
}

// IsValid checks whether the header carries an IP address.
func (hdr *RemoteAddress) IsValid() bool { return hdr != nil && hdr.IP != nil }
