package header

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"braces.dev/errtrace"

	"github.com/hexborn/httpmodel/internal/errorutil"
	"github.com/hexborn/httpmodel/internal/types"
)

// Host represents the Host header field: the target host and optional port.
type Host struct {
	Addr
}

// NewHost returns a Host header for the given host and port.
// Port 0 means "no port": the header renders as the bare host. Any other
// port must fit in 16 bits, otherwise construction fails.
func NewHost(host string, port int) (*Host, error) {
	if port < 0 || port > math.MaxUint16 {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("port %d out of range [0, %d]", port, math.MaxUint16))
	}
	if port == 0 {
		return &Host{types.Host(host)}, nil
	}
	return &Host{types.HostPort(host, uint16(port))}, nil
}

// CanonicName returns the canonical name of the header.
func (*Host) CanonicName() Name { return "Host" }

// LowerName returns the lowercase name of the header.
func (*Host) LowerName() Name { return "host" }

// RenderTo writes the header to the provided writer.
func (hdr *Host) RenderTo(w io.Writer) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderNameValueTo(w, hdr.CanonicName(), hdr.renderValueTo))
}

func (hdr *Host) renderValueTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(fmt.Fprint(w, hdr.Addr))
}

// Render returns the full "Name: value" representation of the header.
func (hdr *Host) Render() string {
	if hdr == nil {
		return ""
	}
	return renderToString(hdr.RenderTo)
}

// RenderValue returns the header value without the name prefix.
func (hdr *Host) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return renderToString(hdr.renderValueTo)
}

func (hdr *Host) String() string { return hdr.Render() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *Host) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, hdr.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(hdr.String()))
		return
	default:
		type hideMethods Host
		type Host hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*Host)(hdr))
		return
	}
}

// Clone returns a copy of the header.
func (hdr *Host) Clone() Header {
	if hdr == nil {
		return nil
	}
	return &Host{hdr.Addr.Clone()}
}

// Equal compares this header with another for equality.
func (hdr *Host) Equal(val any) bool {
	var other *Host
	switch v := val.(type) {
	case Host:
		other = &v
	case *Host:
		other = v
	default:
		return false
	}

	if hdr == other {
		return true
	} else if hdr == nil || other == nil {
		return false
	}
	return hdr.Addr.Equal(other.Addr)
}

// IsValid checks whether the header is syntactically valid.
func (hdr *Host) IsValid() bool { return hdr != nil && hdr.Addr.IsValid() }
