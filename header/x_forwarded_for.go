package header

import (
	"fmt"
	"io"
	"net"
	"slices"
	"strconv"

	"braces.dev/errtrace"

	"github.com/hexborn/httpmodel/internal/ioutil"
)

// XForwardedFor represents the X-Forwarded-For header field: the ordered
// chain of client and proxy addresses. A nil entry stands for a hop whose
// address is unknown and renders as "unknown".
type XForwardedFor []net.IP

// NewXForwardedFor returns an X-Forwarded-For header listing the given
// addresses in order, all treated as known.
func NewXForwardedFor(first net.IP, more ...net.IP) XForwardedFor {
	return seq[XForwardedFor](first, more)
}

// CanonicName returns the canonical name of the header.
func (XForwardedFor) CanonicName() Name { return "X-Forwarded-For" }

// LowerName returns the lowercase name of the header.
func (XForwardedFor) LowerName() Name { return "x-forwarded-for" }

// RenderTo writes the header to the provided writer.
func (hdr XForwardedFor) RenderTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(renderNameValueTo(w, hdr.CanonicName(), hdr.renderValueTo))
}

func (hdr XForwardedFor) renderValueTo(w io.Writer) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	for i := range hdr {
		if i > 0 {
			cw.Fprint(", ")
		}
		if hdr[i] == nil {
			cw.Fprint("unknown")
		} else {
			cw.Fprint(hdr[i].String())
		}
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the full "Name: value" representation of the header.
func (hdr XForwardedFor) Render() string { return renderToString(hdr.RenderTo) }

// RenderValue returns the header value without the name prefix.
func (hdr XForwardedFor) RenderValue() string { return renderToString(hdr.renderValueTo) }

func (hdr XForwardedFor) String() string { return hdr.Render() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr XForwardedFor) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, hdr.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(hdr.String()))
		return
	default:
		type hideMethods XForwardedFor
		type XForwardedFor hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), XForwardedFor(hdr))
		return
	}
}

// Clone returns a copy of the header including the underlying IP slices.
func (hdr XForwardedFor) Clone() Header {
	if hdr == nil {
		return XForwardedFor(nil)
	}
	hdr2 := make(XForwardedFor, len(hdr))
	for i := range hdr {
		hdr2[i] = slices.Clone(hdr[i])
	}
	return hdr2
}

// Equal compares this header with another for equality.
func (hdr XForwardedFor) Equal(val any) bool {
	var other XForwardedFor
	switch v := val.(type) {
	case XForwardedFor:
		other = v
	case *XForwardedFor:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return slices.EqualFunc(hdr, other, func(ip1, ip2 net.IP) bool {
		if ip1 == nil || ip2 == nil {
			return ip1 == nil && ip2 == nil
		}
		return ip1.Equal(ip2)
	})
}

// IsValid checks whether the header carries at least one entry.
// Unknown hops are valid entries.
func (hdr XForwardedFor) IsValid() bool { return len(hdr) > 0 }
