package header

import (
	"fmt"
	"io"
	"slices"
	"strconv"

	"braces.dev/errtrace"

	"github.com/hexborn/httpmodel/internal/grammar"
)

// RangeUnit is a range unit accepted by a server, e.g. "bytes".
type RangeUnit string

// RangeUnitBytes is the only range unit defined by RFC 7233.
const RangeUnitBytes RangeUnit = "bytes"

// AcceptRanges represents the Accept-Ranges header field: the range units a
// server supports. An empty unit list renders as "none".
type AcceptRanges []RangeUnit

// NewAcceptRanges returns an Accept-Ranges header listing the given range
// units in order.
func NewAcceptRanges(first RangeUnit, more ...RangeUnit) AcceptRanges {
	return seq[AcceptRanges](first, more)
}

// CanonicName returns the canonical name of the header.
func (AcceptRanges) CanonicName() Name { return "Accept-Ranges" }

// LowerName returns the lowercase name of the header.
func (AcceptRanges) LowerName() Name { return "accept-ranges" }

// RenderTo writes the header to the provided writer.
func (hdr AcceptRanges) RenderTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(renderNameValueTo(w, hdr.CanonicName(), hdr.renderValueTo))
}

func (hdr AcceptRanges) renderValueTo(w io.Writer) (num int, err error) {
	if len(hdr) == 0 {
		return errtrace.Wrap2(fmt.Fprint(w, "none"))
	}
	return errtrace.Wrap2(renderEntries(w, hdr, ", "))
}

// Render returns the full "Name: value" representation of the header.
func (hdr AcceptRanges) Render() string { return renderToString(hdr.RenderTo) }

// RenderValue returns the header value without the name prefix.
func (hdr AcceptRanges) RenderValue() string { return renderToString(hdr.renderValueTo) }

func (hdr AcceptRanges) String() string { return hdr.Render() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr AcceptRanges) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, hdr.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(hdr.String()))
		return
	default:
		type hideMethods AcceptRanges
		type AcceptRanges hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), AcceptRanges(hdr))
		return
	}
}

// Clone returns a copy of the header.
func (hdr AcceptRanges) Clone() Header { return slices.Clone(hdr) }

// Equal compares this header with another for equality.
func (hdr AcceptRanges) Equal(val any) bool {
	var other AcceptRanges
	switch v := val.(type) {
	case AcceptRanges:
		other = v
	case *AcceptRanges:
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
// An empty unit list is valid: it renders as "none".
func (hdr AcceptRanges) IsValid() bool {
	return !slices.ContainsFunc(hdr, func(u RangeUnit) bool { return !grammar.IsToken(string(u)) })
}
