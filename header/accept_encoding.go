package header

import (
	"fmt"
	"io"
	"slices"
	"strconv"

	"braces.dev/errtrace"

	"github.com/hexborn/httpmodel/internal/grammar"
	"github.com/hexborn/httpmodel/internal/util"
)

// AcceptEncoding represents the Accept-Encoding header field: an ordered list
// of content codings the sender is willing to receive.
type AcceptEncoding []EncodingRange

// NewAcceptEncoding returns an Accept-Encoding header listing the given
// encoding ranges in order.
func NewAcceptEncoding(first EncodingRange, more ...EncodingRange) AcceptEncoding {
	return seq[AcceptEncoding](first, more)
}

// CanonicName returns the canonical name of the header.
func (AcceptEncoding) CanonicName() Name { return "Accept-Encoding" }

// LowerName returns the lowercase name of the header.
func (AcceptEncoding) LowerName() Name { return "accept-encoding" }

// RenderTo writes the header to the provided writer.
func (hdr AcceptEncoding) RenderTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(renderNameValueTo(w, hdr.CanonicName(), hdr.renderValueTo))
}

func (hdr AcceptEncoding) renderValueTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(renderEntries(w, hdr, ", "))
}

// Render returns the full "Name: value" representation of the header.
func (hdr AcceptEncoding) Render() string { return renderToString(hdr.RenderTo) }

// RenderValue returns the header value without the name prefix.
func (hdr AcceptEncoding) RenderValue() string { return renderToString(hdr.renderValueTo) }

func (hdr AcceptEncoding) String() string { return hdr.Render() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr AcceptEncoding) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, hdr.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(hdr.String()))
		return
	default:
		type hideMethods AcceptEncoding
		type AcceptEncoding hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), AcceptEncoding(hdr))
		return
	}
}

// Clone returns a copy of the header.
func (hdr AcceptEncoding) Clone() Header { return cloneEntries(hdr) }

// Equal compares this header with another for equality.
func (hdr AcceptEncoding) Equal(val any) bool {
	var other AcceptEncoding
	switch v := val.(type) {
	case AcceptEncoding:
		other = v
	case *AcceptEncoding:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return slices.EqualFunc(hdr, other, func(rng1, rng2 EncodingRange) bool { return rng1.Equal(rng2) })
}

// IsValid checks whether the header is syntactically valid.
func (hdr AcceptEncoding) IsValid() bool {
	return hdr != nil && !slices.ContainsFunc(hdr, func(rng EncodingRange) bool { return !rng.IsValid() })
}

// EncodingRange is a single Accept-Encoding entry: a content coding or the
// "*" wildcard with optional parameters such as q.
type EncodingRange struct {
	Encoding Encoding
	Params   Params
}

func (rng EncodingRange) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	sb.WriteString(string(rng.Encoding))
	renderParamsTo(sb, rng.Params, false) //nolint:errcheck
	return sb.String()
}

// Format implements fmt.Formatter for custom formatting of the encoding range.
func (rng EncodingRange) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, rng.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(rng.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, rng.String())
			return
		}

		type hideMethods EncodingRange
		type EncodingRange hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), EncodingRange(rng))
		return
	}
}

// Equal compares this encoding range with another for equality.
func (rng EncodingRange) Equal(val any) bool {
	var other EncodingRange
	switch v := val.(type) {
	case EncodingRange:
		other = v
	case *EncodingRange:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return util.EqFold(rng.Encoding, other.Encoding) && rng.Params.Equal(other.Params)
}

// IsValid checks whether the encoding range is syntactically valid.
func (rng EncodingRange) IsValid() bool {
	return (rng.Encoding == "*" || grammar.IsToken(string(rng.Encoding))) && rng.Params.IsValid()
}

// Clone returns a copy of the encoding range.
func (rng EncodingRange) Clone() EncodingRange {
	rng.Params = rng.Params.Clone()
	return rng
}
