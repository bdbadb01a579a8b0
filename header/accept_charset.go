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

// AcceptCharset represents the Accept-Charset header field: an ordered list
// of charsets the sender is willing to receive.
type AcceptCharset []CharsetRange

// NewAcceptCharset returns an Accept-Charset header listing the given charset
// ranges in order.
func NewAcceptCharset(first CharsetRange, more ...CharsetRange) AcceptCharset {
	return seq[AcceptCharset](first, more)
}

// CanonicName returns the canonical name of the header.
func (AcceptCharset) CanonicName() Name { return "Accept-Charset" }

// LowerName returns the lowercase name of the header.
func (AcceptCharset) LowerName() Name { return "accept-charset" }

// RenderTo writes the header to the provided writer.
func (hdr AcceptCharset) RenderTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(renderNameValueTo(w, hdr.CanonicName(), hdr.renderValueTo))
}

func (hdr AcceptCharset) renderValueTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(renderEntries(w, hdr, ", "))
}

// Render returns the full "Name: value" representation of the header.
func (hdr AcceptCharset) Render() string { return renderToString(hdr.RenderTo) }

// RenderValue returns the header value without the name prefix.
func (hdr AcceptCharset) RenderValue() string { return renderToString(hdr.renderValueTo) }

func (hdr AcceptCharset) String() string { return hdr.Render() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr AcceptCharset) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, hdr.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(hdr.String()))
		return
	default:
		type hideMethods AcceptCharset
		type AcceptCharset hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), AcceptCharset(hdr))
		return
	}
}

// Clone returns a copy of the header.
func (hdr AcceptCharset) Clone() Header { return cloneEntries(hdr) }

// Equal compares this header with another for equality.
func (hdr AcceptCharset) Equal(val any) bool {
	var other AcceptCharset
	switch v := val.(type) {
	case AcceptCharset:
		other = v
	case *AcceptCharset:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return slices.EqualFunc(hdr, other, func(rng1, rng2 CharsetRange) bool { return rng1.Equal(rng2) })
}

// IsValid checks whether the header is syntactically valid.
func (hdr AcceptCharset) IsValid() bool {
	return hdr != nil && !slices.ContainsFunc(hdr, func(rng CharsetRange) bool { return !rng.IsValid() })
}

// CharsetRange is a single Accept-Charset entry: a charset name or the "*"
// wildcard with optional parameters such as q.
type CharsetRange struct {
	Charset string
	Params  Params
}

func (rng CharsetRange) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	sb.WriteString(rng.Charset)
	renderParamsTo(sb, rng.Params, false) //nolint:errcheck
	return sb.String()
}

// Format implements fmt.Formatter for custom formatting of the charset range.
func (rng CharsetRange) Format(f fmt.State, verb rune) {
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

		type hideMethods CharsetRange
		type CharsetRange hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), CharsetRange(rng))
		return
	}
}

// Equal compares this charset range with another for equality.
func (rng CharsetRange) Equal(val any) bool {
	var other CharsetRange
	switch v := val.(type) {
	case CharsetRange:
		other = v
	case *CharsetRange:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return util.EqFold(rng.Charset, other.Charset) && rng.Params.Equal(other.Params)
}

// IsValid checks whether the charset range is syntactically valid.
func (rng CharsetRange) IsValid() bool {
	return (rng.Charset == "*" || grammar.IsToken(rng.Charset)) && rng.Params.IsValid()
}

// Clone returns a copy of the charset range.
func (rng CharsetRange) Clone() CharsetRange {
	rng.Params = rng.Params.Clone()
	return rng
}
