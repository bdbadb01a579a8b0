package header

import (
	"fmt"
	"io"
	"slices"
	"strconv"

	"braces.dev/errtrace"

	"github.com/hexborn/httpmodel/internal/util"
)

// Accept represents the Accept header field: an ordered list of media ranges
// the sender is willing to receive.
type Accept []MediaRange

// NewAccept returns an Accept header listing the given media ranges in order.
func NewAccept(first MediaRange, more ...MediaRange) Accept {
	return seq[Accept](first, more)
}

// CanonicName returns the canonical name of the header.
func (Accept) CanonicName() Name { return "Accept" }

// LowerName returns the lowercase name of the header.
func (Accept) LowerName() Name { return "accept" }

// RenderTo writes the header to the provided writer.
func (hdr Accept) RenderTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(renderNameValueTo(w, hdr.CanonicName(), hdr.renderValueTo))
}

func (hdr Accept) renderValueTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(renderEntries(w, hdr, ", "))
}

// Render returns the full "Name: value" representation of the header.
func (hdr Accept) Render() string { return renderToString(hdr.RenderTo) }

// RenderValue returns the header value without the name prefix.
func (hdr Accept) RenderValue() string { return renderToString(hdr.renderValueTo) }

func (hdr Accept) String() string { return hdr.Render() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr Accept) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, hdr.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(hdr.String()))
		return
	default:
		type hideMethods Accept
		type Accept hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), Accept(hdr))
		return
	}
}

// Clone returns a copy of the header.
func (hdr Accept) Clone() Header { return cloneEntries(hdr) }

// Equal compares this header with another for equality.
func (hdr Accept) Equal(val any) bool {
	var other Accept
	switch v := val.(type) {
	case Accept:
		other = v
	case *Accept:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return slices.EqualFunc(hdr, other, func(rng1, rng2 MediaRange) bool { return rng1.Equal(rng2) })
}

// IsValid checks whether the header is syntactically valid.
func (hdr Accept) IsValid() bool {
	return hdr != nil && !slices.ContainsFunc(hdr, func(rng MediaRange) bool { return !rng.IsValid() })
}

// MediaRange is a single Accept entry: a media type pattern with optional
// accept parameters such as q.
type MediaRange struct {
	MIMEType
	Params Params
}

func (rng MediaRange) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	sb.WriteString(rng.MIMEType.String())
	renderParamsTo(sb, rng.Params, false) //nolint:errcheck
	return sb.String()
}

// Format implements fmt.Formatter for custom formatting of the media range.
func (rng MediaRange) Format(f fmt.State, verb rune) {
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

		type hideMethods MediaRange
		type MediaRange hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), MediaRange(rng))
		return
	}
}

// Equal compares this media range with another for equality.
func (rng MediaRange) Equal(val any) bool {
	var other MediaRange
	switch v := val.(type) {
	case MediaRange:
		other = v
	case *MediaRange:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return rng.MIMEType.Equal(other.MIMEType) && rng.Params.Equal(other.Params)
}

// IsValid checks whether the media range is syntactically valid.
func (rng MediaRange) IsValid() bool {
	return rng.MIMEType.IsValid() && rng.Params.IsValid()
}

// IsZero reports whether the media range carries no information.
func (rng MediaRange) IsZero() bool {
	return rng.MIMEType.IsZero() && len(rng.Params) == 0
}

// Clone returns a copy of the media range.
func (rng MediaRange) Clone() MediaRange {
	rng.MIMEType = rng.MIMEType.Clone()
	rng.Params = rng.Params.Clone()
	return rng
}
