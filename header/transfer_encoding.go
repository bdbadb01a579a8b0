package header

import (
	"fmt"
	"io"
	"slices"
	"strconv"

	"braces.dev/errtrace"

	"github.com/hexborn/httpmodel/internal/grammar"
)

// TransferEncodingChunked is the chunked transfer coding token.
const TransferEncodingChunked = "chunked"

// TransferEncoding represents the Transfer-Encoding header field: the ordered
// list of transfer codings applied to the message body.
type TransferEncoding []string

// NewTransferEncoding returns a Transfer-Encoding header listing the given
// transfer codings in order.
func NewTransferEncoding(first string, more ...string) TransferEncoding {
	return seq[TransferEncoding](first, more)
}

// CanonicName returns the canonical name of the header.
func (TransferEncoding) CanonicName() Name { return "Transfer-Encoding" }

// LowerName returns the lowercase name of the header.
func (TransferEncoding) LowerName() Name { return "transfer-encoding" }

// HasChunked reports whether the "chunked" coding is present.
// The comparison is case-insensitive.
func (hdr TransferEncoding) HasChunked() bool { return searchFold(hdr, TransferEncodingChunked) }

// RenderTo writes the header to the provided writer.
func (hdr TransferEncoding) RenderTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(renderNameValueTo(w, hdr.CanonicName(), hdr.renderValueTo))
}

func (hdr TransferEncoding) renderValueTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(renderEntries(w, hdr, ", "))
}

// Render returns the full "Name: value" representation of the header.
func (hdr TransferEncoding) Render() string { return renderToString(hdr.RenderTo) }

// RenderValue returns the header value without the name prefix.
func (hdr TransferEncoding) RenderValue() string { return renderToString(hdr.renderValueTo) }

func (hdr TransferEncoding) String() string { return hdr.Render() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr TransferEncoding) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, hdr.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(hdr.String()))
		return
	default:
		type hideMethods TransferEncoding
		type TransferEncoding hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), TransferEncoding(hdr))
		return
	}
}

// Clone returns a copy of the header.
func (hdr TransferEncoding) Clone() Header { return slices.Clone(hdr) }

// Equal compares this header with another for equality.
func (hdr TransferEncoding) Equal(val any) bool {
	var other TransferEncoding
	switch v := val.(type) {
	case TransferEncoding:
		other = v
	case *TransferEncoding:
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
func (hdr TransferEncoding) IsValid() bool {
	return hdr != nil && !slices.ContainsFunc(hdr, func(tc string) bool { return !grammar.IsToken(tc) })
}
