package header

import (
	"fmt"
	"io"
	"strconv"

	"braces.dev/errtrace"

	"github.com/hexborn/httpmodel/internal/grammar"
	"github.com/hexborn/httpmodel/internal/util"
)

// Encoding is an HTTP content coding token.
type Encoding string

// Content codings registered by RFC 7231 and RFC 7932.
const (
	EncodingGzip     Encoding = "gzip"
	EncodingCompress Encoding = "compress"
	EncodingDeflate  Encoding = "deflate"
	EncodingBrotli   Encoding = "br"
	EncodingIdentity Encoding = "identity"
)

// ContentEncoding represents the Content-Encoding header field.
// It names the content coding applied to the message body.
type ContentEncoding Encoding

// CanonicName returns the canonical name of the header.
func (ContentEncoding) CanonicName() Name { return "Content-Encoding" }

// LowerName returns the lowercase name of the header.
func (ContentEncoding) LowerName() Name { return "content-encoding" }

// RenderTo writes the header to the provided writer.
func (hdr ContentEncoding) RenderTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(fmt.Fprint(w, hdr.CanonicName(), ": ", hdr.RenderValue()))
}

// Render returns the full "Name: value" representation of the header.
func (hdr ContentEncoding) Render() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	hdr.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

// RenderValue returns the header value without the name prefix.
func (hdr ContentEncoding) RenderValue() string { return string(hdr) }

func (hdr ContentEncoding) String() string { return hdr.Render() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr ContentEncoding) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, hdr.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(hdr.String()))
		return
	default:
		type hideMethods ContentEncoding
		type ContentEncoding hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), ContentEncoding(hdr))
		return
	}
}

// Clone returns a copy of the header.
func (hdr ContentEncoding) Clone() Header { return hdr }

// Equal compares this header with another for equality.
// Content codings compare case-insensitively.
func (hdr ContentEncoding) Equal(val any) bool {
	var other ContentEncoding
	switch v := val.(type) {
	case ContentEncoding:
		other = v
	case *ContentEncoding:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return util.EqFold(hdr, other)
}

// IsValid checks whether the header is syntactically valid.
func (hdr ContentEncoding) IsValid() bool { return grammar.IsToken(string(hdr)) }
