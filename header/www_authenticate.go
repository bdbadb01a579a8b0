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

// WWWAuthenticate represents the WWW-Authenticate header field: an ordered
// list of authentication challenges joined with commas.
type WWWAuthenticate []Challenge

// NewWWWAuthenticate returns a WWW-Authenticate header listing the given
// challenges in order.
func NewWWWAuthenticate(first Challenge, more ...Challenge) WWWAuthenticate {
	return seq[WWWAuthenticate](first, more)
}

// CanonicName returns the canonical name of the header.
func (WWWAuthenticate) CanonicName() Name { return "WWW-Authenticate" }

// LowerName returns the lowercase name of the header.
func (WWWAuthenticate) LowerName() Name { return "www-authenticate" }

// RenderTo writes the header to the provided writer.
func (hdr WWWAuthenticate) RenderTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(renderNameValueTo(w, hdr.CanonicName(), hdr.renderValueTo))
}

func (hdr WWWAuthenticate) renderValueTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(renderEntries(w, hdr, ", "))
}

// Render returns the full "Name: value" representation of the header.
func (hdr WWWAuthenticate) Render() string { return renderToString(hdr.RenderTo) }

// RenderValue returns the header value without the name prefix.
func (hdr WWWAuthenticate) RenderValue() string { return renderToString(hdr.renderValueTo) }

func (hdr WWWAuthenticate) String() string { return hdr.Render() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr WWWAuthenticate) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, hdr.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(hdr.String()))
		return
	default:
		type hideMethods WWWAuthenticate
		type WWWAuthenticate hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), WWWAuthenticate(hdr))
		return
	}
}

// Clone returns a copy of the header.
func (hdr WWWAuthenticate) Clone() Header { return cloneEntries(hdr) }

// Equal compares this header with another for equality.
func (hdr WWWAuthenticate) Equal(val any) bool {
	var other WWWAuthenticate
	switch v := val.(type) {
	case WWWAuthenticate:
		other = v
	case *WWWAuthenticate:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return slices.EqualFunc(hdr, other, func(ch1, ch2 Challenge) bool { return ch1.Equal(ch2) })
}

// IsValid checks whether the header is syntactically valid.
func (hdr WWWAuthenticate) IsValid() bool {
	return hdr != nil && !slices.ContainsFunc(hdr, func(ch Challenge) bool { return !ch.IsValid() })
}

// Challenge is a single authentication challenge: an auth scheme with an
// optional realm and further auth params, e.g. `Basic realm="files"`.
type Challenge struct {
	Scheme string
	Realm  string
	Params Params
}

func (ch Challenge) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	sb.WriteString(ch.Scheme)
	sep := " "
	if ch.Realm != "" {
		sb.WriteString(sep)
		sb.WriteString("realm=")
		sb.WriteString(grammar.Quote(ch.Realm))
		sep = ", "
	}
	for _, p := range ch.Params {
		sb.WriteString(sep)
		sb.WriteString(p.Name)
		sb.WriteByte('=')
		if grammar.IsToken(p.Value) {
			sb.WriteString(p.Value)
		} else {
			sb.WriteString(grammar.Quote(p.Value))
		}
		sep = ", "
	}
	return sb.String()
}

// Format implements fmt.Formatter for custom formatting of the challenge.
func (ch Challenge) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, ch.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(ch.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, ch.String())
			return
		}

		type hideMethods Challenge
		type Challenge hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), Challenge(ch))
		return
	}
}

// Equal compares this challenge with another for equality.
// Schemes compare case-insensitively.
func (ch Challenge) Equal(val any) bool {
	var other Challenge
	switch v := val.(type) {
	case Challenge:
		other = v
	case *Challenge:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return util.EqFold(ch.Scheme, other.Scheme) &&
		ch.Realm == other.Realm &&
		ch.Params.Equal(other.Params)
}

// IsValid checks whether the challenge is syntactically valid.
func (ch Challenge) IsValid() bool { return grammar.IsToken(ch.Scheme) && ch.Params.IsValid() }

// Clone returns a copy of the challenge.
func (ch Challenge) Clone() Challenge {
	ch.Params = ch.Params.Clone()
	return ch
}
