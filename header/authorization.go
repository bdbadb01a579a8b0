package header

import (
	"fmt"
	"io"
	"strconv"

	"braces.dev/errtrace"

	"github.com/hexborn/httpmodel/internal/grammar"
	"github.com/hexborn/httpmodel/internal/types"
	"github.com/hexborn/httpmodel/internal/util"
)

// Credentials is implemented by authorization credential schemes.
type Credentials interface {
	fmt.Stringer
	types.ValidFlag
	types.Equalable
	types.Cloneable[Credentials]
}

// Authorization represents the Authorization header field carrying the
// credentials of the request.
type Authorization struct {
	Credentials
}

// NewAuthorization returns an Authorization header for the given credentials.
func NewAuthorization(c Credentials) *Authorization { return &Authorization{c} }

// CanonicName returns the canonical name of the header.
func (*Authorization) CanonicName() Name { return "Authorization" }

// LowerName returns the lowercase name of the header.
func (*Authorization) LowerName() Name { return "authorization" }

// RenderTo writes the header to the provided writer.
func (hdr *Authorization) RenderTo(w io.Writer) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderNameValueTo(w, hdr.CanonicName(), hdr.renderValueTo))
}

func (hdr *Authorization) renderValueTo(w io.Writer) (num int, err error) {
	if hdr.Credentials == nil {
		return 0, nil
	}
	return errtrace.Wrap2(fmt.Fprint(w, hdr.Credentials))
}

// Render returns the full "Name: value" representation of the header.
func (hdr *Authorization) Render() string {
	if hdr == nil {
		return ""
	}
	return renderToString(hdr.RenderTo)
}

// RenderValue returns the header value without the name prefix.
func (hdr *Authorization) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return renderToString(hdr.renderValueTo)
}

func (hdr *Authorization) String() string { return hdr.Render() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *Authorization) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, hdr.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(hdr.String()))
		return
	default:
		type hideMethods Authorization
		type Authorization hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*Authorization)(hdr))
		return
	}
}

// Clone returns a copy of the header.
func (hdr *Authorization) Clone() Header {
	if hdr == nil {
		return nil
	}
	if hdr.Credentials == nil {
		return &Authorization{}
	}
	return &Authorization{hdr.Credentials.Clone()}
}

// Equal compares this header with another for equality.
func (hdr *Authorization) Equal(val any) bool {
	var other *Authorization
	switch v := val.(type) {
	case Authorization:
		other = &v
	case *Authorization:
		other = v
	default:
		return false
	}

	if hdr == other {
		return true
	} else if hdr == nil || other == nil {
		return false
	}
	switch {
	case hdr.Credentials == nil && other.Credentials == nil:
		return true
	case hdr.Credentials == nil || other.Credentials == nil:
		return false
	}
	return hdr.Credentials.Equal(other.Credentials)
}

// IsValid checks whether the header is syntactically valid.
func (hdr *Authorization) IsValid() bool {
	return hdr != nil && hdr.Credentials != nil && hdr.Credentials.IsValid()
}

// GenericCredentials is a scheme-agnostic [Credentials] implementation: an
// auth scheme followed by either a token68 value or auth params, e.g.
// `Bearer dGhlIHRva2Vu` or `Basic realm="proxy"`.
type GenericCredentials struct {
	Scheme string
	Token  string
	Params Params
}

func (c GenericCredentials) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	sb.WriteString(c.Scheme)
	if c.Token != "" {
		sb.WriteByte(' ')
		sb.WriteString(c.Token)
		return sb.String()
	}
	for i, p := range c.Params {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte(' ')
		sb.WriteString(p.Name)
		sb.WriteByte('=')
		if grammar.IsToken(p.Value) {
			sb.WriteString(p.Value)
		} else {
			sb.WriteString(grammar.Quote(p.Value))
		}
	}
	return sb.String()
}

// Equal compares these credentials with another value for equality.
// Schemes compare case-insensitively.
func (c GenericCredentials) Equal(val any) bool {
	var other GenericCredentials
	switch v := val.(type) {
	case GenericCredentials:
		other = v
	case *GenericCredentials:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return util.EqFold(c.Scheme, other.Scheme) &&
		c.Token == other.Token &&
		c.Params.Equal(other.Params)
}

// IsValid checks whether the credentials are syntactically valid.
func (c GenericCredentials) IsValid() bool {
	return grammar.IsToken(c.Scheme) && c.Params.IsValid()
}

// Clone returns a copy of the credentials.
func (c GenericCredentials) Clone() Credentials {
	c.Params = c.Params.Clone()
	return c
}
