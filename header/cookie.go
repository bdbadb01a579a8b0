package header

import (
	"fmt"
	"io"
	"net/http"
	"slices"
	"strconv"
	"time"

	"braces.dev/errtrace"

	"github.com/hexborn/httpmodel/internal/grammar"
	"github.com/hexborn/httpmodel/internal/ioutil"
	"github.com/hexborn/httpmodel/internal/util"
)

// Cookie represents the Cookie request header field: an ordered list of
// cookie name/value pairs joined with "; ".
type Cookie []HTTPCookie

// NewCookie returns a Cookie header listing the given cookies in order.
func NewCookie(first HTTPCookie, more ...HTTPCookie) Cookie {
	return seq[Cookie](first, more)
}

// CanonicName returns the canonical name of the header.
func (Cookie) CanonicName() Name { return "Cookie" }

// LowerName returns the lowercase name of the header.
func (Cookie) LowerName() Name { return "cookie" }

// RenderTo writes the header to the provided writer.
func (hdr Cookie) RenderTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(renderNameValueTo(w, hdr.CanonicName(), hdr.renderValueTo))
}

func (hdr Cookie) renderValueTo(w io.Writer) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	for i := range hdr {
		if i > 0 {
			cw.Fprint("; ")
		}
		cw.Fprint(hdr[i].Pair())
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the full "Name: value" representation of the header.
func (hdr Cookie) Render() string { return renderToString(hdr.RenderTo) }

// RenderValue returns the header value without the name prefix.
func (hdr Cookie) RenderValue() string { return renderToString(hdr.renderValueTo) }

func (hdr Cookie) String() string { return hdr.Render() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr Cookie) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, hdr.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(hdr.String()))
		return
	default:
		type hideMethods Cookie
		type Cookie hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), Cookie(hdr))
		return
	}
}

// Clone returns a copy of the header.
func (hdr Cookie) Clone() Header { return cloneEntries(hdr) }

// Equal compares this header with another for equality.
func (hdr Cookie) Equal(val any) bool {
	var other Cookie
	switch v := val.(type) {
	case Cookie:
		other = v
	case *Cookie:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return slices.EqualFunc(hdr, other, func(c1, c2 HTTPCookie) bool { return c1.Equal(c2) })
}

// IsValid checks whether the header is syntactically valid.
func (hdr Cookie) IsValid() bool {
	return hdr != nil && !slices.ContainsFunc(hdr, func(c HTTPCookie) bool { return !c.IsValid() })
}

// HTTPCookie holds a cookie name/value pair plus the attributes used by the
// Set-Cookie response header. The Cookie request header renders only the
// pair; Set-Cookie renders the pair with all set attributes.
type HTTPCookie struct {
	Name  string
	Value string

	// Set-Cookie attributes.
	Expires  time.Time
	MaxAge   int // 0 unset, negative renders Max-Age=0
	Domain   string
	Path     string
	Secure   bool
	HTTPOnly bool
}

// Pair returns the "name=value" form used by the Cookie request header.
func (c HTTPCookie) Pair() string { return c.Name + "=" + c.Value }

// String returns the full Set-Cookie form of the cookie.
func (c HTTPCookie) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	sb.WriteString(c.Pair())
	if !c.Expires.IsZero() {
		sb.WriteString("; Expires=")
		sb.WriteString(c.Expires.UTC().Format(http.TimeFormat))
	}
	if c.MaxAge > 0 {
		sb.WriteString("; Max-Age=")
		sb.WriteString(strconv.Itoa(c.MaxAge))
	} else if c.MaxAge < 0 {
		sb.WriteString("; Max-Age=0")
	}
	if c.Domain != "" {
		sb.WriteString("; Domain=")
		sb.WriteString(c.Domain)
	}
	if c.Path != "" {
		sb.WriteString("; Path=")
		sb.WriteString(c.Path)
	}
	if c.Secure {
		sb.WriteString("; Secure")
	}
	if c.HTTPOnly {
		sb.WriteString("; HttpOnly")
	}
	return sb.String()
}

// Format implements fmt.Formatter for custom formatting of the cookie.
func (c HTTPCookie) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, c.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(c.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, c.String())
			return
		}

		type hideMethods HTTPCookie
		type HTTPCookie hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), HTTPCookie(c))
		return
	}
}

// Equal compares this cookie with another for equality.
func (c HTTPCookie) Equal(val any) bool {
	var other HTTPCookie
	switch v := val.(type) {
	case HTTPCookie:
		other = v
	case *HTTPCookie:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return c.Name == other.Name &&
		c.Value == other.Value &&
		c.Expires.Equal(other.Expires) &&
		c.MaxAge == other.MaxAge &&
		util.EqFold(c.Domain, other.Domain) &&
		c.Path == other.Path &&
		c.Secure == other.Secure &&
		c.HTTPOnly == other.HTTPOnly
}

// IsValid checks whether the cookie name is a valid token.
// Value syntax is left to the producer.
func (c HTTPCookie) IsValid() bool { return grammar.IsToken(c.Name) }

// Clone returns a copy of the cookie.
func (c HTTPCookie) Clone() HTTPCookie { return c }
