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

// CacheControl represents the Cache-Control header field: an ordered list of
// cache directives.
type CacheControl []CacheDirective

// NewCacheControl returns a Cache-Control header listing the given directives
// in order.
func NewCacheControl(first CacheDirective, more ...CacheDirective) CacheControl {
	return seq[CacheControl](first, more)
}

// CanonicName returns the canonical name of the header.
func (CacheControl) CanonicName() Name { return "Cache-Control" }

// LowerName returns the lowercase name of the header.
func (CacheControl) LowerName() Name { return "cache-control" }

// RenderTo writes the header to the provided writer.
func (hdr CacheControl) RenderTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(renderNameValueTo(w, hdr.CanonicName(), hdr.renderValueTo))
}

func (hdr CacheControl) renderValueTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(renderEntries(w, hdr, ", "))
}

// Render returns the full "Name: value" representation of the header.
func (hdr CacheControl) Render() string { return renderToString(hdr.RenderTo) }

// RenderValue returns the header value without the name prefix.
func (hdr CacheControl) RenderValue() string { return renderToString(hdr.renderValueTo) }

func (hdr CacheControl) String() string { return hdr.Render() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr CacheControl) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, hdr.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(hdr.String()))
		return
	default:
		type hideMethods CacheControl
		type CacheControl hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), CacheControl(hdr))
		return
	}
}

// Clone returns a copy of the header.
func (hdr CacheControl) Clone() Header { return cloneEntries(hdr) }

// Equal compares this header with another for equality.
func (hdr CacheControl) Equal(val any) bool {
	var other CacheControl
	switch v := val.(type) {
	case CacheControl:
		other = v
	case *CacheControl:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return slices.EqualFunc(hdr, other, func(d1, d2 CacheDirective) bool { return d1.Equal(d2) })
}

// IsValid checks whether the header is syntactically valid.
func (hdr CacheControl) IsValid() bool {
	return hdr != nil && !slices.ContainsFunc(hdr, func(d CacheDirective) bool { return !d.IsValid() })
}

// CacheDirective is a single Cache-Control directive: a name with an optional
// argument, e.g. "no-cache" or "max-age=60".
type CacheDirective struct {
	Name  string
	Value string
}

func (d CacheDirective) String() string {
	if d.Value == "" {
		return d.Name
	}
	if grammar.IsToken(d.Value) {
		return d.Name + "=" + d.Value
	}
	return d.Name + "=" + grammar.Quote(d.Value)
}

// Format implements fmt.Formatter for custom formatting of the directive.
func (d CacheDirective) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, d.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(d.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, d.String())
			return
		}

		type hideMethods CacheDirective
		type CacheDirective hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), CacheDirective(d))
		return
	}
}

// Equal compares this directive with another for equality.
// Directive names compare case-insensitively.
func (d CacheDirective) Equal(val any) bool {
	var other CacheDirective
	switch v := val.(type) {
	case CacheDirective:
		other = v
	case *CacheDirective:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return util.EqFold(d.Name, other.Name) && d.Value == other.Value
}

// IsValid checks whether the directive is syntactically valid.
func (d CacheDirective) IsValid() bool { return grammar.IsToken(d.Name) }

// Clone returns a copy of the directive.
func (d CacheDirective) Clone() CacheDirective { return d }
