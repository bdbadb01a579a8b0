package header

import (
	"fmt"
	"io"
	"strconv"

	"braces.dev/errtrace"

	"github.com/hexborn/httpmodel/internal/grammar"
	"github.com/hexborn/httpmodel/internal/util"
)

// Raw implements a generic header carrying an arbitrary name/value pair.
// It is the fallback for any header name outside the typed catalogue: the
// name is kept exactly as given and the value is opaque.
type Raw struct {
	name  string
	lower Name
	value string
}

// NewRaw returns a Raw header for the given name and value. No format
// checking is applied. The lowercased name is computed once here so repeated
// name comparisons never lowercase again.
func NewRaw(name, value string) *Raw {
	return &Raw{name: name, lower: util.LCase(Name(name)), value: value}
}

// CanonicName returns the header name exactly as it was supplied.
func (hdr *Raw) CanonicName() Name { return Name(hdr.name) }

// LowerName returns the lowercase name of the header.
func (hdr *Raw) LowerName() Name { return hdr.lower }

// Value returns the opaque header value.
func (hdr *Raw) Value() string { return hdr.value }

// RenderTo writes the header to the provided writer.
func (hdr *Raw) RenderTo(w io.Writer) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(fmt.Fprint(w, hdr.CanonicName(), ": ", hdr.RenderValue()))
}

// Render returns the full "Name: value" representation of the header.
func (hdr *Raw) Render() string {
	if hdr == nil {
		return ""
	}
	return renderToString(hdr.RenderTo)
}

// RenderValue returns the header value without the name prefix.
func (hdr *Raw) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return hdr.value
}

func (hdr *Raw) String() string { return hdr.Render() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *Raw) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, hdr.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(hdr.String()))
		return
	default:
		type hideMethods Raw
		type Raw hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*Raw)(hdr))
		return
	}
}

// Clone returns a copy of the header.
func (hdr *Raw) Clone() Header {
	if hdr == nil {
		return nil
	}
	hdr2 := *hdr
	return &hdr2
}

// Equal compares this header with another for equality.
// Names compare case-insensitively, values exactly.
func (hdr *Raw) Equal(val any) bool {
	var other *Raw
	switch v := val.(type) {
	case Raw:
		other = &v
	case *Raw:
		other = v
	default:
		return false
	}

	if hdr == other {
		return true
	} else if hdr == nil || other == nil {
		return false
	}
	return hdr.lower == other.lower && hdr.value == other.value
}

// IsValid checks whether the header name is a syntactically valid field name.
func (hdr *Raw) IsValid() bool { return hdr != nil && grammar.IsToken(hdr.name) }
