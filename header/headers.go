package header

import (
	"fmt"
	"io"
	"slices"
	"strconv"

	"braces.dev/errtrace"

	"github.com/hexborn/httpmodel/internal/ioutil"
)

// Headers is an ordered collection of message headers. Lookup methods accept
// names in any case; the name is lowercased once per call and matched with
// [Is] against each entry.
type Headers []Header

// Get returns the first header matching name.
func (hs Headers) Get(name Name) (Header, bool) {
	name = name.ToLower()
	for _, hdr := range hs {
		if Is(hdr, name) {
			return hdr, true
		}
	}
	return nil, false
}

// GetAll returns all headers matching name, preserving order.
func (hs Headers) GetAll(name Name) []Header {
	name = name.ToLower()
	var out []Header
	for _, hdr := range hs {
		if Is(hdr, name) {
			out = append(out, hdr)
		}
	}
	return out
}

// Has reports whether a header matching name is present.
func (hs Headers) Has(name Name) bool {
	_, ok := hs.Get(name)
	return ok
}

// Values flattens the collection into a name-to-values multimap keyed by
// lowercase name, for consumers that inspect headers without knowing every
// variant. Repeated names accumulate in order.
func (hs Headers) Values() Values {
	vals := make(Values, len(hs))
	for _, hdr := range hs {
		name, value := Decompose(hdr)
		vals.Append(string(name), value)
	}
	return vals
}

// Del returns a copy of the collection without headers matching name.
func (hs Headers) Del(name Name) Headers {
	name = name.ToLower()
	return slices.DeleteFunc(slices.Clone(hs), func(hdr Header) bool { return Is(hdr, name) })
}

// RenderTo writes every header as a "Name: value" line terminated with CRLF.
func (hs Headers) RenderTo(w io.Writer) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	for _, hdr := range hs {
		cw.Call(hdr.RenderTo)
		cw.Fprint("\r\n")
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the rendered header block.
func (hs Headers) Render() string { return renderToString(hs.RenderTo) }

func (hs Headers) String() string { return hs.Render() }

// Format implements fmt.Formatter for custom formatting of the collection.
func (hs Headers) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, hs.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(hs.String()))
		return
	default:
		type hideMethods Headers
		type Headers hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), Headers(hs))
		return
	}
}

// Clone returns a deep copy of the collection.
func (hs Headers) Clone() Headers {
	var hs2 Headers
	if hs == nil {
		return hs2
	}
	hs2 = make(Headers, len(hs))
	for i := range hs {
		hs2[i] = hs[i].Clone()
	}
	return hs2
}

// Equal compares this collection with another for equality, order included.
func (hs Headers) Equal(val any) bool {
	var other Headers
	switch v := val.(type) {
	case Headers:
		other = v
	case *Headers:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return slices.EqualFunc(hs, other, func(h1, h2 Header) bool { return h1.Equal(h2) })
}

// IsValid checks whether every header in the collection is valid.
func (hs Headers) IsValid() bool {
	return !slices.ContainsFunc(hs, func(hdr Header) bool { return !hdr.IsValid() })
}
