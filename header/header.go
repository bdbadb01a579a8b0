// Package header models HTTP/1.x message headers as a closed catalogue of
// typed variants plus the open [Raw] fallback for unrecognized names.
//
// Every variant implements [Header] and renders its exact wire value. All
// values are immutable once constructed and safe for concurrent use.
package header

//go:generate go tool errtrace -w .

import (
	"io"
	"net/textproto"
	"slices"

	"braces.dev/errtrace"

	"github.com/hexborn/httpmodel/internal/grammar"
	"github.com/hexborn/httpmodel/internal/ioutil"
	"github.com/hexborn/httpmodel/internal/types"
	"github.com/hexborn/httpmodel/internal/util"
)

// Addr represents a network address consisting of a host and optional port.
type Addr = types.Addr

// Values represents header parameters as a multi-value map.
type Values = types.Values

// Header represents a single HTTP message header field.
type Header interface {
	types.Renderer
	types.Cloneable[Header]
	types.ValidFlag
	types.Equalable
	// CanonicName returns the canonical mixed-case header name, e.g. "Content-Type".
	CanonicName() Name
	// LowerName returns the all-lowercase header name. It is precomputed, so
	// name predicates never lowercase on the fly.
	LowerName() Name
	// RenderValue returns the wire value without the name prefix and without
	// the trailing CRLF.
	RenderValue() string
}

// Name represents an HTTP header name.
type Name string

// ToCanonic converts the Name to its canonical form.
func (n Name) ToCanonic() Name { return CanonicName(n) }

// ToLower converts the Name to all-lowercase.
func (n Name) ToLower() Name { return util.LCase(n) }

// IsValid checks whether the Name is a syntactically valid field name.
func (n Name) IsValid() bool { return grammar.IsToken(string(n)) }

// Equal compares this Name with another for equality.
func (n Name) Equal(val any) bool {
	var other Name
	switch v := val.(type) {
	case Name:
		other = v
	case *Name:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return CanonicName(n) == CanonicName(other)
}

var hdrNames = map[string]Name{
	"Etag":             "ETag",
	"Www-Authenticate": "WWW-Authenticate",
}

// CanonicName converts name to the canonical form.
// The canonicalization converts the first letter and any letter following a
// hyphen to upper case; the rest are converted to lowercase. For example, the
// canonical name for "accept-encoding" is "Accept-Encoding". Names whose
// conventional spelling differs from that rule ("WWW-Authenticate", "ETag")
// are mapped explicitly.
func CanonicName[T ~string](name T) Name {
	name = util.TrimSP(name)
	if n, ok := hdrNames[string(name)]; ok {
		return n
	}

	cn := textproto.CanonicalMIMEHeaderKey(string(name))
	if n, ok := hdrNames[cn]; ok {
		return n
	}
	return Name(cn)
}

// Is reports whether hdr's name matches name.
// The caller must pass name already lowercased; the comparison is exact
// string equality against [Header.LowerName].
func Is(hdr Header, name Name) bool { return hdr.LowerName() == name }

// IsNot is the complement of [Is].
func IsNot(hdr Header, name Name) bool { return !Is(hdr, name) }

// Decompose splits hdr into its lowercased name and wire value, for generic
// header-collection code that inspects headers without knowing every variant.
func Decompose(hdr Header) (Name, string) { return hdr.LowerName(), hdr.RenderValue() }

// Param is a single name/value parameter attached to a header value.
type Param struct {
	Name  string
	Value string
}

// Params is an ordered parameter list; insertion order is preserved on render.
type Params []Param

// Get returns the value of the first parameter with the given name,
// compared case-insensitively.
func (ps Params) Get(name string) (string, bool) {
	for i := range ps {
		if util.EqFold(ps[i].Name, name) {
			return ps[i].Value, true
		}
	}
	return "", false
}

// Has checks whether a parameter with the given name is present.
func (ps Params) Has(name string) bool {
	_, ok := ps.Get(name)
	return ok
}

// Clone returns a copy of the parameter list.
func (ps Params) Clone() Params { return slices.Clone(ps) }

// Equal compares this parameter list with another for equality.
func (ps Params) Equal(val any) bool {
	var other Params
	switch v := val.(type) {
	case Params:
		other = v
	case *Params:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return slices.EqualFunc(ps, other, func(p1, p2 Param) bool {
		return util.EqFold(p1.Name, p2.Name) && p1.Value == p2.Value
	})
}

// IsValid reports whether every parameter name is a token.
func (ps Params) IsValid() bool {
	return !slices.ContainsFunc(ps, func(p Param) bool { return !grammar.IsToken(p.Name) })
}

func renderNameValueTo(w io.Writer, name Name, fn func(io.Writer) (int, error)) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Fprint(name, ": ")
	cw.Call(fn)
	return errtrace.Wrap2(cw.Result())
}

func renderToString(fn func(io.Writer) (int, error)) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	fn(sb) //nolint:errcheck
	return sb.String()
}

func renderEntries[H ~[]E, E any](w io.Writer, hdr H, sep string) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	for i := range hdr {
		if i > 0 {
			cw.Fprint(sep)
		}
		cw.Fprint(hdr[i])
	}
	return errtrace.Wrap2(cw.Result())
}

// renderParamsTo renders params as `; name=value` pairs. When quote is true
// every value is quoted; otherwise only non-token values are.
func renderParamsTo(w io.Writer, params Params, quote bool) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	for _, p := range params {
		cw.Fprint("; ", p.Name, "=")
		if quote || !grammar.IsToken(p.Value) {
			cw.Fprint(grammar.Quote(p.Value))
		} else {
			cw.Fprint(p.Value)
		}
	}
	return errtrace.Wrap2(cw.Result())
}

// searchFold scans entries for a case-insensitive match of target.
// The scan never allocates: it runs per-request on keep-alive and framing
// decision paths.
func searchFold[S ~[]E, E ~string](entries S, target string) bool {
	for i := range entries {
		if util.EqFold(entries[i], target) {
			return true
		}
	}
	return false
}

// seq assembles the "first plus more" convenience constructor arguments into
// the canonical ordered sequence.
func seq[H ~[]E, E any](first E, more []E) H {
	hdr := make(H, 0, len(more)+1)
	hdr = append(hdr, first)
	return append(hdr, more...)
}

func cloneEntries[H ~[]E, E interface{ Clone() E }](hdr H) H {
	var hdr2 H
	if hdr == nil {
		return hdr2
	}
	hdr2 = make(H, len(hdr))
	for i := range hdr {
		hdr2[i] = hdr[i].Clone()
	}
	return hdr2
}
