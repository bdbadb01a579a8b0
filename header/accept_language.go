package header

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/hexborn/httpmodel/internal/grammar"
	"github.com/hexborn/httpmodel/internal/util"
)

// AcceptLanguage represents the Accept-Language header field: an ordered list
// of language ranges the sender prefers.
type AcceptLanguage []LanguageRange

// NewAcceptLanguage returns an Accept-Language header listing the given
// language ranges in order.
func NewAcceptLanguage(first LanguageRange, more ...LanguageRange) AcceptLanguage {
	return seq[AcceptLanguage](first, more)
}

// CanonicName returns the canonical name of the header.
func (AcceptLanguage) CanonicName() Name { return "Accept-Language" }

// LowerName returns the lowercase name of the header.
func (AcceptLanguage) LowerName() Name { return "accept-language" }

// RenderTo writes the header to the provided writer.
func (hdr AcceptLanguage) RenderTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(renderNameValueTo(w, hdr.CanonicName(), hdr.renderValueTo))
}

func (hdr AcceptLanguage) renderValueTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(renderEntries(w, hdr, ", "))
}

// Render returns the full "Name: value" representation of the header.
func (hdr AcceptLanguage) Render() string { return renderToString(hdr.RenderTo) }

// RenderValue returns the header value without the name prefix.
func (hdr AcceptLanguage) RenderValue() string { return renderToString(hdr.renderValueTo) }

func (hdr AcceptLanguage) String() string { return hdr.Render() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr AcceptLanguage) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, hdr.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(hdr.String()))
		return
	default:
		type hideMethods AcceptLanguage
		type AcceptLanguage hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), AcceptLanguage(hdr))
		return
	}
}

// Clone returns a copy of the header.
func (hdr AcceptLanguage) Clone() Header { return cloneEntries(hdr) }

// Equal compares this header with another for equality.
func (hdr AcceptLanguage) Equal(val any) bool {
	var other AcceptLanguage
	switch v := val.(type) {
	case AcceptLanguage:
		other = v
	case *AcceptLanguage:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return slices.EqualFunc(hdr, other, func(rng1, rng2 LanguageRange) bool { return rng1.Equal(rng2) })
}

// IsValid checks whether the header is syntactically valid.
func (hdr AcceptLanguage) IsValid() bool {
	return hdr != nil && !slices.ContainsFunc(hdr, func(rng LanguageRange) bool { return !rng.IsValid() })
}

// LanguageRange is a single Accept-Language entry: a language tag or the "*"
// wildcard with optional parameters such as q.
type LanguageRange struct {
	Language string
	Params   Params
}

func (rng LanguageRange) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	sb.WriteString(rng.Language)
	renderParamsTo(sb, rng.Params, false) //nolint:errcheck
	return sb.String()
}

// Format implements fmt.Formatter for custom formatting of the language range.
func (rng LanguageRange) Format(f fmt.State, verb rune) {
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

		type hideMethods LanguageRange
		type LanguageRange hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), LanguageRange(rng))
		return
	}
}

// Equal compares this language range with another for equality.
func (rng LanguageRange) Equal(val any) bool {
	var other LanguageRange
	switch v := val.(type) {
	case LanguageRange:
		other = v
	case *LanguageRange:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return util.EqFold(rng.Language, other.Language) && rng.Params.Equal(other.Params)
}

// IsValid checks whether the language range is syntactically valid.
// A language range is the "*" wildcard or hyphen-separated alphanumeric subtags.
func (rng LanguageRange) IsValid() bool {
	if rng.Language == "*" {
		return rng.Params.IsValid()
	}
	for _, sub := range strings.Split(rng.Language, "-") {
		if !grammar.IsToken(sub) {
			return false
		}
	}
	return rng.Language != "" && rng.Params.IsValid()
}

// Clone returns a copy of the language range.
func (rng LanguageRange) Clone() LanguageRange {
	rng.Params = rng.Params.Clone()
	return rng
}
