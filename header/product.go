package header

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hexborn/httpmodel/internal/grammar"
	"github.com/hexborn/httpmodel/internal/util"
)

// ProductVersion is a single product token of a Server or User-Agent header:
// a product name with optional version and optional parenthesized comment.
type ProductVersion struct {
	Product string
	Version string
	Comment string
}

func (pv ProductVersion) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	sb.WriteString(pv.Product)
	if pv.Version != "" {
		sb.WriteByte('/')
		sb.WriteString(pv.Version)
	}
	if pv.Comment != "" {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte('(')
		sb.WriteString(pv.Comment)
		sb.WriteByte(')')
	}
	return sb.String()
}

// Format implements fmt.Formatter for custom formatting of the product token.
func (pv ProductVersion) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, pv.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(pv.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, pv.String())
			return
		}

		type hideMethods ProductVersion
		type ProductVersion hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), ProductVersion(pv))
		return
	}
}

// Equal compares this product token with another for equality.
func (pv ProductVersion) Equal(val any) bool {
	var other ProductVersion
	switch v := val.(type) {
	case ProductVersion:
		other = v
	case *ProductVersion:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return pv == other
}

// IsValid checks whether the product token is syntactically valid.
func (pv ProductVersion) IsValid() bool {
	if pv.Product == "" {
		return pv.Version == "" && pv.Comment != ""
	}
	return grammar.IsToken(pv.Product) &&
		(pv.Version == "" || grammar.IsToken(pv.Version))
}

// Clone returns a copy of the product token.
func (pv ProductVersion) Clone() ProductVersion { return pv }

// ParseProducts splits a free-text products string, e.g.
// "Mozilla/5.0 (X11; Linux x86_64) Gecko/20100101", into its product tokens.
// A parenthesized group attaches as the comment of the preceding product, or
// forms a comment-only token when there is none.
func ParseProducts(s string) []ProductVersion {
	var pvs []ProductVersion
	s = util.TrimSP(s)
	for len(s) > 0 {
		if s[0] == '(' {
			var comment string
			if end := strings.IndexByte(s, ')'); end < 0 {
				comment, s = s[1:], ""
			} else {
				comment, s = s[1:end], s[end+1:]
			}
			if len(pvs) > 0 && pvs[len(pvs)-1].Comment == "" {
				pvs[len(pvs)-1].Comment = comment
			} else {
				pvs = append(pvs, ProductVersion{Comment: comment})
			}
		} else {
			tok := s
			if i := strings.IndexAny(s, " \t("); i >= 0 {
				tok, s = s[:i], s[i:]
			} else {
				s = ""
			}
			pv := ProductVersion{Product: tok}
			if i := strings.IndexByte(tok, '/'); i >= 0 {
				pv.Product, pv.Version = tok[:i], tok[i+1:]
			}
			pvs = append(pvs, pv)
		}
		s = strings.TrimLeft(s, " \t")
	}
	return pvs
}
