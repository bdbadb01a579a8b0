package header

import (
	"fmt"
	"io"
	"strconv"

	"braces.dev/errtrace"

	"github.com/hexborn/httpmodel/internal/grammar"
	"github.com/hexborn/httpmodel/internal/util"
)

// ContentType represents the Content-Type header field.
// It indicates the media type of the message body.
type ContentType struct {
	MIMEType
}

// NewContentType returns a Content-Type header for the given media type.
func NewContentType(mt MIMEType) *ContentType { return &ContentType{mt} }

// CanonicName returns the canonical name of the header.
func (*ContentType) CanonicName() Name { return "Content-Type" }

// LowerName returns the lowercase name of the header.
func (*ContentType) LowerName() Name { return "content-type" }

// RenderTo writes the header to the provided writer.
func (hdr *ContentType) RenderTo(w io.Writer) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderNameValueTo(w, hdr.CanonicName(), hdr.renderValueTo))
}

func (hdr *ContentType) renderValueTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(fmt.Fprint(w, hdr.MIMEType))
}

// Render returns the full "Name: value" representation of the header.
func (hdr *ContentType) Render() string {
	if hdr == nil {
		return ""
	}
	return renderToString(hdr.RenderTo)
}

// RenderValue returns the header value without the name prefix.
func (hdr *ContentType) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return renderToString(hdr.renderValueTo)
}

func (hdr *ContentType) String() string { return hdr.Render() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *ContentType) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, hdr.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(hdr.String()))
		return
	default:
		type hideMethods ContentType
		type ContentType hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*ContentType)(hdr))
		return
	}
}

// Clone returns a copy of the header.
func (hdr *ContentType) Clone() Header {
	if hdr == nil {
		return nil
	}
	return &ContentType{hdr.MIMEType.Clone()}
}

// Equal compares this header with another for equality.
func (hdr *ContentType) Equal(val any) bool {
	var other *ContentType
	switch v := val.(type) {
	case ContentType:
		other = &v
	case *ContentType:
		other = v
	default:
		return false
	}

	if hdr == other {
		return true
	} else if hdr == nil || other == nil {
		return false
	}
	return hdr.MIMEType.Equal(other.MIMEType)
}

// IsValid checks whether the header is syntactically valid.
func (hdr *ContentType) IsValid() bool { return hdr != nil && hdr.MIMEType.IsValid() }

// MIMEType holds media type information.
type MIMEType struct {
	Type    string
	Subtype string
	Params  Params
}

func (mt MIMEType) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	fmt.Fprint(sb, mt.Type, "/", mt.Subtype)
	renderParamsTo(sb, mt.Params, false) //nolint:errcheck
	return sb.String()
}

// Format implements fmt.Formatter for custom formatting of the media type.
func (mt MIMEType) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, mt.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(mt.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, mt.String())
			return
		}

		type hideMethods MIMEType
		type MIMEType hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), MIMEType(mt))
		return
	}
}

// Equal compares this media type with another for equality.
// Type and subtype compare case-insensitively.
func (mt MIMEType) Equal(val any) bool {
	var other MIMEType
	switch v := val.(type) {
	case MIMEType:
		other = v
	case *MIMEType:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return util.EqFold(mt.Type, other.Type) &&
		util.EqFold(mt.Subtype, other.Subtype) &&
		mt.Params.Equal(other.Params)
}

// IsValid checks whether the media type is syntactically valid.
// The wildcard "*" is accepted for both type and subtype.
func (mt MIMEType) IsValid() bool {
	return (mt.Type == "*" || grammar.IsToken(mt.Type)) &&
		(mt.Subtype == "*" || grammar.IsToken(mt.Subtype)) &&
		mt.Params.IsValid()
}

// IsZero reports whether the media type carries no information.
func (mt MIMEType) IsZero() bool {
	return mt.Type == "" && mt.Subtype == "" && len(mt.Params) == 0
}

// Clone returns a copy of the media type.
func (mt MIMEType) Clone() MIMEType {
	mt.Params = mt.Params.Clone()
	return mt
}

// MarshalText encodes the media type into its textual representation.
func (mt MIMEType) MarshalText() ([]byte, error) {
	return []byte(mt.String()), nil
}
