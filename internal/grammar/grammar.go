// Package grammar provides character-class checks for the HTTP header
// grammar (RFC 7230). The checks are plain byte scans so they can run on
// hot rendering and comparison paths without allocation.
package grammar

import "strings"

// tchar from RFC 7230 section 3.2.6.
var tokenChars = func() (t [256]bool) {
	for c := byte('0'); c <= '9'; c++ {
		t[c] = true
	}
	for c := byte('a'); c <= 'z'; c++ {
		t[c] = true
	}
	for c := byte('A'); c <= 'Z'; c++ {
		t[c] = true
	}
	for _, c := range []byte("!#$%&'*+-.^_`|~") {
		t[c] = true
	}
	return t
}()

// IsTokenChar reports whether c is a valid HTTP token character.
func IsTokenChar(c byte) bool { return tokenChars[c] }

// IsToken reports whether s is a non-empty HTTP token.
func IsToken[T ~string | ~[]byte](s T) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !tokenChars[s[i]] {
			return false
		}
	}
	return true
}

// IsQuoted reports whether s is wrapped in double quotes.
func IsQuoted[T ~string | ~[]byte](s T) bool {
	return len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"'
}

// Quote wraps s in double quotes, backslash-escaping any embedded quote or
// backslash per the quoted-string rule.
func Quote(s string) string {
	if !strings.ContainsAny(s, `"\`) {
		return `"` + s + `"`
	}
	var sb strings.Builder
	sb.Grow(len(s) + 4)
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if s[i] == '"' || s[i] == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(s[i])
	}
	sb.WriteByte('"')
	return sb.String()
}

// IsHost reports whether s looks like a host component: a non-empty run of
// hostname or IP literal characters. Full hostname validation is left to the
// resolver.
func IsHost[T ~string | ~[]byte](s T) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case tokenChars[c]:
		case c == ':' || c == '[' || c == ']' || c == '%':
		default:
			return false
		}
	}
	return true
}
