package drs

import (
	"fmt"
	"regexp"
	"strings"
)

var reObjectID = regexp.MustCompile(`(?i)^(drs://` + reDomain + `/)?(?P<obj_id>.+)$`)

// ResolveObjectID extracts the identifier from either a bare DRS identifier
// or a hostname-based DRS URI (drs://<host>/<id>) and percent-encodes it for
// use as a single URL path segment. Input that does not look like a DRS URI
// is treated as a literal identifier and encoded whole; only an empty input
// fails, since an empty path segment would produce a malformed URL. The host
// part of a DRS URI is not evaluated here; build a new client to target a
// different instance.
func ResolveObjectID(input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("%w: empty object identifier", ErrInvalidURI)
	}
	match := reObjectID.FindStringSubmatch(input)
	if match == nil {
		return quoteAll(input), nil
	}
	return quoteAll(match[reObjectID.SubexpIndex("obj_id")]), nil
}

const upperhex = "0123456789ABCDEF"

// quoteAll percent-encodes every byte outside the RFC 3986 unreserved set.
// net/url.PathEscape leaves sub-delims such as '+' unescaped, which would let
// an identifier alter path segment boundaries.
func quoteAll(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' ||
			c == '-' || c == '_' || c == '.' || c == '~' {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0xf])
	}
	return b.String()
}
