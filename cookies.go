package orcweb

import (
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"
)

// CookieOptions controls the attributes appended to encoded directives.
// Zero values omit the corresponding attribute.
type CookieOptions struct {
	ExpiresAt time.Time
	Path      string
}

// DecodeCookies parses a cookie list (one "name=value" string per element,
// the API-gateway event form) into a name-to-value map. Each entry is split
// on the first "=" only, so values may themselves contain "=". Entries
// without "=" are skipped, later duplicates win, and values are
// percent-decoded ("+" reads as a space, matching the encoding the site
// writes). Malformed input never fails; it yields a partial map.
func DecodeCookies(cookies []string) map[string]string {
	m := make(map[string]string, len(cookies))
	for _, raw := range cookies {
		// Attributes after ";" are not part of the value; values containing
		// ";" were percent-encoded on the way out.
		pair, _, _ := strings.Cut(raw, ";")
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		m[name] = decodeValue(strings.TrimSpace(value))
	}
	return m
}

// DecodeCookieHeader parses a single ";"-joined Cookie header string with
// the same rules as DecodeCookies.
func DecodeCookieHeader(header string) map[string]string {
	if header == "" {
		return map[string]string{}
	}
	return DecodeCookies(strings.Split(header, ";"))
}

// EncodeCookies serializes a map into Set-Cookie style directives, one per
// entry, sorted by name. Values are percent-encoded so that every directive
// written here decodes back to the identical value.
func EncodeCookies(m map[string]string, opts CookieOptions) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]string, 0, len(m))
	for _, name := range names {
		var b strings.Builder
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(m[name]))
		if !opts.ExpiresAt.IsZero() {
			b.WriteString("; Expires=")
			b.WriteString(opts.ExpiresAt.UTC().Format(http.TimeFormat))
		}
		if opts.Path != "" {
			b.WriteString("; Path=")
			b.WriteString(opts.Path)
		}
		out = append(out, b.String())
	}
	return out
}

// ExpireCookie builds the directive that makes a browser discard one cookie.
func ExpireCookie(name string) string {
	return name + "=; Max-Age=0; Path=/"
}

func decodeValue(v string) string {
	decoded, err := url.QueryUnescape(v)
	if err != nil {
		// Permissive contract: a value that does not decode is kept as-is.
		return v
	}
	return decoded
}
