package orcweb

import (
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
)

// TimestampFormat is the fixed layout of the last_visit cookie.
const TimestampFormat = "2006-01-02 15:04:05"

// Recognized session cookie names.
const (
	cookieName      = "name"
	cookieORCID     = "orcid"
	cookieVisits    = "visits"
	cookieLastVisit = "last_visit"
)

// Session is the set of cookie fields reconstructed from a request. There is
// no server-side store: the session is built fresh on every invocation,
// mutated in memory, and serialized back into response cookies. Unrecognized
// cookies ride along untouched and are re-emitted with the rest.
type Session struct {
	values map[string]string
}

// BuildSession wraps a decoded cookie map in a Session. A nil map yields an
// empty session.
func BuildSession(cookies map[string]string) *Session {
	if cookies == nil {
		cookies = map[string]string{}
	}
	return &Session{values: cookies}
}

// SessionFromRequest reconstructs the session from the request, preferring
// the cookie list over the Cookie header. Header keys are matched
// case-insensitively.
func SessionFromRequest(req events.APIGatewayV2HTTPRequest) *Session {
	if len(req.Cookies) > 0 {
		return BuildSession(DecodeCookies(req.Cookies))
	}
	for key, value := range req.Headers {
		if strings.EqualFold(key, "cookie") {
			return BuildSession(DecodeCookieHeader(value))
		}
	}
	return BuildSession(nil)
}

// Name returns the display name, or "" when absent.
func (s *Session) Name() string {
	return s.values[cookieName]
}

// ORCID returns the stored identity string, or "" when absent.
func (s *Session) ORCID() string {
	return s.values[cookieORCID]
}

// Visits returns the stored visit counter. Absent or unparsable values
// count as zero.
func (s *Session) Visits() int {
	n, err := strconv.Atoi(s.values[cookieVisits])
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// LastVisit returns the stored timestamp for rendering. Any value that does
// not match TimestampFormat exactly renders as "Never"; the raw cookie is
// kept either way.
func (s *Session) LastVisit() string {
	raw, ok := s.values[cookieLastVisit]
	if !ok {
		return "Never"
	}
	if _, err := time.Parse(TimestampFormat, raw); err != nil {
		return "Never"
	}
	return raw
}

// RecordVisit bumps the visit counter and stamps last_visit with the current
// UTC time. The outgoing counter is always incoming plus one.
func (s *Session) RecordVisit(now time.Time) {
	s.values[cookieVisits] = strconv.Itoa(s.Visits() + 1)
	s.values[cookieLastVisit] = now.UTC().Format(TimestampFormat)
}

// SetIdentity stores the authenticated user's display name and identifier.
func (s *Session) SetIdentity(name, orcid string) {
	s.values[cookieName] = name
	s.values[cookieORCID] = orcid
}

// Cookies serializes the full session into response directives with Path=/
// and the given expiry.
func (s *Session) Cookies(expiresAt time.Time) []string {
	return EncodeCookies(s.values, CookieOptions{ExpiresAt: expiresAt, Path: "/"})
}
