package orcweb

import (
	"net/http"
	"time"

	"github.com/orcweb/orcweb/internal/crossref"
	"github.com/orcweb/orcweb/internal/secrets"
	"github.com/orcweb/orcweb/internal/view"
)

var testNow = time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestApp(bib *crossref.Client, opts ...Option) *Orcweb {
	base := []Option{
		WithNow(func() time.Time { return testNow }),
	}
	return New(
		view.MustRenderer(),
		bib,
		secrets.Static{Credentials: secrets.Credentials{
			ClientID:     "client_id",
			ClientSecret: "client_secret",
		}},
		append(base, opts...)...,
	)
}

// countingTransport records how many requests pass through it.
type countingTransport struct {
	calls int
	inner http.RoundTripper
}

func (t *countingTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	t.calls++
	if t.inner == nil {
		return http.DefaultTransport.RoundTrip(r)
	}
	return t.inner.RoundTrip(r)
}
