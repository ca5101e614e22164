// Package orcweb implements the request handlers for a small academic
// publication browsing site: a home page with a visit counter, publication
// detail and search pages backed by the Crossref API, and an ORCID OAuth2
// login flow with cookie-based sessions. Each handler is a stateless
// function invoked once per API-gateway request.
package orcweb

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"

	"github.com/orcweb/orcweb/internal/config"
	"github.com/orcweb/orcweb/internal/crossref"
	"github.com/orcweb/orcweb/internal/secrets"
	"github.com/orcweb/orcweb/internal/view"
)

// Handler is the signature shared by every route: one API-gateway event in,
// one response out. Handlers never return a non-nil error; failures are
// reported as HTTP statuses in the response.
type Handler func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error)

// Orcweb holds the process-scoped, read-only handles shared by every
// invocation: the parsed template set, the Crossref client, the credential
// source, and the pooled HTTP client used for the token exchange. None of
// them is mutated after New returns, so concurrent invocations share them
// without synchronization.
type Orcweb struct {
	renderer    *view.Renderer
	bib         *crossref.Client
	credentials secrets.Source

	authURL    string
	tokenURL   string
	scope      string
	sessionTTL time.Duration

	httpClient *http.Client
	logger     *slog.Logger
	now        func() time.Time
}

// Option configures an Orcweb.
type Option func(*Orcweb)

// New creates an Orcweb with the ORCID production endpoints and a one-year
// session horizon. The renderer, bibliographic client, and credential source
// are required collaborators.
func New(renderer *view.Renderer, bib *crossref.Client, credentials secrets.Source, opts ...Option) *Orcweb {
	o := &Orcweb{
		renderer:    renderer,
		bib:         bib,
		credentials: credentials,
		authURL:     orcidAuthURL,
		tokenURL:    orcidTokenURL,
		scope:       orcidScope,
		sessionTTL:  365 * 24 * time.Hour,
		httpClient:  &http.Client{},
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// FromConfig wires a fully configured Orcweb from the loaded configuration:
// embedded templates, Crossref client, and the configured credential source.
func FromConfig(cfg *config.Config, opts ...Option) (*Orcweb, error) {
	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, err
	}
	bib := crossref.NewClient(
		crossref.WithBaseURL(cfg.Crossref.BaseURL),
		crossref.WithUserAgent(cfg.Crossref.UserAgent),
	)
	source, err := newSecretSource(cfg)
	if err != nil {
		return nil, err
	}
	base := []Option{
		WithEndpoints(cfg.ORCID.AuthURL, cfg.ORCID.TokenURL),
		WithScope(cfg.ORCID.Scope),
		WithSessionTTL(time.Duration(cfg.Session.TTLDays) * 24 * time.Hour),
	}
	return New(renderer, bib, source, append(base, opts...)...), nil
}

func newSecretSource(cfg *config.Config) (secrets.Source, error) {
	switch cfg.Secrets.Provider {
	case "vault":
		return secrets.NewVault(cfg.Secrets.VaultPath)
	default:
		return secrets.Env{}, nil
	}
}

// WithLogger sets the structured logger. Without one, handlers are silent.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orcweb) {
		o.logger = logger
	}
}

// WithNow sets the clock used for cookie expiries and visit timestamps.
func WithNow(now func() time.Time) Option {
	return func(o *Orcweb) {
		o.now = now
	}
}

// WithHTTPClient sets the client used for the token exchange.
func WithHTTPClient(client *http.Client) Option {
	return func(o *Orcweb) {
		o.httpClient = client
	}
}

// WithEndpoints overrides the identity provider's authorize and token URLs.
func WithEndpoints(authURL, tokenURL string) Option {
	return func(o *Orcweb) {
		o.authURL = authURL
		o.tokenURL = tokenURL
	}
}

// WithScope overrides the OAuth2 scope requested at sign-in.
func WithScope(scope string) Option {
	return func(o *Orcweb) {
		o.scope = scope
	}
}

// WithSessionTTL sets the expiration horizon of refreshed session cookies.
func WithSessionTTL(ttl time.Duration) Option {
	return func(o *Orcweb) {
		o.sessionTTL = ttl
	}
}

func (o *Orcweb) logInfo(msg string, args ...any) {
	if o.logger == nil {
		return
	}
	o.logger.Info(msg, args...)
}

func (o *Orcweb) logError(msg string, args ...any) {
	if o.logger == nil {
		return
	}
	o.logger.Error(msg, args...)
}

// invocationID correlates the log lines of one invocation. The front door
// normally supplies a request ID; a random one fills in when it does not
// (local dev server, tests).
func invocationID(req events.APIGatewayV2HTTPRequest) string {
	if id := req.RequestContext.RequestID; id != "" {
		return id
	}
	return uuid.NewString()
}

func (o *Orcweb) logRequest(route string, req events.APIGatewayV2HTTPRequest) {
	o.logInfo("execution started",
		"route", route,
		"request_id", invocationID(req),
		"path", req.RawPath,
		"query", req.RawQueryString,
	)
}

// sessionCookies re-emits the full session with the configured expiration
// horizon. The browser re-presenting these on the next request is the only
// session persistence there is.
func (o *Orcweb) sessionCookies(s *Session) []string {
	return s.Cookies(o.now().UTC().Add(o.sessionTTL))
}
