package orcweb

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"golang.org/x/oauth2"
)

// callbackURI derives the OAuth2 redirect URI from the request context. The
// deployment-stage segment is part of the public path unless the stage is
// the default one. BeginAuth and Callback must compute the identical URI or
// the provider rejects the exchange.
func callbackURI(req events.APIGatewayV2HTTPRequest) string {
	domain := req.RequestContext.DomainName
	stage := req.RequestContext.Stage
	if stage != "" && stage != "$default" {
		return fmt.Sprintf("https://%s/%s/callback", domain, stage)
	}
	return fmt.Sprintf("https://%s/callback", domain)
}

// BeginAuth creates the handler that initiates the ORCID OAuth2 flow. It
// redirects to the authorize endpoint with client_id, response_type=code,
// the configured scope, and the computed redirect URI. No local state is
// created; the authorization code the provider later issues is the only
// flow state.
func (o *Orcweb) BeginAuth() Handler {
	return func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		o.logRequest("auth", req)

		creds, err := o.credentials.ClientCredentials(ctx)
		if err != nil {
			o.logError("fetch credentials", "error", err)
			return errorResponse(http.StatusInternalServerError, "Error fetching client credentials"), nil
		}

		cfg := o.oauthConfig(creds.ClientID, creds.ClientSecret, callbackURI(req))
		authURL := cfg.AuthCodeURL("")
		o.logInfo("redirecting to authorize endpoint", "url", authURL)
		return redirectResponse(authURL, nil), nil
	}
}

// Callback creates the handler that completes the flow: it exchanges the
// authorization code for an identity assertion at the token endpoint and
// maps the result into session cookies. A request without a code fails with
// 400 before any outbound call is made.
func (o *Orcweb) Callback() Handler {
	return func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		o.logRequest("callback", req)

		code := req.QueryStringParameters["code"]
		if code == "" {
			o.logError("callback", "error", ErrMissingAuthCode)
			return errorResponse(http.StatusBadRequest, "Missing authorization code"), nil
		}

		creds, err := o.credentials.ClientCredentials(ctx)
		if err != nil {
			o.logError("fetch credentials", "error", fmt.Errorf("%w: %w", ErrFailedFetchingCredentials, err))
			return errorResponse(http.StatusInternalServerError, "Error fetching client credentials"), nil
		}

		cfg := o.oauthConfig(creds.ClientID, creds.ClientSecret, callbackURI(req))
		ctx = context.WithValue(ctx, oauth2.HTTPClient, o.httpClient)
		token, err := cfg.Exchange(ctx, code)
		if err != nil {
			o.logError("token exchange", "error", fmt.Errorf("%w: %w", ErrFailedExchangingToken, err))
			return errorResponse(http.StatusInternalServerError, "Error during authentication: "+err.Error()), nil
		}

		id := identityFromToken(token)
		o.logInfo("token exchange successful", "orcid", id.ORCID)

		session := BuildSession(nil)
		session.SetIdentity(id.Name, id.ORCID)
		return redirectResponse("/", o.sessionCookies(session)), nil
	}
}

// Logout creates the handler that purges the browser session. Every cookie
// present on the request gets a matching expiry directive, whatever its
// name, then the user is sent back to the root.
func (o *Orcweb) Logout() Handler {
	return func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		o.logRequest("logout", req)

		expired := make([]string, 0, len(req.Cookies))
		for _, raw := range req.Cookies {
			name, _, ok := strings.Cut(raw, "=")
			if !ok {
				continue
			}
			expired = append(expired, ExpireCookie(strings.TrimSpace(name)))
		}
		o.logInfo("clearing cookies", "count", len(expired))
		return redirectResponse("/", expired), nil
	}
}
