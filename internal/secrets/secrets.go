// Package secrets supplies the ORCID OAuth2 client credential pair from an
// external store. The handlers depend only on the Source interface; an
// unreachable store is a fatal error for the request that needed it.
package secrets

import (
	"context"
	"errors"
)

// Credentials is the OAuth2 client credential pair for the ORCID
// integration.
type Credentials struct {
	ClientID     string
	ClientSecret string
}

// Source yields the current credential pair on demand.
type Source interface {
	ClientCredentials(ctx context.Context) (Credentials, error)
}

// ErrIncompleteCredentials indicates the store answered but one half of the
// pair is missing.
var ErrIncompleteCredentials = errors.New("incomplete client credentials")

// Static is a fixed credential pair, useful in tests and local development.
type Static struct {
	Credentials
}

func (s Static) ClientCredentials(context.Context) (Credentials, error) {
	return s.Credentials, nil
}
