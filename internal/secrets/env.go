package secrets

import (
	"context"
	"fmt"
	"os"
)

// Environment variables read by the Env source.
const (
	EnvClientID     = "ORCID_CLIENT_ID"
	EnvClientSecret = "ORCID_CLIENT_SECRET"
)

// Env reads the credential pair from the process environment on every call,
// so rotated values are picked up without a restart.
type Env struct{}

func (Env) ClientCredentials(context.Context) (Credentials, error) {
	creds := Credentials{
		ClientID:     os.Getenv(EnvClientID),
		ClientSecret: os.Getenv(EnvClientSecret),
	}
	if creds.ClientID == "" || creds.ClientSecret == "" {
		return Credentials{}, fmt.Errorf("%w: set %s and %s", ErrIncompleteCredentials, EnvClientID, EnvClientSecret)
	}
	return creds, nil
}
