package secrets

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	vault "github.com/hashicorp/vault/api"
)

// DefaultVaultTTL is how long a fetched credential pair is served from
// cache before the store is consulted again.
const DefaultVaultTTL = 5 * time.Minute

// Vault reads the credential pair from a KV-v2 secret. The secret must hold
// "client_id" and "client_secret" keys. Results are cached for a short TTL
// so a warm handler does not hit Vault on every invocation.
type Vault struct {
	api  *vault.Client
	path string
	ttl  time.Duration

	mu     sync.RWMutex
	cached Credentials
	expiry time.Time
}

// VaultOption configures a Vault source.
type VaultOption func(*Vault)

// WithVaultTTL overrides the cache TTL. Zero disables caching.
func WithVaultTTL(ttl time.Duration) VaultOption {
	return func(v *Vault) {
		v.ttl = ttl
	}
}

// WithVaultClient sets a pre-built API client (for testing).
func WithVaultClient(api *vault.Client) VaultOption {
	return func(v *Vault) {
		v.api = api
	}
}

// NewVault constructs a Vault source for the given KV-v2 secret path, e.g.
// "secret/orcweb/orcid". Connection settings come from the standard
// VAULT_ADDR and VAULT_TOKEN environment variables.
func NewVault(path string, opts ...VaultOption) (*Vault, error) {
	if path == "" {
		return nil, errors.New("vault secret path must be non-empty")
	}

	v := &Vault{path: path, ttl: DefaultVaultTTL}
	for _, opt := range opts {
		opt(v)
	}

	if v.api == nil {
		cfg := vault.DefaultConfig()
		if err := cfg.ReadEnvironment(); err != nil {
			return nil, fmt.Errorf("vault env cfg: %w", err)
		}
		api, err := vault.NewClient(cfg)
		if err != nil {
			return nil, fmt.Errorf("vault api: %w", err)
		}
		if tok := os.Getenv("VAULT_TOKEN"); tok != "" {
			api.SetToken(tok)
		}
		v.api = api
	}
	return v, nil
}

func (v *Vault) ClientCredentials(ctx context.Context) (Credentials, error) {
	if v.ttl > 0 {
		v.mu.RLock()
		if time.Now().Before(v.expiry) {
			creds := v.cached
			v.mu.RUnlock()
			return creds, nil
		}
		v.mu.RUnlock()
	}

	mount, rel := splitMount(v.path)
	sec, err := v.api.KVv2(mount).Get(ctx, rel)
	if err != nil {
		return Credentials{}, fmt.Errorf("vault get %s: %w", v.path, err)
	}

	id, _ := sec.Data["client_id"].(string)
	secret, _ := sec.Data["client_secret"].(string)
	creds := Credentials{ClientID: id, ClientSecret: secret}
	if creds.ClientID == "" || creds.ClientSecret == "" {
		return Credentials{}, fmt.Errorf("%w in secret %q", ErrIncompleteCredentials, v.path)
	}

	if v.ttl > 0 {
		v.mu.Lock()
		v.cached = creds
		v.expiry = time.Now().Add(v.ttl)
		v.mu.Unlock()
	}
	return creds, nil
}

// splitMount separates the KV mount from the relative secret path.
func splitMount(p string) (mount, rel string) {
	mount, rel, found := strings.Cut(strings.TrimPrefix(p, "/"), "/")
	if !found {
		return "secret", mount
	}
	return mount, rel
}
