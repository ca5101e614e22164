package secrets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	vault "github.com/hashicorp/vault/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitMount(t *testing.T) {
	for name, test := range map[string]struct {
		path      string
		wantMount string
		wantRel   string
	}{
		"mount and path": {"secret/orcweb/orcid", "secret", "orcweb/orcid"},
		"leading slash":  {"/secret/orcweb/orcid", "secret", "orcweb/orcid"},
		"bare name":      {"orcid", "secret", "orcid"},
		"custom mount":   {"kv/orcid", "kv", "orcid"},
	} {
		t.Run(name, func(t *testing.T) {
			mount, rel := splitMount(test.path)
			assert.Equal(t, test.wantMount, mount)
			assert.Equal(t, test.wantRel, rel)
		})
	}
}

func TestNewVaultRequiresPath(t *testing.T) {
	_, err := NewVault("")
	assert.Error(t, err)
}

func newFakeVault(t *testing.T, handler http.HandlerFunc) *vault.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := vault.DefaultConfig()
	cfg.Address = server.URL
	api, err := vault.NewClient(cfg)
	require.NoError(t, err)
	api.SetToken("test-token")
	return api
}

func TestVaultClientCredentials(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	var hits int
	api := newFakeVault(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
		assert.Equal("/v1/secret/data/orcweb/orcid", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": {"data": {"client_id": "vault-id", "client_secret": "vault-secret"}, "metadata": {"version": 1}}}`))
	})

	source, err := NewVault("secret/orcweb/orcid", WithVaultClient(api))
	require.NoError(err)

	creds, err := source.ClientCredentials(context.Background())
	require.NoError(err)
	assert.Equal("vault-id", creds.ClientID)
	assert.Equal("vault-secret", creds.ClientSecret)

	// Second read inside the TTL is served from cache.
	_, err = source.ClientCredentials(context.Background())
	require.NoError(err)
	assert.Equal(1, hits)
}

func TestVaultCacheDisabled(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	var hits int
	api := newFakeVault(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": {"data": {"client_id": "vault-id", "client_secret": "vault-secret"}, "metadata": {"version": 1}}}`))
	})

	source, err := NewVault("secret/orcweb/orcid", WithVaultClient(api), WithVaultTTL(0))
	require.NoError(err)

	for i := 0; i < 3; i++ {
		_, err := source.ClientCredentials(context.Background())
		require.NoError(err)
	}
	assert.Equal(3, hits)
}

func TestVaultIncompleteSecret(t *testing.T) {
	require := require.New(t)

	api := newFakeVault(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": {"data": {"client_id": "vault-id"}, "metadata": {"version": 1}}}`))
	})

	source, err := NewVault("secret/orcweb/orcid", WithVaultClient(api), WithVaultTTL(time.Minute))
	require.NoError(err)

	_, err = source.ClientCredentials(context.Background())
	require.ErrorIs(err, ErrIncompleteCredentials)
}
