// Package config builds one immutable Config from three layers, highest
// precedence last: an optional .env file, an optional orcweb.yaml, and
// ORCWEB_-prefixed environment variables where "__" maps to "."
// (e.g. ORCWEB_CROSSREF__BASE_URL -> crossref.base_url).
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	koanf "github.com/knadh/koanf/v2"
)

// DefaultFile is the YAML file consulted when present in the working
// directory.
const DefaultFile = "orcweb.yaml"

type Config struct {
	Server   Server   `koanf:"server"`
	ORCID    ORCID    `koanf:"orcid"`
	Crossref Crossref `koanf:"crossref"`
	Secrets  Secrets  `koanf:"secrets"`
	Session  Session  `koanf:"session"`
}

// Server configures the local dev server only; deployed handlers sit behind
// the API gateway and never bind a port.
type Server struct {
	ListenAddr string `koanf:"listen_addr" validate:"required"`
}

type ORCID struct {
	AuthURL  string `koanf:"auth_url" validate:"required,url"`
	TokenURL string `koanf:"token_url" validate:"required,url"`
	Scope    string `koanf:"scope" validate:"required"`
}

type Crossref struct {
	BaseURL   string `koanf:"base_url" validate:"required,url"`
	UserAgent string `koanf:"user_agent"`
}

type Secrets struct {
	Provider  string `koanf:"provider" validate:"oneof=env vault"`
	VaultPath string `koanf:"vault_path" validate:"required_if=Provider vault"`
}

type Session struct {
	TTLDays int `koanf:"ttl_days" validate:"min=1"`
}

// Default returns the built-in configuration: production endpoints, env
// credential source, one-year sessions.
func Default() *Config {
	return &Config{
		Server: Server{ListenAddr: ":8080"},
		ORCID: ORCID{
			AuthURL:  "https://orcid.org/oauth/authorize",
			TokenURL: "https://orcid.org/oauth/token",
			Scope:    "/authenticate",
		},
		Crossref: Crossref{
			BaseURL: "https://api.crossref.org",
		},
		Secrets: Secrets{Provider: "env"},
		Session: Session{TTLDays: 365},
	}
}

// Load merges the layers over Default, unmarshals, and validates.
func Load() (*Config, error) {
	// .env (optional, no error if missing)
	_ = godotenv.Load()

	k := koanf.New(".")

	if _, err := os.Stat(DefaultFile); err == nil {
		if err := k.Load(file.Provider(DefaultFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config yaml load: %w", err)
		}
	}

	if err := k.Load(env.Provider("ORCWEB_", ".", func(s string) string {
		return strings.ToLower(strings.ReplaceAll(strings.TrimPrefix(s, "ORCWEB_"), "__", "."))
	}), nil); err != nil {
		return nil, fmt.Errorf("config env overlay: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal: %w", err)
	}
	if err := validateStruct(cfg); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}
