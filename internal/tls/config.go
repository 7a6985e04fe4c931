package tls

import (
	"errors"
	"fmt"
	"os"

	"github.com/thatcatcamp/windpalette/internal/config"
)

var (
	// ErrMissingEmail is returned when TLS is on without an ACME account email.
	ErrMissingEmail = errors.New("tls.email is required when TLS is enabled")
	// ErrPublicDomain is returned when TLS is on for a non-public host name.
	ErrPublicDomain = errors.New("server.base_domain must be a public domain when TLS is enabled")
)

// Config holds TLS configuration
type Config struct {
	Enabled    bool
	BaseDomain string
	Email      string
	CertDir    string
	Staging    bool
}

// Validate checks the settings an ACME order needs. A disabled config is
// always valid.
func (c *Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Email == "" {
		return ErrMissingEmail
	}
	if c.BaseDomain == "" || c.BaseDomain == "localhost" {
		return ErrPublicDomain
	}
	return nil
}

// Domains lists the names certificates are requested for.
func (c *Config) Domains() []string {
	return []string{c.BaseDomain, "www." + c.BaseDomain}
}

// LoadConfig reads the tls.* and server.* settings and makes sure the
// certificate directory exists
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Enabled:    config.GetBool("server.tls_enabled"),
		BaseDomain: config.GetString("server.base_domain"),
		Email:      config.GetString("tls.email"),
		CertDir:    config.GetString("tls.cert_dir"),
		Staging:    config.GetBool("tls.staging"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.CertDir != "" {
		if err := os.MkdirAll(cfg.CertDir, 0700); err != nil {
			return nil, fmt.Errorf("failed to create cert directory: %w", err)
		}
	}
	return cfg, nil
}
