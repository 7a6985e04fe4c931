package tls

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"

	"github.com/caddyserver/certmagic"
	"github.com/rs/zerolog/log"
)

// Manager handles certificate provisioning and management
type Manager struct {
	cfg       *Config
	certmagic *certmagic.Config
	issuer    *certmagic.ACMEIssuer
}

// NewManager creates a new TLS manager. Call Manage to start obtaining
// certificates.
func NewManager(cfg *Config) (*Manager, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if cfg.BaseDomain == "" {
		return nil, fmt.Errorf("base domain is required")
	}

	// Create certmagic config
	var magicCfg *certmagic.Config
	cache := certmagic.NewCache(certmagic.CacheOptions{
		GetConfigForCert: func(certmagic.Certificate) (*certmagic.Config, error) {
			return magicCfg, nil
		},
	})

	magicCfg = certmagic.New(cache, certmagic.Config{
		Storage: &certmagic.FileStorage{Path: cfg.CertDir},
	})

	// Configure ACME issuer
	ca := certmagic.LetsEncryptProductionCA
	if cfg.Staging {
		ca = certmagic.LetsEncryptStagingCA
	}
	issuer := certmagic.NewACMEIssuer(magicCfg, certmagic.ACMEIssuer{
		CA:     ca,
		Email:  cfg.Email,
		Agreed: true,
	})
	magicCfg.Issuers = []certmagic.Issuer{issuer}

	return &Manager{cfg: cfg, certmagic: magicCfg, issuer: issuer}, nil
}

// Domains returns the managed domain names
func (m *Manager) Domains() []string {
	return m.cfg.Domains()
}

// Manage starts obtaining and renewing certificates in the background
func (m *Manager) Manage(ctx context.Context) error {
	domains := m.Domains()
	log.Info().Strs("domains", domains).Msg("TLS: managing certificates")

	if err := m.certmagic.ManageAsync(ctx, domains); err != nil {
		return fmt.Errorf("failed to manage domains: %w", err)
	}
	return nil
}

// GetTLSConfig returns TLS config for HTTPS server
func (m *Manager) GetTLSConfig() *tls.Config {
	return m.certmagic.TLSConfig()
}

// HTTPChallengeHandler answers ACME HTTP-01 challenges and passes every
// other request to next.
func (m *Manager) HTTPChallengeHandler(next http.Handler) http.Handler {
	return m.issuer.HTTPChallengeHandler(next)
}
