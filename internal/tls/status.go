package tls

import (
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"time"
)

// CertificateStatus represents the status of a managed certificate
type CertificateStatus struct {
	Domain          string
	Issuer          string
	NotBefore       time.Time
	NotAfter        time.Time
	DaysUntilExpiry int
}

// GetCertificateStatus returns the status of all managed certificates
func (m *Manager) GetCertificateStatus() ([]CertificateStatus, error) {
	return CertificateStatusIn(m.cfg.CertDir, m.Domains())
}

// caDirs are the certmagic issuer directories, production first.
var caDirs = []string{
	"acme-v02.api.letsencrypt.org-directory",
	"acme-staging-v02.api.letsencrypt.org-directory",
}

// CertificateStatusIn reads certificates for domains from a certmagic
// file storage directory. Domains without a readable certificate are skipped.
func CertificateStatusIn(certDir string, domains []string) ([]CertificateStatus, error) {
	var statuses []CertificateStatus
	for _, domain := range domains {
		cert := loadCertificate(certDir, domain)
		if cert == nil {
			continue
		}
		statuses = append(statuses, CertificateStatus{
			Domain:          domain,
			Issuer:          cert.Issuer.CommonName,
			NotBefore:       cert.NotBefore,
			NotAfter:        cert.NotAfter,
			DaysUntilExpiry: int(time.Until(cert.NotAfter).Hours() / 24),
		})
	}
	return statuses, nil
}

// loadCertificate returns the leaf stored under {certDir}/certificates/{ca}/{domain}.
func loadCertificate(certDir, domain string) *x509.Certificate {
	for _, ca := range caDirs {
		certPEM, err := os.ReadFile(filepath.Join(certDir, "certificates", ca, domain, domain+".crt"))
		if err != nil {
			continue
		}
		block, _ := pem.Decode(certPEM)
		if block == nil {
			continue
		}
		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			continue
		}
		return cert
	}
	return nil
}
