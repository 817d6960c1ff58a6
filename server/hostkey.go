package server

import (
	"fmt"
	"os"

	gossh "golang.org/x/crypto/ssh"

	"gomud/config"
	errs "gomud/internal/errors"
)

// LoadHostKey resolves the server's host key signer: inline PEM takes
// precedence over a key file.  Absence of both is startup-fatal.
func LoadHostKey(cfg *config.Config) (gossh.Signer, error) {
	if cfg.HostKeyPEM != "" {
		signer, err := gossh.ParsePrivateKey([]byte(cfg.HostKeyPEM))
		if err != nil {
			return nil, &errs.HostKeyError{Source: "environment", Err: err}
		}
		return signer, nil
	}
	if cfg.HostKeyFile != "" {
		pemBytes, err := os.ReadFile(cfg.HostKeyFile)
		if err != nil {
			return nil, &errs.HostKeyError{Source: cfg.HostKeyFile, Err: err}
		}
		signer, err := gossh.ParsePrivateKey(pemBytes)
		if err != nil {
			return nil, &errs.HostKeyError{Source: cfg.HostKeyFile, Err: err}
		}
		return signer, nil
	}
	return nil, fmt.Errorf("load host key: %w", errs.ErrNoHostKey)
}
