// Package server hosts the SSH transport: it owns the listener, the
// authentication handlers, and the per-connection goroutines that feed
// decoded keystrokes into the session layer.
package server

import (
	"context"
	"errors"
	"fmt"

	"github.com/gliderlabs/ssh"

	"gomud/config"
	"gomud/internal/auth"
	"gomud/internal/metrics"
	"gomud/internal/session"
	"gomud/util"
)

// Server accepts SSH connections and runs one game session per
// connection.
type Server struct {
	cfg     *config.Config
	log     *util.Logger
	game    session.Dispatcher
	policy  auth.Policy
	metrics *metrics.Collector
	reg     *session.Registry
}

// New assembles a server.  m may be nil to disable metrics.
func New(cfg *config.Config, log *util.Logger, game session.Dispatcher, policy auth.Policy, m *metrics.Collector) *Server {
	return &Server{
		cfg:     cfg,
		log:     log,
		game:    game,
		policy:  policy,
		metrics: m,
		reg:     session.NewRegistry(),
	}
}

// Registry exposes the live-session registry for diagnostics.
func (s *Server) Registry() *session.Registry { return s.reg }

// ListenAndServe runs the SSH server until ctx is cancelled, then
// drains in-flight sessions for the configured grace period.  A clean
// shutdown returns nil.
func (s *Server) ListenAndServe(ctx context.Context) error {
	signer, err := LoadHostKey(s.cfg)
	if err != nil {
		return err
	}

	srv := &ssh.Server{
		Addr:    fmt.Sprintf(":%d", s.cfg.Port),
		Handler: s.handle,
		PasswordHandler: func(ctx ssh.Context, password string) bool {
			return s.policy.AuthenticatePassword(ctx.User(), password)
		},
		PublicKeyHandler: func(ctx ssh.Context, key ssh.PublicKey) bool {
			return s.policy.AuthenticatePublicKey(ctx.User(), key)
		},
	}
	srv.AddHostKey(signer)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
		case <-done:
			return
		}
		grace := s.cfg.Grace()
		s.log.Info("shutting down, draining %d session(s) for up to %s", s.reg.Len(), grace)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Warn("grace period elapsed, closing: %v", err)
			srv.Close()
		}
	}()

	s.log.Info("listening on %s (host key %s)", srv.Addr, signer.PublicKey().Type())
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return fmt.Errorf("ssh server: %w", err)
	}
	return nil
}
