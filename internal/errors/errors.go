// Package errors provides domain-specific error types for gomud.
//
// These types carry structured context (operation, session id) that
// helps callers contain failures within one session and provides
// better diagnostics than plain string wrapping.
package errors

import (
	"errors"
	"fmt"
)

// ── Sentinel errors ──────────────────────────────────────────────────

var (
	// ErrNoHostKey is startup-fatal: neither inline PEM nor a key
	// file was configured, or the configured material is unusable.
	ErrNoHostKey = errors.New("no usable host key material")

	// ErrSessionTerminated signals that a session reached its
	// terminal phase; callers must stop feeding it events.
	ErrSessionTerminated = errors.New("session terminated")

	// ErrQuit is returned by the game collaborator when the player
	// asked to leave; the session handler terminates cleanly.
	ErrQuit = errors.New("quit requested")

	// ErrDuplicateSession guards the registry against id reuse.
	ErrDuplicateSession = errors.New("duplicate session id")
)

// ── Structured error types ───────────────────────────────────────────

// SessionError represents a failure scoped to a single session.
type SessionError struct {
	Op        string // operation: "read", "write", "dispatch", "join"
	SessionID string
	Err       error
}

func (e *SessionError) Error() string {
	return fmt.Sprintf("session %s: %s: %v", e.SessionID, e.Op, e.Err)
}

func (e *SessionError) Unwrap() error { return e.Err }

// HostKeyError reports why host key material could not be used.
type HostKeyError struct {
	Source string // "environment" or the file path
	Err    error
}

func (e *HostKeyError) Error() string {
	return fmt.Sprintf("host key from %s: %v", e.Source, e.Err)
}

func (e *HostKeyError) Unwrap() error { return e.Err }

// ── Constructors ─────────────────────────────────────────────────────

// WrapSession creates a SessionError.
func WrapSession(op, sessionID string, err error) *SessionError {
	return &SessionError{Op: op, SessionID: sessionID, Err: err}
}

// ── Classification helpers ───────────────────────────────────────────

// IsFatalToSession reports whether err should force a session into its
// terminal phase (as opposed to being surfaced as a visible error line
// and carried on).
func IsFatalToSession(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrSessionTerminated) || errors.Is(err, ErrQuit)
}
