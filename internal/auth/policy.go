// Package auth defines the pluggable connection authentication policy.
//
// The shipped policy accepts every credential: the game intentionally
// lets anyone in, and identity is established afterwards through
// character creation.  Modelling this as a Policy value (rather than
// hard-wiring the accept-all behavior into the transport) lets a
// stricter policy be substituted without touching the session machine.
package auth

import gossh "golang.org/x/crypto/ssh"

// Policy decides whether a connecting client may open a session.
// Implementations must be safe for concurrent use; the transport
// invokes them from every connection's handshake.
type Policy interface {
	// AuthenticatePassword reports whether user/password may connect.
	AuthenticatePassword(user, password string) bool

	// AuthenticatePublicKey reports whether user with the offered key
	// may connect.
	AuthenticatePublicKey(user string, key gossh.PublicKey) bool
}

// AllowAll accepts any username with any credential.
type AllowAll struct{}

func (AllowAll) AuthenticatePassword(string, string) bool           { return true }
func (AllowAll) AuthenticatePublicKey(string, gossh.PublicKey) bool { return true }
