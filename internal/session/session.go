// Package session holds the process-local admin authorization flag.
//
// The passcode check is an acknowledged placeholder for real authentication:
// the flag is never persisted and every fresh process starts unauthorized.
package session

import "github.com/dukaforge/storekeep/pkg/types"

// Gate is the boolean admin-authorization flag. It starts unauthorized and
// is flipped only by AttemptLogin with the expected passcode.
type Gate struct {
	expected   string
	authorized bool
}

// NewGate returns an unauthorized gate expecting the given passcode.
func NewGate(passcode string) *Gate {
	return &Gate{expected: passcode}
}

// Authorized reports whether admin capabilities are currently unlocked.
func (g *Gate) Authorized() bool {
	return g.authorized
}

// AttemptLogin compares the passcode to the expected value. On match the
// gate becomes authorized. On mismatch the gate is left unchanged and
// ErrBadPasscode is returned for the caller to surface as a user message.
func (g *Gate) AttemptLogin(passcode string) error {
	if passcode != g.expected {
		return types.ErrBadPasscode
	}
	g.authorized = true
	return nil
}

// Logout clears the authorization flag. Idempotent.
func (g *Gate) Logout() {
	g.authorized = false
}
