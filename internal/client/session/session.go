// Package session holds the client's proof of authentication: the bearer
// token and the user profile returned by the auth collaborator, persisted
// as two named entries in the client store.
//
// The token is opaque here. It is never parsed and never checked for
// expiry; the server is the sole authority. A session ends when a
// collaborator answers unauthorized or the user logs out.
package session

import (
	"github.com/velvetresearch/velvet/internal/common"
)

// Storage entry names. These mirror the two localStorage keys of the
// Phase-I mockup.
const (
	TokenKey = "velvet.access_token"
	UserKey  = "velvet.user"
)

// User is the profile record issued by the auth collaborator.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at,omitempty"`
}

// Session is the loaded client session state.
type Session struct {
	Token         string
	User          User
	authenticated bool
}

// NewAuthenticated builds the in-memory session state for a fresh
// login/signup result, before any reload from the store.
func NewAuthenticated(token string, user User) Session {
	return Session{Token: token, User: user, authenticated: true}
}

// Authenticated reports whether both entries were present and the user
// entry parsed as a record at load time.
func (s Session) Authenticated() bool {
	return s.authenticated
}

// Label is the short account label shown in the UI: the local part of the
// signed-in email. Empty when logged out.
func (s Session) Label() string {
	if !s.authenticated {
		return ""
	}
	return common.EmailLocalPart(s.User.Email)
}
