// Package session maps opaque tokens to authenticated user ids. The backing
// store is injectable: Redis for deployments that share sessions across
// instances, an in-memory map for tests and local runs.
package session

import "context"

// CookieName is the cookie that carries the session token.
const CookieName = "session"

// Store issues, resolves, and revokes session tokens. A user may hold any
// number of concurrent sessions; issuing a new token never invalidates
// existing ones.
type Store interface {
	// Issue creates a new session bound to userID and returns its token.
	Issue(ctx context.Context, userID uint) (string, error)
	// Resolve returns the user id bound to token. ok is false when the token
	// is unknown or expired.
	Resolve(ctx context.Context, token string) (userID uint, ok bool, err error)
	// Revoke destroys the binding for token. Revoking an absent token is a
	// no-op.
	Revoke(ctx context.Context, token string) error
}
