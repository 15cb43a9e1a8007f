package ports

import "context"

// LoginInput carries the transient credential presentation for one login
// attempt. It is never persisted or logged.
type LoginInput struct {
	Username string
	Password string
	// RemoteIP scopes the brute-force limiter; empty disables IP scoping.
	RemoteIP string
}

// AuthService authenticates staff credentials and issues bearer tokens.
type AuthService interface {
	Login(ctx context.Context, input LoginInput) (string, error)
}

// LoginLimiter throttles repeated login attempts for a username/address pair.
// Allow returns domain.ErrTooManyAttempts when the attempt budget for the
// current window is exhausted.
type LoginLimiter interface {
	Allow(ctx context.Context, username, remoteIP string) error
}
