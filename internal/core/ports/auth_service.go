package ports

import "context"

// LoginResult is the payload returned on successful authentication.
// It never carries the plaintext password or the stored digest.
type LoginResult struct {
	ID       int64
	Username string
	Name     string
	Token    string
}

// AuthService authenticates employees and issues access tokens.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}

// LoginThrottle limits consecutive failed login attempts per username.
type LoginThrottle interface {
	// Blocked reports whether the username has exceeded the failure threshold.
	Blocked(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}
