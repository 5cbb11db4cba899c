package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/quickserve/ordering-system/internal/core/domain"
	"github.com/quickserve/ordering-system/internal/core/ports"
)

// AuthService implements employee login. The checks run in a fixed order so
// failure semantics stay consistent: lookup, password, status. The account
// status is only consulted after the password verified.
type AuthService struct {
	repo     ports.EmployeeRepository
	hasher   *PasswordHasher
	issuer   *TokenIssuer
	throttle ports.LoginThrottle // optional, nil disables throttling
	log      zerolog.Logger
}

func NewAuthService(
	repo ports.EmployeeRepository,
	hasher *PasswordHasher,
	issuer *TokenIssuer,
	throttle ports.LoginThrottle,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		repo:     repo,
		hasher:   hasher,
		issuer:   issuer,
		throttle: throttle,
		log:      log,
	}
}

// Login authenticates the credentials and issues a token. The store is only
// read, never mutated. The plaintext password is not logged and never appears
// in the result.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidArgument
	}

	if s.throttle != nil {
		blocked, err := s.throttle.Blocked(ctx, username)
		if err != nil {
			// A throttle outage must not take logins down with it.
			s.log.Warn().Err(err).Str("username", username).Msg("login throttle check failed, allowing attempt")
		} else if blocked {
			s.log.Info().Str("username", username).Msg("login blocked by throttle")
			return nil, domain.ErrTooManyAttempts
		}
	}

	emp, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if !s.hasher.Verify(password, emp.PasswordHash) {
		s.recordFailure(ctx, username)
		return nil, domain.ErrPasswordMismatch
	}

	if emp.Status == domain.StatusDisabled {
		return nil, domain.ErrAccountLocked
	}

	token, err := s.issuer.Issue(emp.ID)
	if err != nil {
		return nil, err
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, username); err != nil {
			s.log.Warn().Err(err).Str("username", username).Msg("failed to reset login throttle")
		}
	}

	s.log.Info().Int64("employee_id", emp.ID).Str("username", emp.Username).Msg("employee logged in")

	return &ports.LoginResult{
		ID:       emp.ID,
		Username: emp.Username,
		Name:     emp.Name,
		Token:    token,
	}, nil
}

func (s *AuthService) recordFailure(ctx context.Context, username string) {
	if s.throttle == nil {
		return
	}
	if err := s.throttle.RecordFailure(ctx, username); err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("failed to record login failure")
	}
}
