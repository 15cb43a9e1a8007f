package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/betrybe/agrix/internal/api/metrics"
	"github.com/betrybe/agrix/internal/core/domain"
	"github.com/betrybe/agrix/internal/core/ports"
)

// dummyHash keeps a login against an unknown username as expensive as one
// against a wrong password, so response timing cannot be used to enumerate
// usernames.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// AuthService authenticates staff credentials against the person store and
// issues bearer tokens. Lookup misses and password mismatches collapse into
// a single domain.ErrInvalidCredentials.
type AuthService struct {
	persons ports.PersonRepository
	tokens  ports.TokenService
	limiter ports.LoginLimiter
	logger  zerolog.Logger
}

// NewAuthService builds an AuthService. limiter may be nil, which disables
// login throttling.
func NewAuthService(persons ports.PersonRepository, tokens ports.TokenService, limiter ports.LoginLimiter, logger zerolog.Logger) *AuthService {
	return &AuthService{persons: persons, tokens: tokens, limiter: limiter, logger: logger}
}

// Login verifies the presented credentials and returns a signed token.
func (s *AuthService) Login(ctx context.Context, input ports.LoginInput) (string, error) {
	if input.Username == "" || input.Password == "" {
		metrics.LoginsTotal.WithLabelValues("invalid").Inc()
		return "", domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		if err := s.limiter.Allow(ctx, input.Username, input.RemoteIP); err != nil {
			if errors.Is(err, domain.ErrTooManyAttempts) {
				metrics.LoginsTotal.WithLabelValues("throttled").Inc()
				s.logger.Warn().Str("username", input.Username).Msg("login throttled")
				return "", err
			}
			// Limiter backend down: let the attempt through rather than turn
			// a cache outage into a login outage.
			s.logger.Error().Err(err).Msg("login limiter unavailable")
		}
	}

	person, err := s.persons.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domain.ErrPersonNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(input.Password))
			metrics.LoginsTotal.WithLabelValues("invalid").Inc()
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(person.PasswordHash), []byte(input.Password)) != nil {
		metrics.LoginsTotal.WithLabelValues("invalid").Inc()
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(person)
	if err != nil {
		return "", err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("username", person.Username).Msg("login succeeded")
	return token, nil
}
