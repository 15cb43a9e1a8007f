package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/betrybe/agrix/internal/api/metrics"
	"github.com/betrybe/agrix/internal/core/domain"
	"github.com/betrybe/agrix/internal/core/ports"
)

// PersonService implements staff registration.
type PersonService struct {
	repo   ports.PersonRepository
	logger zerolog.Logger
}

func NewPersonService(repo ports.PersonRepository, logger zerolog.Logger) *PersonService {
	return &PersonService{repo: repo, logger: logger}
}

// Register creates a new staff member with a bcrypt-hashed password.
func (s *PersonService) Register(ctx context.Context, username, password, role string) (*domain.Person, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidPerson
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidPerson
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	person := &domain.Person{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, person)
	if err != nil {
		return nil, err
	}

	metrics.RecordsCreatedTotal.WithLabelValues("person").Inc()
	s.logger.Info().Str("username", created.Username).Str("role", created.Role).Msg("person registered")
	return created, nil
}
