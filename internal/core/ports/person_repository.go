package ports

import (
	"context"

	"github.com/betrybe/agrix/internal/core/domain"
)

// PersonRepository defines the interface for staff persistence. It is the
// credential store consulted at login and on every filtered request.
type PersonRepository interface {
	// FindByUsername returns domain.ErrPersonNotFound when no such person exists.
	FindByUsername(ctx context.Context, username string) (*domain.Person, error)
	// Create returns domain.ErrPersonExists on a duplicate username.
	Create(ctx context.Context, person *domain.Person) (*domain.Person, error)
}
