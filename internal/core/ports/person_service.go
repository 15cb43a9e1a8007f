package ports

import (
	"context"

	"github.com/betrybe/agrix/internal/core/domain"
)

// PersonService registers new staff members.
type PersonService interface {
	Register(ctx context.Context, username, password, role string) (*domain.Person, error)
}
