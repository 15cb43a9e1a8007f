package ports

import "github.com/betrybe/agrix/internal/core/domain"

// TokenService creates and verifies the signed bearer tokens issued at login.
type TokenService interface {
	// Issue builds a signed, expiring token whose subject is the person's username.
	Issue(person *domain.Person) (string, error)
	// Verify validates the signature, issuer and expiry of token and returns
	// its subject. Every failure mode collapses to domain.ErrInvalidToken.
	Verify(token string) (string, error)
}
