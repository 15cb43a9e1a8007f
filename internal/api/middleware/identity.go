package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/betrybe/agrix/internal/api/metrics"
	"github.com/betrybe/agrix/internal/core/domain"
	"github.com/betrybe/agrix/internal/core/ports"
)

// identityKey is the echo context key the resolved person is stored under.
const identityKey = "identity"

// Identity extracts the bearer token, verifies it, and resolves its subject
// to a full person which is attached to the request context.
//
// The filter never short-circuits: on a missing header, wrong scheme,
// invalid token, or a subject that no longer resolves, the request simply
// continues unauthenticated. Public routes stay reachable and protected
// routes reject later at the access-policy layer with a uniform 401/403.
func Identity(tokens ports.TokenService, persons ports.PersonRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return next(c)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return next(c)
			}

			subject, err := tokens.Verify(parts[1])
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				return next(c)
			}

			// The token is a trust anchor for the username only; the role is
			// read fresh from the store on every request.
			person, err := persons.FindByUsername(c.Request().Context(), subject)
			if err != nil {
				// A deleted subject continues unauthenticated; a store outage
				// must not be mistaken for a revoked session.
				if errors.Is(err, domain.ErrPersonNotFound) {
					metrics.TokenVerificationsTotal.WithLabelValues("unresolved").Inc()
					return next(c)
				}
				metrics.TokenVerificationsTotal.WithLabelValues("error").Inc()
				return err
			}

			metrics.TokenVerificationsTotal.WithLabelValues("valid").Inc()
			c.Set(identityKey, person)
			return next(c)
		}
	}
}

// IdentityFrom returns the person attached by the Identity middleware, if any.
func IdentityFrom(c echo.Context) (*domain.Person, bool) {
	person, ok := c.Get(identityKey).(*domain.Person)
	return person, ok && person != nil
}
