package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/betrybe/agrix/internal/core/domain"
	"github.com/betrybe/agrix/internal/core/ports"
)

// Audit records every mutating request (POST/PUT/PATCH/DELETE) with the
// acting identity. Must run after the Identity middleware so the actor can
// be attributed; unauthenticated actors are recorded as "anonymous".
func Audit(recorder ports.AuditRecorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := next(c); err != nil {
				// Render through the registered error handler so the recorded
				// status matches what the client actually received.
				c.Error(err)
			}

			switch c.Request().Method {
			case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
			default:
				return nil
			}

			actor := "anonymous"
			if person, ok := IdentityFrom(c); ok {
				actor = person.Username
			}

			recorder.Record(domain.AuditEntry{
				Actor:     actor,
				Method:    c.Request().Method,
				Route:     c.Path(),
				Status:    c.Response().Status,
				Timestamp: time.Now().UTC(),
			})
			return nil
		}
	}
}
