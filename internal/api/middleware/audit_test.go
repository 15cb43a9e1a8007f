package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/betrybe/agrix/internal/core/domain"
)

type captureRecorder struct {
	entries []domain.AuditEntry
}

func (r *captureRecorder) Record(entry domain.AuditEntry) {
	r.entries = append(r.entries, entry)
}

func runAudit(t *testing.T, recorder *captureRecorder, method string, identity *domain.Person, handler echo.HandlerFunc) error {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, "/farms", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/farms")
	if identity != nil {
		c.Set(identityKey, identity)
	}

	return Audit(recorder)(handler)(c)
}

func TestAudit_RecordsMutation(t *testing.T) {
	recorder := &captureRecorder{}
	alice := &domain.Person{Username: "alice", Role: domain.RoleAdmin}

	err := runAudit(t, recorder, http.MethodPost, alice, func(c echo.Context) error {
		return c.NoContent(http.StatusCreated)
	})
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if len(recorder.entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(recorder.entries))
	}
	entry := recorder.entries[0]
	if entry.Actor != "alice" || entry.Method != http.MethodPost || entry.Route != "/farms" || entry.Status != http.StatusCreated {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	if entry.Timestamp.IsZero() {
		t.Fatal("entry timestamp not set")
	}
}

func TestAudit_SkipsReads(t *testing.T) {
	recorder := &captureRecorder{}

	err := runAudit(t, recorder, http.MethodGet, nil, func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if len(recorder.entries) != 0 {
		t.Fatalf("GET requests must not be audited, got %+v", recorder.entries)
	}
}

func TestAudit_AnonymousActor(t *testing.T) {
	recorder := &captureRecorder{}

	if err := runAudit(t, recorder, http.MethodPost, nil, func(c echo.Context) error {
		return c.NoContent(http.StatusCreated)
	}); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if len(recorder.entries) != 1 || recorder.entries[0].Actor != "anonymous" {
		t.Fatalf("expected an anonymous entry, got %+v", recorder.entries)
	}
}

func TestAudit_CapturesErrorStatus(t *testing.T) {
	recorder := &captureRecorder{}

	err := runAudit(t, recorder, http.MethodDelete, nil, func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden")
	})
	if err != nil {
		t.Fatalf("the error must be rendered, not propagated: %v", err)
	}

	if len(recorder.entries) != 1 || recorder.entries[0].Status != http.StatusForbidden {
		t.Fatalf("expected a 403 entry, got %+v", recorder.entries)
	}
}

func TestAudit_StatusFollowsErrorHandlerMapping(t *testing.T) {
	// The recorded status must be the one the registered error handler
	// produced for the domain error, not a blanket 500.
	recorder := &captureRecorder{}

	e := echo.New()
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		if errors.Is(err, domain.ErrFarmNotFound) {
			_ = c.JSON(http.StatusNotFound, map[string]string{"error": "farm not found"})
			return
		}
		_ = c.NoContent(http.StatusInternalServerError)
	}

	req := httptest.NewRequest(http.MethodPost, "/farms/999/crops", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/farms/:farmId/crops")

	err := Audit(recorder)(func(c echo.Context) error {
		return domain.ErrFarmNotFound
	})(c)
	if err != nil {
		t.Fatalf("the error must be rendered, not propagated: %v", err)
	}

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected a 404 response, got %d", rec.Code)
	}
	if len(recorder.entries) != 1 || recorder.entries[0].Status != http.StatusNotFound {
		t.Fatalf("expected a 404 entry, got %+v", recorder.entries)
	}
}
