package api_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/ticketdesk/pkg/config"
	"github.com/ghuser/ticketdesk/pkg/logger"
	"github.com/ghuser/ticketdesk/services/ticket/application/api"
	appsvcs "github.com/ghuser/ticketdesk/services/ticket/application/services"
	ticketdomain "github.com/ghuser/ticketdesk/services/ticket/domain"
	"github.com/ghuser/ticketdesk/services/ticket/domain/models"
)

type memRepo struct {
	mu      sync.Mutex
	tickets map[uuid.UUID]models.Ticket
}

func (m *memRepo) Save(_ context.Context, t *models.Ticket) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tickets[t.ID] = *t
	return nil
}

func (m *memRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Ticket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tickets[id]
	if !ok {
		return nil, ticketdomain.ErrTicketNotFound
	}
	return &t, nil
}

func (m *memRepo) Update(ctx context.Context, t *models.Ticket) error {
	return m.Save(ctx, t)
}

func (m *memRepo) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tickets, id)
	return nil
}

func (m *memRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.tickets[id]
	return ok, nil
}

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	repo := &memRepo{tickets: make(map[uuid.UUID]models.Ticket)}
	log := logger.NewWithWriter(&config.Config{LogLevel: "error"}, io.Discard)
	svcs := &appsvcs.Services{Ticket: appsvcs.NewTicketService(repo, log)}

	r := chi.NewRouter()
	api.Mount(r, svcs, false)
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var rdr io.Reader = http.NoBody
	if body != "" {
		rdr = strings.NewReader(body)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(method, path, rdr))

	var decoded map[string]any
	if rr.Body.Len() > 0 {
		if err := json.Unmarshal(rr.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("%s %s: body is not JSON: %s", method, path, rr.Body.String())
		}
	}
	return rr, decoded
}

func TestPostTicket(t *testing.T) {
	h := newRouter(t)

	t.Run("created", func(t *testing.T) {
		rr, body := do(t, h, http.MethodPost, "/ticket/", `{"title":"A title","description":"Do the thing"}`)
		if rr.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %v", rr.Code, body)
		}
		if body["title"] != "A title" || body["status"] != "To-Do" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	tests := []struct {
		name    string
		body    string
		status  int
		message string
	}{
		{"title too long", `{"title":"A title that's definitely longer than what should be allowed in a development ticket","description":"d"}`,
			http.StatusUnprocessableEntity, "The title cannot be longer than 50 bytes"},
		{"51-byte title", `{"title":"` + strings.Repeat("x", 51) + `","description":"d"}`,
			http.StatusUnprocessableEntity, "The title cannot be longer than 50 bytes"},
		{"empty title", `{"title":"","description":"d"}`, http.StatusUnprocessableEntity, "The title cannot be empty"},
		{"missing title", `{"description":"d"}`, http.StatusUnprocessableEntity, "The title cannot be empty"},
		{"description too long", `{"title":"ok","description":"` + strings.Repeat("d", 501) + `"}`,
			http.StatusUnprocessableEntity, "The description cannot be longer than 500 bytes"},
		{"empty description", `{"title":"ok","description":""}`, http.StatusUnprocessableEntity, "The description cannot be empty"},
		{"malformed JSON", `{`, http.StatusBadRequest, "Invalid JSON"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr, body := do(t, h, http.MethodPost, "/ticket/", tt.body)
			if rr.Code != tt.status {
				t.Fatalf("expected %d, got %d: %v", tt.status, rr.Code, body)
			}
			if body["error"] != tt.message {
				t.Fatalf("unexpected error: %v", body["error"])
			}
		})
	}
}

func TestTicketLifecycle(t *testing.T) {
	h := newRouter(t)

	rr, body := do(t, h, http.MethodPost, "/ticket/", `{"title":"Lifecycle","description":"d"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create: %d %v", rr.Code, body)
	}
	path := "/ticket/" + body["id"].(string)

	rr, body = do(t, h, http.MethodGet, path, "")
	if rr.Code != http.StatusOK || body["title"] != "Lifecycle" {
		t.Fatalf("get: %d %v", rr.Code, body)
	}

	rr, body = do(t, h, http.MethodPatch, path, `{"title":"Renamed","status":"in progress"}`)
	if rr.Code != http.StatusOK || body["title"] != "Renamed" || body["status"] != "In Progress" {
		t.Fatalf("patch: %d %v", rr.Code, body)
	}

	rr, body = do(t, h, http.MethodPatch, path, `{"title":""}`)
	if rr.Code != http.StatusUnprocessableEntity || body["error"] != "The title cannot be empty" {
		t.Fatalf("patch empty title: %d %v", rr.Code, body)
	}

	rr, body = do(t, h, http.MethodPatch, path, `{}`)
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("patch with no fields: %d %v", rr.Code, body)
	}

	rr, _ = do(t, h, http.MethodDelete, path, "")
	if rr.Code != http.StatusNoContent {
		t.Fatalf("delete: %d", rr.Code)
	}

	rr, _ = do(t, h, http.MethodGet, path, "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("get after delete: %d", rr.Code)
	}
}

func TestTicketByID_BadID(t *testing.T) {
	h := newRouter(t)
	rr, body := do(t, h, http.MethodGet, "/ticket/not-a-uuid", "")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %v", rr.Code, body)
	}
}

func TestCheckTitle(t *testing.T) {
	h := newRouter(t)

	tests := []struct {
		name  string
		body  string
		valid bool
		err   string
	}{
		{"valid", `{"title":"A title"}`, true, ""},
		{"exactly 50 bytes", `{"title":"` + strings.Repeat("x", 50) + `"}`, true, ""},
		{"51 bytes", `{"title":"` + strings.Repeat("x", 51) + `"}`, false, "The title cannot be longer than 50 bytes"},
		{"empty", `{"title":""}`, false, "The title cannot be empty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr, body := do(t, h, http.MethodPost, "/ticket/title/check", tt.body)
			if rr.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rr.Code)
			}
			if body["valid"] != tt.valid {
				t.Fatalf("valid: got %v, want %v", body["valid"], tt.valid)
			}
			if tt.err != "" && body["error"] != tt.err {
				t.Fatalf("error: got %v, want %q", body["error"], tt.err)
			}
		})
	}
}
