package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"interact-club.backend/internal/domain/entities"
	domainerrors "interact-club.backend/internal/domain/errors"
	"interact-club.backend/internal/usecases"
)

type contactServiceStub struct {
	submitted []*entities.ContactSubmitInput
	submitErr error
	info      *entities.ContactInfo
}

func (s *contactServiceStub) Submit(_ context.Context, in *entities.ContactSubmitInput) (*entities.ContactSubmission, error) {
	if s.submitErr != nil {
		return nil, s.submitErr
	}
	s.submitted = append(s.submitted, in)
	return &entities.ContactSubmission{ID: uuid.New(), Name: in.Name}, nil
}

func (s *contactServiceStub) ListSubmissions(context.Context) ([]*entities.ContactSubmission, error) {
	out := make([]*entities.ContactSubmission, 0, len(s.submitted))
	for _, in := range s.submitted {
		out = append(out, &entities.ContactSubmission{Name: in.Name, Status: entities.ContactStatusNew})
	}
	return out, nil
}

func (s *contactServiceStub) GetInfo(context.Context) (*entities.ContactInfo, error) {
	if s.info == nil {
		return entities.DefaultContactInfo(), nil
	}
	return s.info, nil
}

func (s *contactServiceStub) UpdateInfo(_ context.Context, in *entities.UpdateContactInfoInput) (*entities.ContactInfo, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	info, _ := s.GetInfo(context.Background())
	in.Apply(info)
	s.info = info
	return info, nil
}

func TestContactHandler(t *testing.T) {
	svc := &contactServiceStub{}
	h := NewContactHandler(svc)
	r := newTestRouter()
	r.POST("/contact/submit", h.Submit)
	r.GET("/contact/submissions", h.ListSubmissions)
	r.GET("/contact/info", h.GetInfo)
	r.PUT("/contact/info", h.UpdateInfo)

	w := doJSON(t, r, http.MethodPost, "/contact/submit", map[string]string{
		"name": "Asha", "email": "asha@example.com", "subject": "Join", "message": "How?",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Thank you for contacting us")

	w = doJSON(t, r, http.MethodPost, "/contact/submit", map[string]string{"name": "Asha"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Len(t, svc.submitted, 1)

	w = doJSON(t, r, http.MethodGet, "/contact/submissions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"status":"new"`)

	w = doJSON(t, r, http.MethodGet, "/contact/info", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Kolhapur, Maharashtra, India")

	w = doJSON(t, r, http.MethodPut, "/contact/info", `{"office_hours":"Sunday: 9 AM"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Sunday: 9 AM")

	w = doJSON(t, r, http.MethodPut, "/contact/info", `{"email":"bad"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	svc.submitErr = domainerrors.InvalidInput("message is required")
	w = doJSON(t, r, http.MethodPost, "/contact/submit", map[string]string{
		"name": "A", "email": "a@b.co", "subject": "s", "message": "<b></b>",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

type seederFunc func(ctx context.Context) (*usecases.SeedResult, error)

func (f seederFunc) Seed(ctx context.Context) (*usecases.SeedResult, error) { return f(ctx) }

func TestSeedHandler(t *testing.T) {
	seeded := false
	h := NewSeedHandler(seederFunc(func(context.Context) (*usecases.SeedResult, error) {
		if seeded {
			return &usecases.SeedResult{}, nil
		}
		seeded = true
		return &usecases.SeedResult{Seeded: true, BoardMembers: 13}, nil
	}))
	r := newTestRouter()
	r.POST("/seed-database", h.SeedDatabase)

	w := doJSON(t, r, http.MethodPost, "/seed-database", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Database seeded successfully")

	w = doJSON(t, r, http.MethodPost, "/seed-database", nil)
	require.Contains(t, w.Body.String(), "Skipping seed")

	failing := NewSeedHandler(seederFunc(func(context.Context) (*usecases.SeedResult, error) {
		return nil, errors.New("tx aborted")
	}))
	r = newTestRouter()
	r.POST("/seed-database", failing.SeedDatabase)
	require.Equal(t, http.StatusInternalServerError, doJSON(t, r, http.MethodPost, "/seed-database", nil).Code)
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

func TestSystemHandler(t *testing.T) {
	healthy := NewSystemHandler(pingerFunc(func(context.Context) error { return nil }))
	r := newTestRouter()
	r.GET("/api/", healthy.Root)
	r.GET("/health", healthy.Health)

	w := doJSON(t, r, http.MethodGet, "/api/", nil)
	require.JSONEq(t, `{"message":"Interact Club of Kolhapur API","version":"1.0.0"}`, w.Body.String())
	require.Equal(t, http.StatusOK, doJSON(t, r, http.MethodGet, "/health", nil).Code)

	down := NewSystemHandler(pingerFunc(func(context.Context) error { return errors.New("refused") }))
	w = httptest.NewRecorder()
	r = newTestRouter()
	r.GET("/health", down.Health)
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
}
