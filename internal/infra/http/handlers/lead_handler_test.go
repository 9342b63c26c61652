package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/xavierca1/ligue-outreach/internal/entity"
)

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Upsert(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) FetchEligible(ctx context.Context, limit int) ([]*entity.EligibleLead, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.EligibleLead), args.Error(1)
}

func TestCaptureLeadSuccess(t *testing.T) {
	repo := new(MockLeadRepository)
	handler := NewLeadHandler(repo)

	repo.On("Upsert", mock.Anything, mock.MatchedBy(func(l *entity.Lead) bool {
		return l.Email == "ana@banda.com" && l.FirstName == "Ana"
	})).Return(nil)

	body := `{"email":"ana@banda.com","first_name":"Ana","company_name":"Banda X"}`
	req := httptest.NewRequest("POST", "/leads", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.CaptureLead(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	repo.AssertExpectations(t)
}

// Lead repetido: 200 com sucesso (idempotente), não 409
func TestCaptureLeadDuplicate(t *testing.T) {
	repo := new(MockLeadRepository)
	handler := NewLeadHandler(repo)

	repo.On("Upsert", mock.Anything, mock.Anything).Return(entity.ErrLeadAlreadyExists)

	body := `{"email":"repetida@banda.com"}`
	req := httptest.NewRequest("POST", "/leads", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.CaptureLead(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "already registered")
}

func TestCaptureLeadMissingEmail(t *testing.T) {
	repo := new(MockLeadRepository)
	handler := NewLeadHandler(repo)

	req := httptest.NewRequest("POST", "/leads", strings.NewReader(`{"first_name":"Ana"}`))
	w := httptest.NewRecorder()

	handler.CaptureLead(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestRateLimiterBlocksAfterLimit(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))

	// Outro IP tem janela própria
	assert.True(t, rl.Allow("10.0.0.2"))
}
