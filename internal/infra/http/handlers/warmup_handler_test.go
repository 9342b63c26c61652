package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/xavierca1/ligue-outreach/internal/entity"
)

// MockWarmupRepository
type MockWarmupRepository struct {
	mock.Mock
}

func (m *MockWarmupRepository) EnsureExists(ctx context.Context, domain string, dailyLimit int) (*entity.WarmupConfig, error) {
	args := m.Called(ctx, domain, dailyLimit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.WarmupConfig), args.Error(1)
}

func (m *MockWarmupRepository) ResetIfNewDay(ctx context.Context, domain string, now time.Time) (*entity.WarmupConfig, error) {
	args := m.Called(ctx, domain, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.WarmupConfig), args.Error(1)
}

func (m *MockWarmupRepository) IncrementSent(ctx context.Context, domain string) (*entity.WarmupConfig, error) {
	args := m.Called(ctx, domain)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.WarmupConfig), args.Error(1)
}

func (m *MockWarmupRepository) FindByDomain(ctx context.Context, domain string) (*entity.WarmupConfig, error) {
	args := m.Called(ctx, domain)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.WarmupConfig), args.Error(1)
}

func warmupStatusRequest(t *testing.T, handler *WarmupHandler, domain string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Get("/warmup/status/{domain}", handler.GetStatusHandler)

	req := httptest.NewRequest("GET", "/warmup/status/"+domain, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWarmupStatusFound(t *testing.T) {
	repo := new(MockWarmupRepository)
	handler := NewWarmupHandler(repo)

	repo.On("FindByDomain", mock.Anything, "liguemusic.com").Return(&entity.WarmupConfig{
		Domain:     "liguemusic.com",
		DailyLimit: 20,
		SentToday:  13,
		LastReset:  time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		WarmupDay:  12,
		WarmupWeek: 2,
	}, nil)

	w := warmupStatusRequest(t, handler, "liguemusic.com")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp WarmupStatusResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 20, resp.DailyLimit)
	assert.Equal(t, 13, resp.SentToday)
	assert.Equal(t, 7, resp.Remaining)
	assert.Equal(t, "2025-06-10", resp.LastReset)
}

func TestWarmupStatusUnknownDomain(t *testing.T) {
	repo := new(MockWarmupRepository)
	handler := NewWarmupHandler(repo)

	repo.On("FindByDomain", mock.Anything, "fantasma.com").Return(nil, entity.ErrWarmupConfigNotFound)

	w := warmupStatusRequest(t, handler, "fantasma.com")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "DOMAIN_NOT_FOUND")
}
