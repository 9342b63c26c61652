package usecase

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/xavierca1/ligue-outreach/internal/entity"
	"github.com/xavierca1/ligue-outreach/internal/infra/mail"
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

// MockLeadStatusRepository
type MockLeadStatusRepository struct {
	mock.Mock
}

func (m *MockLeadStatusRepository) AdvanceStage(ctx context.Context, statusID string, newStage int, delayDays int) error {
	args := m.Called(ctx, statusID, newStage, delayDays)
	return args.Error(0)
}

func (m *MockLeadStatusRepository) Suppress(ctx context.Context, leadEmail string, reason string) error {
	args := m.Called(ctx, leadEmail, reason)
	return args.Error(0)
}

// MockEmailSendRepository
type MockEmailSendRepository struct {
	mock.Mock
}

func (m *MockEmailSendRepository) Create(ctx context.Context, send *entity.EmailSend) error {
	args := m.Called(ctx, send)
	return args.Error(0)
}

func (m *MockEmailSendRepository) MarkSent(ctx context.Context, sendID string, providerMessageID string) error {
	args := m.Called(ctx, sendID, providerMessageID)
	return args.Error(0)
}

func (m *MockEmailSendRepository) MarkFailed(ctx context.Context, sendID string, reason string) error {
	args := m.Called(ctx, sendID, reason)
	return args.Error(0)
}

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

// MockContentGenerator
type MockContentGenerator struct {
	mock.Mock
}

func (m *MockContentGenerator) GenerateBody(ctx context.Context, lead *entity.Lead) (string, error) {
	args := m.Called(ctx, lead)
	return args.String(0), args.Error(1)
}

// MockEmailSender
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) Send(ctx context.Context, msg mail.Message) (string, error) {
	args := m.Called(ctx, msg)
	return args.String(0), args.Error(1)
}
