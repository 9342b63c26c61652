package entity

import (
	"context"
	"time"
)

// Estados possíveis de um lead no funil de warmup
const (
	LeadStatusNew        = "new"
	LeadStatusWarming    = "warming"
	LeadStatusSuppressed = "suppressed" // bounce/reclamação/unsubscribe — nunca mais contatar
)

// MaxWarmupStage é o teto da sequência de warmup (3 emails)
const MaxWarmupStage = 3

// LeadStatus é o registro mutável de progresso, 1:1 com Lead.
// warmup_stage só cresce (0→3) e nunca passa de MaxWarmupStage.
type LeadStatus struct {
	ID          string     `json:"id"`
	LeadID      string     `json:"lead_id"`
	Status      string     `json:"status"` // new, warming, suppressed
	WarmupStage int        `json:"warmup_stage"`
	EmailsSent  int        `json:"emails_sent"`
	LastEmailAt *time.Time `json:"last_email_at,omitempty"`
	NextEmailAt *time.Time `json:"next_email_at,omitempty"` // cooldown por lead
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type LeadStatusRepositoryInterface interface {
	// AdvanceStage avança o lead após um envio bem-sucedido:
	// warmup_stage=newStage, status=warming, emails_sent+1,
	// last_email_at=now, next_email_at=now+delayDays.
	AdvanceStage(ctx context.Context, statusID string, newStage int, delayDays int) error

	// Suppress marca o lead como suprimido (terminal). Idempotente.
	Suppress(ctx context.Context, leadEmail string, reason string) error
}
