package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Ciclo de vida de um email_send (outbox):
// pending → sent | failed. Append-only, nunca deletado.
const (
	SendStatusPending = "pending"
	SendStatusSent    = "sent"
	SendStatusFailed  = "failed"
)

// EmailSend é o registro de auditoria de uma tentativa de envio.
// A linha nasce `pending` ANTES da chamada ao provedor — se o processo
// morrer no meio, fica o rastro pra investigação (padrão outbox).
type EmailSend struct {
	ID                string    `json:"id"`
	LeadID            string    `json:"lead_id"`
	ProviderMessageID string    `json:"provider_message_id,omitempty"`
	FromAddress       string    `json:"from_address"`
	ToAddress         string    `json:"to_address"`
	Subject           string    `json:"subject"`
	Body              string    `json:"body"`
	EmailType         string    `json:"email_type"` // warmup_1, warmup_2, warmup_3
	Status            string    `json:"status"`     // pending, sent, failed
	Error             string    `json:"error,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// NewEmailSend cria o registro em `pending`, pronto pra persistir antes
// do envio de verdade
func NewEmailSend(leadID, from, to, subject, body, emailType string) *EmailSend {
	return &EmailSend{
		ID:          uuid.New().String(),
		LeadID:      leadID,
		FromAddress: from,
		ToAddress:   to,
		Subject:     subject,
		Body:        body,
		EmailType:   emailType,
		Status:      SendStatusPending,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

type EmailSendRepositoryInterface interface {
	Create(ctx context.Context, send *EmailSend) error

	// MarkSent grava o message id do provedor e transiciona pra `sent`
	MarkSent(ctx context.Context, sendID string, providerMessageID string) error

	// MarkFailed transiciona pra `failed` guardando o motivo
	MarkFailed(ctx context.Context, sendID string, reason string) error
}
