package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

type EmailSendRepository struct {
	DB *sql.DB
}

func NewEmailSendRepository(db *sql.DB) *EmailSendRepository {
	return &EmailSendRepository{DB: db}
}

// Create grava a linha em `pending` ANTES da chamada ao provedor
func (r *EmailSendRepository) Create(ctx context.Context, send *entity.EmailSend) error {
	query := `
		INSERT INTO email_sends (
			id, lead_id, from_address, to_address, subject, body,
			email_type, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.DB.ExecContext(ctx, query,
		send.ID,
		send.LeadID,
		send.FromAddress,
		send.ToAddress,
		send.Subject,
		send.Body,
		send.EmailType,
		send.Status,
		send.CreatedAt,
		send.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("erro ao criar email_send: %w", err)
	}
	return nil
}

func (r *EmailSendRepository) MarkSent(ctx context.Context, sendID string, providerMessageID string) error {
	query := `
		UPDATE email_sends
		SET status = 'sent', provider_message_id = $1, updated_at = NOW()
		WHERE id = $2 AND status = 'pending'
	`
	res, err := r.DB.ExecContext(ctx, query, providerMessageID, sendID)
	if err != nil {
		return fmt.Errorf("erro ao marcar email_send %s como sent: %w", sendID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("email_send %s não está pending", sendID)
	}
	return nil
}

func (r *EmailSendRepository) MarkFailed(ctx context.Context, sendID string, reason string) error {
	query := `
		UPDATE email_sends
		SET status = 'failed', error = $1, updated_at = NOW()
		WHERE id = $2 AND status = 'pending'
	`
	_, err := r.DB.ExecContext(ctx, query, reason, sendID)
	if err != nil {
		return fmt.Errorf("erro ao marcar email_send %s como failed: %w", sendID, err)
	}
	return nil
}
