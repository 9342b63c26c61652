package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
)

type LeadStatusRepository struct {
	DB *sql.DB
}

func NewLeadStatusRepository(db *sql.DB) *LeadStatusRepository {
	return &LeadStatusRepository{DB: db}
}

// AdvanceStage avança o funil depois de um envio confirmado.
// O LEAST() segura o teto de estágio no banco também — o usecase já
// limita, mas aqui ninguém passa de 3 nem por engano.
func (r *LeadStatusRepository) AdvanceStage(ctx context.Context, statusID string, newStage int, delayDays int) error {
	query := `
		UPDATE lead_status
		SET
			warmup_stage = LEAST($1, 3),
			status = 'warming',
			emails_sent = emails_sent + 1,
			last_email_at = NOW(),
			next_email_at = NOW() + ($2 * INTERVAL '1 day'),
			updated_at = NOW()
		WHERE id = $3
	`

	res, err := r.DB.ExecContext(ctx, query, newStage, delayDays, statusID)
	if err != nil {
		return fmt.Errorf("erro ao avançar estágio do lead_status %s: %w", statusID, err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("lead_status %s não encontrado", statusID)
	}
	return nil
}

// Suppress é terminal e idempotente: suprimir duas vezes não é erro.
// O motivo fica no log — a tabela guarda só o estado.
func (r *LeadStatusRepository) Suppress(ctx context.Context, leadEmail string, reason string) error {
	query := `
		UPDATE lead_status s
		SET status = 'suppressed', updated_at = NOW()
		FROM leads l
		WHERE s.lead_id = l.id AND l.email = $1 AND s.status <> 'suppressed'
	`

	res, err := r.DB.ExecContext(ctx, query, leadEmail)
	if err != nil {
		return fmt.Errorf("erro ao suprimir lead %s: %w", leadEmail, err)
	}

	if n, _ := res.RowsAffected(); n > 0 {
		log.Printf("🚫 Lead suprimido: %s (motivo: %s)", leadEmail, reason)
	}
	return nil
}
