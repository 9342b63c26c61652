package worker

import (
	"context"
	"database/sql"
	"log"
	"time"
)

// PendingSendJanitor varre envios presos em 'pending'. Se o processo morreu
// entre gravar o registro e confirmar o envio, o registro fica pendurado —
// depois de 30 min a gente assume que o envio não aconteceu e marca falha.
type PendingSendJanitor struct {
	db           *sql.DB
	staleWindow  time.Duration
	tickInterval time.Duration
}

func NewPendingSendJanitor(db *sql.DB) *PendingSendJanitor {
	return &PendingSendJanitor{
		db:           db,
		staleWindow:  30 * time.Minute,
		tickInterval: 5 * time.Minute,
	}
}

func (w *PendingSendJanitor) Start(ctx context.Context) {
	log.Println("🕒 Pending Send Janitor iniciado (30min window)")

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.expireStaleSends(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("⚠️ Pending Send Janitor encerrado")
			return
		case <-ticker.C:
			w.expireStaleSends(ctx)
		}
	}
}

func (w *PendingSendJanitor) expireStaleSends(ctx context.Context) {
	query := `
		UPDATE email_sends
		SET
			status = 'failed',
			error = 'expired: stuck in pending',
			updated_at = NOW()
		WHERE
			status = 'pending'
			AND created_at < NOW() - INTERVAL '30 minutes'
		RETURNING id, lead_id, to_address, created_at
	`

	rows, err := w.db.QueryContext(ctx, query)
	if err != nil {
		log.Printf("❌ Erro ao buscar envios pendentes expirados: %v", err)
		return
	}
	defer rows.Close()

	expiredCount := 0
	for rows.Next() {
		var sendID, leadID, toEmail string
		var createdAt time.Time

		if err := rows.Scan(&sendID, &leadID, &toEmail, &createdAt); err != nil {
			log.Printf("⚠️ Erro ao escanear envio expirado: %v", err)
			continue
		}

		elapsed := time.Since(createdAt)
		log.Printf("⏱️ Envio expirado: send=%s lead=%s to=%s elapsed=%s",
			sendID, leadID, toEmail, elapsed.Round(time.Minute))
		expiredCount++
	}

	if expiredCount > 0 {
		log.Printf("✅ %d envio(s) pendente(s) marcados como failed", expiredCount)
	}
}
