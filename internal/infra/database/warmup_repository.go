package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

type WarmupRepository struct {
	DB *sql.DB
}

func NewWarmupRepository(db *sql.DB) *WarmupRepository {
	return &WarmupRepository{DB: db}
}

const warmupColumns = `domain, daily_limit, sent_today, last_reset, warmup_day, warmup_week, updated_at`

// EnsureExists cria a linha do domínio na primeira rodada (lazy).
// O ON CONFLICT DO NOTHING deixa duas rodadas concorrentes chegarem aqui
// sem quebrar — quem perder a corrida só lê o que já existe.
func (r *WarmupRepository) EnsureExists(ctx context.Context, domain string, dailyLimit int) (*entity.WarmupConfig, error) {
	insert := `
		INSERT INTO warmup_config (domain, daily_limit, sent_today, last_reset, warmup_day, warmup_week, updated_at)
		VALUES ($1, $2, 0, CURRENT_DATE, 1, 1, NOW())
		ON CONFLICT (domain) DO NOTHING
	`
	if _, err := r.DB.ExecContext(ctx, insert, domain, dailyLimit); err != nil {
		return nil, fmt.Errorf("erro ao criar warmup_config de %s: %w", domain, err)
	}

	return r.FindByDomain(ctx, domain)
}

// ResetIfNewDay zera sent_today UMA vez por dia-calendário. O predicado
// last_reset <> CURRENT_DATE torna a operação idempotente: a segunda
// chamada do dia não afeta nenhuma linha.
func (r *WarmupRepository) ResetIfNewDay(ctx context.Context, domain string, now time.Time) (*entity.WarmupConfig, error) {
	query := `
		UPDATE warmup_config
		SET
			sent_today = 0,
			last_reset = CURRENT_DATE,
			warmup_day = warmup_day + (CURRENT_DATE - last_reset),
			warmup_week = 1 + (warmup_day + (CURRENT_DATE - last_reset) - 1) / 7,
			updated_at = NOW()
		WHERE domain = $1 AND last_reset <> CURRENT_DATE
	`
	if _, err := r.DB.ExecContext(ctx, query, domain); err != nil {
		return nil, fmt.Errorf("erro no reset diário de %s: %w", domain, err)
	}

	return r.FindByDomain(ctx, domain)
}

// IncrementSent é o update condicional atômico que fecha a corrida de
// dois processos no mesmo domínio: o incremento só acontece enquanto
// sent_today < daily_limit, num único statement. Sem read-then-write.
func (r *WarmupRepository) IncrementSent(ctx context.Context, domain string) (*entity.WarmupConfig, error) {
	query := `
		UPDATE warmup_config
		SET sent_today = sent_today + 1, updated_at = NOW()
		WHERE domain = $1 AND sent_today < daily_limit
		RETURNING ` + warmupColumns

	cfg, err := r.scanOne(r.DB.QueryRowContext(ctx, query, domain))
	if err == sql.ErrNoRows {
		return nil, entity.ErrQuotaExceeded
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao incrementar sent_today de %s: %w", domain, err)
	}
	return cfg, nil
}

func (r *WarmupRepository) FindByDomain(ctx context.Context, domain string) (*entity.WarmupConfig, error) {
	query := `SELECT ` + warmupColumns + ` FROM warmup_config WHERE domain = $1`

	cfg, err := r.scanOne(r.DB.QueryRowContext(ctx, query, domain))
	if err == sql.ErrNoRows {
		return nil, entity.ErrWarmupConfigNotFound
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (r *WarmupRepository) scanOne(row *sql.Row) (*entity.WarmupConfig, error) {
	var cfg entity.WarmupConfig
	err := row.Scan(
		&cfg.Domain,
		&cfg.DailyLimit,
		&cfg.SentToday,
		&cfg.LastReset,
		&cfg.WarmupDay,
		&cfg.WarmupWeek,
		&cfg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
