package entity

import (
	"context"
	"errors"
	"time"
)

var ErrWarmupConfigNotFound = errors.New("warmup config não encontrada para o domínio")

// WarmupConfig é o contador diário compartilhado por domínio de envio.
// sent_today reseta uma vez por dia-calendário (comparando last_reset)
// e nunca deve passar de daily_limit.
type WarmupConfig struct {
	Domain     string    `json:"domain"`
	DailyLimit int       `json:"daily_limit"`
	SentToday  int       `json:"sent_today"`
	LastReset  time.Time `json:"last_reset"` // só a data importa
	WarmupDay  int       `json:"warmup_day"`
	WarmupWeek int       `json:"warmup_week"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Remaining é a cota que sobra hoje. Nunca negativa.
func (w *WarmupConfig) Remaining() int {
	r := w.DailyLimit - w.SentToday
	if r < 0 {
		return 0
	}
	return r
}

// NeedsReset compara só a data-calendário de last_reset com `now`
func (w *WarmupConfig) NeedsReset(now time.Time) bool {
	ly, lm, ld := w.LastReset.Date()
	ny, nm, nd := now.Date()
	return ly != ny || lm != nm || ld != nd
}

type WarmupRepositoryInterface interface {
	// EnsureExists cria a linha com defaults na primeira rodada do domínio
	// (sent_today=0, last_reset=hoje) e retorna o estado atual.
	EnsureExists(ctx context.Context, domain string, dailyLimit int) (*WarmupConfig, error)

	// ResetIfNewDay zera sent_today se last_reset != hoje. Idempotente:
	// chamar duas vezes no mesmo dia não muda nada na segunda.
	ResetIfNewDay(ctx context.Context, domain string, now time.Time) (*WarmupConfig, error)

	// IncrementSent soma 1 em sent_today de forma atômica e condicional
	// (UPDATE ... WHERE sent_today < daily_limit). Retorna ErrQuotaExceeded
	// se a cota já estourou — fecha a corrida entre dois processos no
	// mesmo domínio.
	IncrementSent(ctx context.Context, domain string) (*WarmupConfig, error)

	// FindByDomain busca o estado atual sem criar nada
	FindByDomain(ctx context.Context, domain string) (*WarmupConfig, error)
}

var ErrQuotaExceeded = errors.New("cota diária do domínio esgotada")
