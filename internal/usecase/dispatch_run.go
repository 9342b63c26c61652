package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/xavierca1/ligue-outreach/internal/config"
	"github.com/xavierca1/ligue-outreach/internal/entity"
	"github.com/xavierca1/ligue-outreach/internal/infra/mail"
)

// DispatchRunUseCase é uma rodada de disparo: calcula a cota do dia,
// puxa leads elegíveis até a cota e processa um por um, em sequência.
// Sem paralelismo de propósito — o espaçamento aleatório entre envios
// É o mecanismo anti-spam; disparar em paralelo destruiria ele.
type DispatchRunUseCase struct {
	Config     *config.CampaignConfig
	LeadRepo   entity.LeadRepositoryInterface
	StatusRepo entity.LeadStatusRepositoryInterface
	SendRepo   entity.EmailSendRepositoryInterface
	WarmupRepo entity.WarmupRepositoryInterface
	Generator  ContentGenerator
	Sender     EmailSenderInterface

	// Preview redireciona TODO envio pro endereço de teste da config
	Preview bool

	// Pausa entre envios (sorteada no intervalo). Depois de falha usa o
	// intervalo curto — falhar rápido sem inundar o provedor.
	DelayMin     time.Duration
	DelayMax     time.Duration
	FailDelayMin time.Duration
	FailDelayMax time.Duration
}

func NewDispatchRunUseCase(
	cfg *config.CampaignConfig,
	leadRepo entity.LeadRepositoryInterface,
	statusRepo entity.LeadStatusRepositoryInterface,
	sendRepo entity.EmailSendRepositoryInterface,
	warmupRepo entity.WarmupRepositoryInterface,
	generator ContentGenerator,
	sender EmailSenderInterface,
	preview bool,
) *DispatchRunUseCase {
	return &DispatchRunUseCase{
		Config:     cfg,
		LeadRepo:   leadRepo,
		StatusRepo: statusRepo,
		SendRepo:   sendRepo,
		WarmupRepo: warmupRepo,
		Generator:  generator,
		Sender:     sender,
		Preview:    preview,

		DelayMin:     30 * time.Second,
		DelayMax:     90 * time.Second,
		FailDelayMin: 5 * time.Second,
		FailDelayMax: 15 * time.Second,
	}
}

func (uc *DispatchRunUseCase) Execute(ctx context.Context) (*DispatchSummary, error) {
	cfg := uc.Config
	summary := &DispatchSummary{
		CampaignID: cfg.ID,
		Domain:     cfg.Domain,
		Preview:    uc.Preview,
	}

	// 1. Garante a linha do domínio (primeira rodada cria com defaults)
	if _, err := uc.WarmupRepo.EnsureExists(ctx, cfg.Domain, cfg.Warmup.CurrentLimit); err != nil {
		return nil, &TechnicalError{
			Code:    "WARMUP_INIT_ERROR",
			Message: "falha ao inicializar warmup_config: " + err.Error(),
		}
	}

	// 2. Virada de dia (idempotente — rodar duas vezes não muda nada)
	warmup, err := uc.WarmupRepo.ResetIfNewDay(ctx, cfg.Domain, time.Now())
	if err != nil {
		return nil, &TechnicalError{
			Code:    "WARMUP_RESET_ERROR",
			Message: "falha no reset diário: " + err.Error(),
		}
	}

	remaining := warmup.Remaining()
	summary.QuotaRemaining = remaining

	// 3. Cota zerada não é erro — é o estado terminal normal do dia
	if remaining <= 0 {
		summary.QuotaExhausted = true
		log.Printf("📭 [%s] Cota diária esgotada (%d/%d). Nada a fazer hoje.",
			cfg.Domain, warmup.SentToday, warmup.DailyLimit)
		return summary, nil
	}

	// 4. A cota restante É o limit da busca — nunca puxa mais lead do
	// que consegue mandar
	leads, err := uc.LeadRepo.FetchEligible(ctx, remaining)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "FETCH_LEADS_ERROR",
			Message: "falha ao buscar leads elegíveis: " + err.Error(),
		}
	}
	summary.Eligible = len(leads)

	if len(leads) == 0 {
		log.Printf("📭 [%s] Nenhum lead elegível (cota livre: %d)", cfg.Domain, remaining)
		return summary, nil
	}

	log.Printf("🚀 [%s] Iniciando rodada: %d leads, cota livre %d/%d%s",
		cfg.Domain, len(leads), remaining, warmup.DailyLimit, previewTag(uc.Preview))

	// 5. Um lead por vez, na ordem da query (stage ASC, created ASC).
	// Falha de UM lead nunca derruba o batch.
	for i, el := range leads {
		if ctx.Err() != nil {
			log.Printf("⚠️ [%s] Rodada cancelada após %d envios", cfg.Domain, summary.Sent)
			return summary, ctx.Err()
		}

		last := i == len(leads)-1

		if err := uc.dispatchOne(ctx, el); err != nil {
			summary.Failed++
			log.Printf("❌ [%s] Lead %s (stage %d): %v — segue pro próximo",
				cfg.Domain, el.Lead.Email, el.Stage, err)

			if !last {
				uc.sleep(ctx, uc.FailDelayMin, uc.FailDelayMax)
			}
			continue
		}

		summary.Sent++
		log.Printf("✅ [%s] Enviado warmup_%d para %s (%d/%d hoje)",
			cfg.Domain, el.Stage+1, el.Lead.Email, warmup.SentToday+summary.Sent, warmup.DailyLimit)

		// Pausa humana entre envios — menos depois do último
		if !last {
			uc.sleep(ctx, uc.DelayMin, uc.DelayMax)
		}
	}

	// 6. Resumo da rodada
	if final, err := uc.WarmupRepo.FindByDomain(ctx, cfg.Domain); err == nil {
		summary.QuotaRemaining = final.Remaining()
		summary.QuotaExhausted = final.Remaining() == 0
	}

	log.Printf("🏁 [%s] Rodada encerrada: %d enviados, %d falhas, cota restante %d",
		cfg.Domain, summary.Sent, summary.Failed, summary.QuotaRemaining)

	return summary, nil
}

// dispatchOne processa um único lead: gera corpo, grava o outbox em
// pending, envia e fecha a unidade pós-envio. Qualquer erro antes do
// envio deixa o lead intocado — elegível de novo na próxima rodada.
func (uc *DispatchRunUseCase) dispatchOne(ctx context.Context, el *entity.EligibleLead) error {
	cfg := uc.Config

	nextStage := el.Stage + 1
	if nextStage > entity.MaxWarmupStage {
		// O filtro de elegibilidade já barra stage 3; se chegou aqui tem
		// dado inconsistente no banco
		return &DomainError{
			Code:    "STAGE_OVERFLOW",
			Message: fmt.Sprintf("lead %s já está no estágio final (%d)", el.Lead.Email, el.Stage),
		}
	}

	subject := PickSubject(el.Lead)

	body, err := uc.Generator.GenerateBody(ctx, el.Lead)
	if err != nil {
		// Nada foi persistido — lead continua elegível
		return fmt.Errorf("geração de conteúdo: %w", err)
	}

	// Preview mode: NUNCA manda pro lead de verdade
	to := el.Lead.Email
	if uc.Preview {
		to = cfg.PreviewAddress
	}

	emailType := fmt.Sprintf("warmup_%d", nextStage)

	// Outbox: a linha nasce pending ANTES do provedor ser chamado
	send := entity.NewEmailSend(el.Lead.ID, cfg.FromAddress, to, subject, body, emailType)
	if err := uc.SendRepo.Create(ctx, send); err != nil {
		return fmt.Errorf("outbox: %w", err)
	}

	messageID, err := uc.Sender.Send(ctx, mail.Message{
		FromName: cfg.FromName,
		From:     cfg.FromAddress,
		To:       to,
		ReplyTo:  cfg.ReplyTo,
		Subject:  subject,
		TextBody: body,
	})
	if err != nil {
		// Best effort: registra a falha no outbox, mas o erro que importa
		// é o do envio
		if mfErr := uc.SendRepo.MarkFailed(ctx, send.ID, err.Error()); mfErr != nil {
			log.Printf("⚠️ [%s] Falha dupla: envio E outbox de %s: %v", cfg.Domain, el.Lead.Email, mfErr)
		}
		return fmt.Errorf("envio via %s: %w", cfg.SendProvider, err)
	}

	// Pós-envio: o email JÁ SAIU. Daqui pra baixo, falha é estado
	// inconsistente, não retry — por isso a sequência nomeada.
	txn := NewTransaction()

	txn.AddOperation("mark_sent", func(opCtx context.Context) error {
		return uc.SendRepo.MarkSent(opCtx, send.ID, messageID)
	})

	txn.AddOperation("advance_stage", func(opCtx context.Context) error {
		return uc.StatusRepo.AdvanceStage(opCtx, el.StatusID, nextStage, cfg.Warmup.DaysBetweenEmails)
	})

	txn.AddOperation("increment_quota", func(opCtx context.Context) error {
		_, err := uc.WarmupRepo.IncrementSent(opCtx, cfg.Domain)
		if errors.Is(err, entity.ErrQuotaExceeded) {
			// Outro processo consumiu a cota no meio da rodada. O envio
			// já aconteceu; só registramos o over-send.
			log.Printf("⚠️ [%s] Cota estourou durante a rodada (corrida entre processos?)", cfg.Domain)
			return nil
		}
		return err
	})

	if err := txn.Execute(ctx); err != nil {
		log.Printf("🚨 [%s] CRITICAL: email enviado para %s (messageId=%s) mas estado não persistiu: %v",
			cfg.Domain, to, messageID, err)
		return &TechnicalError{
			Code:    "POST_SEND_ERROR",
			Message: "envio feito mas persistência falhou: " + err.Error(),
		}
	}

	return nil
}

// sleep dorme um tempo sorteado em [min, max], mas acorda na hora se o
// ctx for cancelado
func (uc *DispatchRunUseCase) sleep(ctx context.Context, min, max time.Duration) {
	d := min
	if max > min {
		d = min + time.Duration(rand.Int63n(int64(max-min)))
	}
	if d <= 0 {
		return
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

func previewTag(preview bool) string {
	if preview {
		return " [PREVIEW MODE]"
	}
	return ""
}
