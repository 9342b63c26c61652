package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/xavierca1/ligue-outreach/internal/config"
	"github.com/xavierca1/ligue-outreach/internal/infra/database"
	"github.com/xavierca1/ligue-outreach/internal/infra/integration/brevo"
	"github.com/xavierca1/ligue-outreach/internal/infra/integration/openai"
	"github.com/xavierca1/ligue-outreach/internal/infra/integration/resend"
	"github.com/xavierca1/ligue-outreach/internal/infra/mail"
	"github.com/xavierca1/ligue-outreach/internal/usecase"
)

// Disparador one-shot: roda uma rodada da campanha e sai. O agendamento
// fica por conta do cron/systemd timer, não do processo.
func main() {
	godotenv.Load()

	if len(os.Args) < 2 {
		log.Fatalf("uso: dispatcher <campaign-id>  (válidos: %s)",
			strings.Join(config.ValidCampaignIDs(), ", "))
	}
	campaignID := os.Args[1]

	cfg, err := config.LoadCampaign(campaignID)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	preview := os.Getenv("PREVIEW_MODE") == "true"

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Falha ao conectar no Postgres: %v", err)
	}
	defer db.Close()

	// Ctrl+C encerra a rodada entre envios, sem deixar lead pela metade
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	leadRepo := database.NewLeadRepository(db)
	statusRepo := database.NewLeadStatusRepository(db)
	sendRepo := database.NewEmailSendRepository(db)
	warmupRepo := database.NewWarmupRepository(db)

	generator := openai.NewClient(cfg.OpenAIAPIKey, os.Getenv("OPENAI_BASE_URL"), os.Getenv("OPENAI_MODEL"))

	var sender usecase.EmailSenderInterface
	switch cfg.SendProvider {
	case "BREVO":
		sender = brevo.NewClient(cfg.SendAPIKey, os.Getenv("BREVO_BASE_URL"))
	case "RESEND":
		sender = resend.NewClient(cfg.SendAPIKey, os.Getenv("RESEND_BASE_URL"))
	case "SMTP":
		sender = mail.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	default:
		log.Fatalf("❌ Provedor de envio desconhecido: %s", cfg.SendProvider)
	}

	uc := usecase.NewDispatchRunUseCase(
		cfg, leadRepo, statusRepo, sendRepo, warmupRepo, generator, sender, preview,
	)

	if preview {
		log.Printf("👀 PREVIEW MODE: todos os envios vão para %s", cfg.PreviewAddress)
	}
	log.Printf("🚀 Iniciando rodada da campanha '%s' (%s via %s)",
		cfg.ID, cfg.Domain, cfg.SendProvider)

	summary, err := uc.Execute(ctx)
	if err != nil {
		log.Fatalf("❌ Rodada abortada: %v", err)
	}

	log.Printf("✅ Rodada concluída: %d enviados, %d falhas, %d elegíveis (cota restante no início: %d)",
		summary.Sent, summary.Failed, summary.Eligible, summary.QuotaRemaining)
}
