package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/xavierca1/ligue-outreach/internal/infra/integration/brevo"
	"github.com/xavierca1/ligue-outreach/internal/infra/mail"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  Aviso: arquivo .env não encontrado, usando variáveis de ambiente do sistema")
	}

	if os.Getenv("BREVO_API_KEY") == "" {
		log.Fatal("❌ BREVO_API_KEY deve estar configurado no .env")
	}

	to := os.Getenv("TEST_TO_ADDRESS")
	if to == "" {
		log.Fatal("❌ TEST_TO_ADDRESS deve apontar pra uma caixa SUA (nunca um lead real)")
	}

	client := brevo.NewClient(os.Getenv("BREVO_API_KEY"), "")

	msg := mail.Message{
		FromName: "Xavier from Ligue Music",
		From:     "xavier@liguemusic.com",
		To:       to,
		ReplyTo:  "xavier@liguemusic.com",
		Subject:  "teste de integração brevo",
		TextBody: "Oi! Esse é um envio de teste do pipeline de warmup. Pode ignorar.",
	}

	fmt.Println("🔄 Enviando email de teste via Brevo...")
	fmt.Printf("📋 Dados:\n")
	fmt.Printf("   De: %s <%s>\n", msg.FromName, msg.From)
	fmt.Printf("   Para: %s\n", msg.To)
	fmt.Printf("   Assunto: %s\n\n", msg.Subject)

	messageID, err := client.Send(context.Background(), msg)
	if err != nil {
		log.Fatalf("Erro ao enviar via Brevo: %v", err)
	}

	fmt.Printf("Email enviado com sucesso! \n")
	fmt.Printf(" Message ID: %s\n", messageID)
}
