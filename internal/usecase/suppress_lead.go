package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

// Motivos de supressão que aceitamos do webhook do provedor. Soft bounce
// fica de fora de propósito: caixa cheia hoje não quer dizer nada amanhã.
var suppressReasons = map[string]bool{
	"hard_bounce": true,
	"complaint":   true,
	"unsubscribe": true,
}

// SuppressLeadUseCase marca o lead como suprimido — estado terminal.
// Consome os eventos que o webhook publica na fila.
type SuppressLeadUseCase struct {
	StatusRepo entity.LeadStatusRepositoryInterface
}

func NewSuppressLeadUseCase(statusRepo entity.LeadStatusRepositoryInterface) *SuppressLeadUseCase {
	return &SuppressLeadUseCase{StatusRepo: statusRepo}
}

func (uc *SuppressLeadUseCase) Execute(ctx context.Context, email, reason string) error {
	if email == "" {
		return &DomainError{
			Code:    "MISSING_EMAIL",
			Message: "evento de supressão sem email",
		}
	}

	if !suppressReasons[reason] {
		// Evento que não suprime (soft bounce, delivered etc) — só loga
		log.Printf("ℹ️ [SUPPRESS] Ignorando evento '%s' para %s", reason, email)
		return nil
	}

	if err := uc.StatusRepo.Suppress(ctx, email, reason); err != nil {
		return fmt.Errorf("falha ao suprimir %s: %w", email, err)
	}

	return nil
}
