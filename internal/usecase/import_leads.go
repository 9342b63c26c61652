package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

// ImportLeadsUseCase recebe o batch da extração e faz o upsert linha a
// linha. Duplicata não é erro — é o comportamento esperado quando a
// extração roda de novo sobre a mesma busca.
type ImportLeadsUseCase struct {
	LeadRepo entity.LeadRepositoryInterface
}

func NewImportLeadsUseCase(leadRepo entity.LeadRepositoryInterface) *ImportLeadsUseCase {
	return &ImportLeadsUseCase{LeadRepo: leadRepo}
}

func (uc *ImportLeadsUseCase) Execute(ctx context.Context, inputs []ImportLeadInput) (*ImportSummary, error) {
	summary := &ImportSummary{Received: len(inputs)}

	for _, input := range inputs {
		if errs := ValidateImportLead(input); len(errs) > 0 {
			summary.Invalid++
			log.Printf("⚠️ [IMPORT] Linha inválida (%s): %v", input.Email, errs[0])
			continue
		}

		lead := &entity.Lead{
			Email:              strings.ToLower(strings.TrimSpace(input.Email)),
			PersonalEmail:      input.PersonalEmail,
			FirstName:          strings.TrimSpace(input.FirstName),
			LastName:           input.LastName,
			JobTitle:           input.JobTitle,
			CompanyName:        input.CompanyName,
			CompanyWebsite:     input.CompanyWebsite,
			CompanyDescription: input.CompanyDescription,
			Industry:           input.Industry,
			City:               input.City,
			State:              input.State,
			Country:            input.Country,
			Source:             input.Source,
			Campaign:           input.Campaign,
		}

		err := uc.LeadRepo.Upsert(ctx, lead)
		switch {
		case errors.Is(err, entity.ErrLeadAlreadyExists):
			summary.Duplicates++
		case err != nil:
			// Erro de UMA linha não aborta o batch
			summary.Errors++
			log.Printf("❌ [IMPORT] Falha ao salvar %s: %v", lead.Email, err)
		default:
			summary.Imported++
		}
	}

	log.Printf("📥 [IMPORT] Batch processado: %d recebidos, %d novos, %d duplicados, %d inválidos, %d erros",
		summary.Received, summary.Imported, summary.Duplicates, summary.Invalid, summary.Errors)

	return summary, nil
}
