package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/xavierca1/ligue-outreach/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

// Upsert insere o lead com ON CONFLICT DO NOTHING: duplicata não atualiza
// nada (first-seen vence). Lead e lead_status nascem juntos na mesma
// transação — ou os dois existem, ou nenhum.
func (r *LeadRepository) Upsert(ctx context.Context, lead *entity.Lead) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("erro ao abrir transação: %w", err)
	}
	defer tx.Rollback()

	if lead.ID == "" {
		lead.ID = uuid.New().String()
	}
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = time.Now()
	}

	insertLead := `
		INSERT INTO leads (
			id, email, personal_email, first_name, last_name, job_title,
			company_name, company_website, company_description, industry,
			city, state, country, source, campaign, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (email) DO NOTHING
		RETURNING id
	`

	var insertedID string
	err = tx.QueryRowContext(ctx, insertLead,
		lead.ID,
		lead.Email,
		nullString(lead.PersonalEmail),
		lead.FirstName,
		nullString(lead.LastName),
		nullString(lead.JobTitle),
		nullString(lead.CompanyName),
		nullString(lead.CompanyWebsite),
		nullString(lead.CompanyDescription),
		nullString(lead.Industry),
		nullString(lead.City),
		nullString(lead.State),
		nullString(lead.Country),
		nullString(lead.Source),
		nullString(lead.Campaign),
		lead.CreatedAt,
	).Scan(&insertedID)

	if err == sql.ErrNoRows {
		// Conflito de email: o DO NOTHING não retorna linha.
		// Sinaliza "duplicado, pulei" sem tocar no registro existente.
		return entity.ErrLeadAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("erro ao inserir lead: %w", err)
	}

	insertStatus := `
		INSERT INTO lead_status (id, lead_id, status, warmup_stage, emails_sent, created_at, updated_at)
		VALUES ($1, $2, 'new', 0, 0, NOW(), NOW())
	`
	if _, err := tx.ExecContext(ctx, insertStatus, uuid.New().String(), insertedID); err != nil {
		return fmt.Errorf("erro ao criar lead_status pareado: %w", err)
	}

	return tx.Commit()
}

// FetchEligible é a query de elegibilidade do dispatcher:
// status ∈ {new, warming}, stage < 3, cooldown vencido (ou nulo).
// Ordem: estágio mais baixo primeiro, depois o mais antigo — garante
// progresso no funil em vez de sempre pegar lead novo.
func (r *LeadRepository) FetchEligible(ctx context.Context, limit int) ([]*entity.EligibleLead, error) {
	query := `
		SELECT
			l.id, l.email, l.first_name, COALESCE(l.last_name, ''),
			COALESCE(l.job_title, ''), COALESCE(l.company_name, ''),
			COALESCE(l.company_description, ''), COALESCE(l.industry, ''),
			COALESCE(l.city, ''), COALESCE(l.country, ''),
			l.created_at,
			s.id, s.status, s.warmup_stage
		FROM leads l
		JOIN lead_status s ON s.lead_id = l.id
		WHERE s.status IN ('new', 'warming')
		  AND s.warmup_stage < $1
		  AND (s.next_email_at IS NULL OR s.next_email_at <= NOW())
		ORDER BY s.warmup_stage ASC, l.created_at ASC
		LIMIT $2
	`

	rows, err := r.DB.QueryContext(ctx, query, entity.MaxWarmupStage, limit)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar leads elegíveis: %w", err)
	}
	defer rows.Close()

	var result []*entity.EligibleLead
	for rows.Next() {
		lead := &entity.Lead{}
		el := &entity.EligibleLead{Lead: lead}

		if err := rows.Scan(
			&lead.ID, &lead.Email, &lead.FirstName, &lead.LastName,
			&lead.JobTitle, &lead.CompanyName,
			&lead.CompanyDescription, &lead.Industry,
			&lead.City, &lead.Country,
			&lead.CreatedAt,
			&el.StatusID, &el.Status, &el.Stage,
		); err != nil {
			return nil, err
		}
		result = append(result, el)
	}

	return result, rows.Err()
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
