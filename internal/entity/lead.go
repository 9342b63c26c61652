package entity

import (
	"context"
	"errors"
	"time"
	// IMPORTANTE: NÃO adicione imports de usecase ou infra aqui!
)

var ErrLeadAlreadyExists = errors.New("lead já existe para este email")

// Entidade: Lead
// Criado uma única vez pela extração. Nunca é atualizado nem deletado —
// só o LeadStatus pareado muda depois disso.
type Lead struct {
	ID    string `json:"id"`
	Email string `json:"email"`

	PersonalEmail string `json:"personal_email,omitempty"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name,omitempty"`
	JobTitle      string `json:"job_title,omitempty"`

	CompanyName        string `json:"company_name,omitempty"`
	CompanyWebsite     string `json:"company_website,omitempty"`
	CompanyDescription string `json:"company_description,omitempty"`
	Industry           string `json:"industry,omitempty"`

	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`

	// De qual extração/campanha esse lead veio
	Source    string    `json:"source,omitempty"`
	Campaign  string    `json:"campaign,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// EligibleLead é o join Lead + LeadStatus que o dispatcher consome
type EligibleLead struct {
	Lead     *Lead
	StatusID string
	Status   string
	Stage    int
}

type LeadRepositoryInterface interface {
	// Upsert insere o lead. Se o email já existir, NÃO atualiza nada
	// (preserva o dado first-seen) e retorna ErrLeadAlreadyExists.
	// No sucesso, cria também o lead_status pareado (status=new, stage=0).
	Upsert(ctx context.Context, lead *Lead) error

	// FetchEligible retorna até `limit` leads prontos pra disparo,
	// ordenados por warmup_stage ASC, created_at ASC.
	FetchEligible(ctx context.Context, limit int) ([]*EligibleLead, error)
}
