package config

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// WarmupParams controla o ritmo de aquecimento do domínio
type WarmupParams struct {
	CurrentLimit      int // cota diária de hoje
	TargetLimit       int // onde queremos chegar (ajustado manualmente por semana)
	WarmupEmailCount  int // quantos emails tem a sequência (3)
	DaysBetweenEmails int // cooldown por lead entre estágios
}

// SearchParams vem da extração de leads (não usado pelo dispatcher em si,
// mas faz parte da config compartilhada da campanha)
type SearchParams struct {
	Keywords []string
	Location string
}

// CampaignConfig é imutável depois de carregada. Uma campanha = um domínio.
type CampaignConfig struct {
	ID          string
	Domain      string
	FromAddress string
	FromName    string
	ReplyTo     string

	// Provedor de envio: BREVO, RESEND ou SMTP
	SendProvider string

	// Credenciais resolvidas do ambiente no load
	SendAPIKey   string
	OpenAIAPIKey string
	DatabaseURL  string

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string

	// Pra onde vão os envios em preview mode
	PreviewAddress string

	Search SearchParams
	Warmup WarmupParams
}

// campaigns é a tabela estática de campanhas. Credenciais NUNCA aqui —
// só os nomes das envs que as carregam.
var campaigns = map[string]CampaignConfig{
	"liguemusic": {
		ID:           "liguemusic",
		Domain:       "liguemusic.com",
		FromAddress:  "xavier@liguemusic.com",
		FromName:     "Xavier from Ligue Music",
		ReplyTo:      "xavier@liguemusic.com",
		SendProvider: "BREVO",
		Search: SearchParams{
			Keywords: []string{"independent artist", "music manager"},
			Location: "Brazil",
		},
		Warmup: WarmupParams{
			CurrentLimit:      20,
			TargetLimit:       100,
			WarmupEmailCount:  3,
			DaysBetweenEmails: 3,
		},
	},
	"liguestudio": {
		ID:           "liguestudio",
		Domain:       "liguestudio.com",
		FromAddress:  "contato@liguestudio.com",
		FromName:     "Equipe Ligue Studio",
		ReplyTo:      "contato@liguestudio.com",
		SendProvider: "RESEND",
		Search: SearchParams{
			Keywords: []string{"recording studio", "music producer"},
			Location: "São Paulo",
		},
		Warmup: WarmupParams{
			CurrentLimit:      10,
			TargetLimit:       50,
			WarmupEmailCount:  3,
			DaysBetweenEmails: 4,
		},
	},
}

// ValidCampaignIDs lista os ids aceitos, ordenados (pra mensagem de erro)
func ValidCampaignIDs() []string {
	ids := make([]string, 0, len(campaigns))
	for id := range campaigns {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// LoadCampaign resolve a config da campanha + credenciais do ambiente.
// Id desconhecido é erro fatal pro caller — sem credenciais válidas o
// dispatcher não tem o que fazer.
func LoadCampaign(id string) (*CampaignConfig, error) {
	key := strings.ToLower(strings.TrimSpace(id))

	cfg, ok := campaigns[key]
	if !ok {
		return nil, fmt.Errorf(
			"campanha desconhecida %q (válidas: %s)",
			id, strings.Join(ValidCampaignIDs(), ", "),
		)
	}

	// Credenciais: CAMPAIGN_<ID>_* com fallback pra env global
	prefix := "CAMPAIGN_" + strings.ToUpper(key) + "_"
	cfg.SendAPIKey = envOr(prefix+"SEND_API_KEY", os.Getenv("SEND_API_KEY"))
	cfg.OpenAIAPIKey = envOr(prefix+"OPENAI_API_KEY", os.Getenv("OPENAI_API_KEY"))
	cfg.DatabaseURL = envOr(prefix+"DATABASE_URL", os.Getenv("DATABASE_URL"))
	cfg.PreviewAddress = envOr("PREVIEW_ADDRESS", "preview@liguemusic.com")

	cfg.SMTPHost = os.Getenv("MAIL_HOST")
	cfg.SMTPPort = 587
	cfg.SMTPUser = os.Getenv("MAIL_USER")
	cfg.SMTPPass = os.Getenv("MAIL_PASS")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate falha cedo se a config não se sustenta (fail fast no load,
// não no meio da rodada)
func (c *CampaignConfig) validate() error {
	var missing []string

	if c.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if c.OpenAIAPIKey == "" {
		missing = append(missing, "OPENAI_API_KEY")
	}
	switch c.SendProvider {
	case "BREVO", "RESEND":
		if c.SendAPIKey == "" {
			missing = append(missing, "SEND_API_KEY")
		}
	case "SMTP":
		if c.SMTPHost == "" || c.SMTPUser == "" {
			missing = append(missing, "MAIL_HOST/MAIL_USER")
		}
	default:
		return fmt.Errorf("campanha %s: provedor de envio inválido %q", c.ID, c.SendProvider)
	}

	if c.Warmup.CurrentLimit <= 0 {
		return fmt.Errorf("campanha %s: warmup.CurrentLimit deve ser > 0", c.ID)
	}
	if c.Warmup.DaysBetweenEmails <= 0 {
		return fmt.Errorf("campanha %s: warmup.DaysBetweenEmails deve ser > 0", c.ID)
	}

	if len(missing) > 0 {
		return fmt.Errorf("campanha %s: variáveis de ambiente faltando: %s", c.ID, strings.Join(missing, ", "))
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
