package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func setRequiredEnvs(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/outreach_test")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("SEND_API_KEY", "key-test")
}

func TestLoadCampaignKnownID(t *testing.T) {
	setRequiredEnvs(t)

	cfg, err := LoadCampaign("liguemusic")

	assert.NoError(t, err)
	assert.Equal(t, "liguemusic.com", cfg.Domain)
	assert.Equal(t, "BREVO", cfg.SendProvider)
	assert.Equal(t, 20, cfg.Warmup.CurrentLimit)
	assert.Equal(t, "key-test", cfg.SendAPIKey)
}

// O id é case-insensitive e tolera espaço — operador digita de tudo
func TestLoadCampaignNormalizesID(t *testing.T) {
	setRequiredEnvs(t)

	cfg, err := LoadCampaign("  LigueMusic ")

	assert.NoError(t, err)
	assert.Equal(t, "liguemusic", cfg.ID)
}

func TestLoadCampaignUnknownID(t *testing.T) {
	setRequiredEnvs(t)

	_, err := LoadCampaign("naoexiste")

	assert.Error(t, err)
	// A mensagem lista os ids válidos pro operador não ter que adivinhar
	assert.Contains(t, err.Error(), "liguemusic")
	assert.Contains(t, err.Error(), "liguestudio")
}

// Credencial por campanha (CAMPAIGN_<ID>_*) ganha da global
func TestLoadCampaignPerCampaignEnvWins(t *testing.T) {
	setRequiredEnvs(t)
	t.Setenv("CAMPAIGN_LIGUEMUSIC_SEND_API_KEY", "key-da-campanha")

	cfg, err := LoadCampaign("liguemusic")

	assert.NoError(t, err)
	assert.Equal(t, "key-da-campanha", cfg.SendAPIKey)
}

func TestLoadCampaignFailsWithoutCredentials(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("SEND_API_KEY", "")

	_, err := LoadCampaign("liguemusic")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestValidCampaignIDsSorted(t *testing.T) {
	ids := ValidCampaignIDs()

	assert.Equal(t, []string{"liguemusic", "liguestudio"}, ids)
}
