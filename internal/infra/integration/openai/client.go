package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

const DefaultBaseURL = "https://api.openai.com/v1"

type Client struct {
	baseURL string
	apiKey  string
	model   string
	http    *http.Client
}

func NewClient(apiKey, baseURL, model string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		// Timeout firme: uma chamada pendurada não pode travar a rodada
		// inteira — o lead é pulado e tentado de novo na próxima.
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

// GenerateBody monta o prompt com os dados do lead e devolve o corpo
// personalizado. Sem cache: o volume é limitado pela cota diária, então
// regerar a cada rodada sai barato.
func (c *Client) GenerateBody(ctx context.Context, lead *entity.Lead) (string, error) {
	url := fmt.Sprintf("%s/chat/completions", c.baseURL)

	payload := chatCompletionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{
				Role: "system",
				Content: "Você escreve mensagens curtas e genuínas de networking. " +
					"Máximo 60 palavras. Sem links, sem HTML, sem linguagem de vendas. " +
					"Tom de admiração sincera pelo trabalho da pessoa.",
			},
			{
				Role:    "user",
				Content: buildLeadPrompt(lead),
			},
		},
		MaxTokens:   200,
		Temperature: 0.8,
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("erro ao marshal chat completion: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("erro request openai: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		fmt.Printf("❌ ERRO OPENAI (Status %d): %s\n", resp.StatusCode, string(body))
		return "", fmt.Errorf("api openai rejeitou (status %d)", resp.StatusCode)
	}

	var response chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("erro decode openai: %w", err)
	}

	if response.Error != nil {
		return "", fmt.Errorf("openai: %s", response.Error.Message)
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("openai devolveu resposta sem choices")
	}

	body := strings.TrimSpace(response.Choices[0].Message.Content)
	if body == "" {
		return "", fmt.Errorf("openai devolveu corpo vazio")
	}
	return body, nil
}

// buildLeadPrompt embute nome, cargo, empresa, indústria e localização
func buildLeadPrompt(lead *entity.Lead) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Escreva uma mensagem personalizada para %s", lead.FirstName)
	if lead.JobTitle != "" {
		fmt.Fprintf(&b, ", que trabalha como %s", lead.JobTitle)
	}
	if lead.CompanyName != "" {
		fmt.Fprintf(&b, " na %s", lead.CompanyName)
	}
	if lead.Industry != "" {
		fmt.Fprintf(&b, " (setor: %s)", lead.Industry)
	}
	if loc := joinLocation(lead.City, lead.Country); loc != "" {
		fmt.Fprintf(&b, ", em %s", loc)
	}
	b.WriteString(".")

	if lead.CompanyDescription != "" {
		fmt.Fprintf(&b, " Sobre a empresa: %s.", lead.CompanyDescription)
	}

	return b.String()
}

func joinLocation(city, country string) string {
	switch {
	case city != "" && country != "":
		return city + ", " + country
	case city != "":
		return city
	default:
		return country
	}
}
