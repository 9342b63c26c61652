package brevo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/xavierca1/ligue-outreach/internal/infra/mail"
)

const DefaultBaseURL = "https://api.brevo.com/v3"

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Send envia o email transacional e devolve o messageId da Brevo.
// Se a API não mandar id (já aconteceu), sintetiza um fallback pra não
// deixar null chegar no banco.
func (c *Client) Send(ctx context.Context, msg mail.Message) (string, error) {
	url := fmt.Sprintf("%s/smtp/email", c.baseURL)

	payload := sendEmailRequest{
		Sender:      emailParty{Name: msg.FromName, Email: msg.From},
		To:          []emailParty{{Email: msg.To}},
		Subject:     msg.Subject,
		TextContent: msg.TextBody,
	}
	if msg.ReplyTo != "" {
		payload.ReplyTo = &emailParty{Email: msg.ReplyTo}
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("erro ao marshal email brevo: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("erro request brevo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		fmt.Printf("❌ ERRO ENVIO BREVO (Status %d): %s\n", resp.StatusCode, string(body))
		return "", fmt.Errorf("api brevo rejeitou (status %d)", resp.StatusCode)
	}

	var response sendEmailResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("erro decode brevo: %w", err)
	}

	if response.MessageID == "" {
		return fmt.Sprintf("brevo_%d", time.Now().UnixMilli()), nil
	}
	return response.MessageID, nil
}

// setHeaders centraliza os headers obrigatórios
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "LigueOutreach/1.0")
}
