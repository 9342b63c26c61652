package resend

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

const DefaultBaseURL = "https://api.resend.com"

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

// Send envia pela Resend e devolve o id da mensagem (com fallback
// resend_<timestamp> se vier vazio)
func (c *Client) Send(ctx context.Context, msg mail.Message) (string, error) {
	url := fmt.Sprintf("%s/emails", c.baseURL)

	from := msg.From
	if msg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", msg.FromName, msg.From)
	}

	payload := sendEmailRequest{
		From:    from,
		To:      []string{msg.To},
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		Text:    msg.TextBody,
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("erro ao marshal email resend: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("erro request resend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		fmt.Printf("❌ ERRO ENVIO RESEND (Status %d): %s\n", resp.StatusCode, string(body))
		return "", fmt.Errorf("api resend rejeitou (status %d)", resp.StatusCode)
	}

	var response sendEmailResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("erro decode resend: %w", err)
	}

	if response.ID == "" {
		return fmt.Sprintf("resend_%d", time.Now().UnixMilli()), nil
	}
	return response.ID, nil
}
