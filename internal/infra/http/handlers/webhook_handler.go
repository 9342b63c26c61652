package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/xavierca1/ligue-outreach/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-outreach/internal/infra/queue"
)

// Tradução dos nomes de evento de cada provedor pro nosso vocabulário.
// O que não está aqui (delivered, opened, soft_bounce...) é ignorado com 200.
var providerEvents = map[string]string{
	// Brevo
	"hard_bounce":  "hard_bounce",
	"spam":         "complaint",
	"unsubscribed": "unsubscribe",
	// Resend
	"email.bounced":    "hard_bounce",
	"email.complained": "complaint",
}

type WebhookHandler struct {
	Producer queue.QueueProducerInterface
}

func NewWebhookHandler(producer queue.QueueProducerInterface) *WebhookHandler {
	return &WebhookHandler{Producer: producer}
}

// Handle recebe eventos de entrega tanto do Brevo quanto do Resend.
// Os formatos são diferentes, então decodificamos num struct que cobre os dois.
func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var event struct {
		// Formato Brevo (flat)
		Event     string `json:"event"`
		Email     string `json:"email"`
		MessageID string `json:"message-id"`

		// Formato Resend (envelope + data)
		Type string `json:"type"`
		Data struct {
			To      []string `json:"to"`
			EmailID string   `json:"email_id"`
		} `json:"data"`
	}

	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		http.Error(w, "Bad JSON", 400)
		return
	}

	name := event.Event
	email := event.Email
	messageID := event.MessageID
	provider := "brevo"

	if name == "" && event.Type != "" {
		name = event.Type
		provider = "resend"
		messageID = event.Data.EmailID
		if len(event.Data.To) > 0 {
			email = event.Data.To[0]
		}
	}

	reason, known := providerEvents[strings.ToLower(name)]
	if !known {
		// Evento informativo. Responde 200 pro provedor não ficar reenviando.
		w.WriteHeader(200)
		return
	}

	if email == "" {
		log.Printf("⚠️ [WEBHOOK] Evento '%s' sem email, ignorando", name)
		w.WriteHeader(200)
		return
	}

	payload := queue.SuppressionPayload{
		Email:      strings.ToLower(strings.TrimSpace(email)),
		Reason:     reason,
		Provider:   provider,
		MessageID:  messageID,
		OccurredAt: time.Now().UTC(),
		Origin:     "WEBHOOK_" + strings.ToUpper(provider),
	}

	if err := h.Producer.PublishSuppression(r.Context(), payload); err != nil {
		log.Printf("❌ [WEBHOOK] Erro fila: %v", err)
		middleware.RecordIntegrationError("rabbitmq")
		// 500 faz o provedor reenviar o evento depois (retry de graça)
		w.WriteHeader(500)
		return
	}

	middleware.RecordSuppression(reason)
	log.Printf("📨 [WEBHOOK] Evento '%s' de %s enfileirado para %s", reason, provider, payload.Email)
	w.WriteHeader(200)
}
