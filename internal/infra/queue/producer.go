package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// SuppressionPayload é o evento que o webhook do provedor vira na fila:
// "para de contatar esse email, e é por isso"
type SuppressionPayload struct {
	Email      string    `json:"email"`
	Reason     string    `json:"reason"` // hard_bounce, complaint, unsubscribe
	Provider   string    `json:"provider"`
	MessageID  string    `json:"message_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
	Origin     string    `json:"origin"` // WEBHOOK_BREVO, WEBHOOK_RESEND
}

type QueueProducerInterface interface {
	PublishSuppression(ctx context.Context, payload SuppressionPayload) error
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) PublishSuppression(ctx context.Context, payload SuppressionPayload) error {

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao converter payload: %v", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName, // ex.outreach
		RoutingKey,   // k.suppression
		false,        // Mandatory
		false,        // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent, // Mensagem salva no disco (segurança!)
		},
	)

	if err != nil {
		return fmt.Errorf("falha ao publicar no RabbitMQ: %v", err)
	}

	return nil
}
