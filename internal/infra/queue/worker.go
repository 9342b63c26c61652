package queue

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// LeadSuppressor define o contrato do caso de uso que o worker aciona
type LeadSuppressor interface {
	Execute(ctx context.Context, email, reason string) error
}

type Worker struct {
	Channel    *amqp.Channel
	Suppressor LeadSuppressor
	// Sem acesso direto ao Banco: quem decide o que fazer é o caso de uso. 🚀
}

func NewWorker(ch *amqp.Channel, suppressor LeadSuppressor) *Worker {
	return &Worker{
		Channel:    ch,
		Suppressor: suppressor,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName, // fila
		"",        // consumer
		false,     // auto-ack (manual é mais seguro)
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	if err != nil {
		log.Fatalf("❌ Falha ao registrar consumidor RabbitMQ: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			log.Printf("📥 [WORKER] Mensagem Recebida do RabbitMQ")

			var payload SuppressionPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] JSON Inválido: %s", err)
				// Mensagem podre (malformada). Rejeita sem requeue para não travar a fila.
				d.Nack(false, false)
				continue
			}

			log.Printf("⚙️ [WORKER] Processando supressão de: %s (motivo: %s, origem: %s)",
				payload.Email, payload.Reason, payload.Origin)

			if err := w.Suppressor.Execute(context.Background(), payload.Email, payload.Reason); err != nil {
				log.Printf("❌ [WORKER] Erro ao suprimir lead: %s", err)

				// Erro de banco é transitório na maioria das vezes, mas requeue infinito
				// trava a fila. Manda pra DLQ e segue o baile.
				d.Nack(false, false)
			} else {
				log.Printf("✅ [WORKER] Lead %s suprimido (%s).", payload.Email, payload.Reason)
				d.Ack(false) // Confirma o sucesso e remove da fila
			}
		}
	}()

	log.Printf(" [*] Worker rodando e aguardando na fila '%s'", queueName)
	<-forever
}
