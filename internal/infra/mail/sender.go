package mail

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

func NewSMTPSender(host string, port int, user, password string) *SMTPSender {
	return &SMTPSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
	}
}

// Send entrega via SMTP puro. Não tem messageId de provedor aqui, então
// sintetizamos um (smtp_<timestamp>) pra manter o contrato do adapter.
// O ctx é aceito pra cumprir a interface — gomail não suporta cancelamento
// no meio do DialAndSend.
func (s *SMTPSender) Send(_ context.Context, msg Message) (string, error) {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", msg.From, msg.FromName)
	m.SetHeader("To", msg.To)
	if msg.ReplyTo != "" {
		m.SetHeader("Reply-To", msg.ReplyTo)
	}
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.TextBody)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return "", fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}

	return fmt.Sprintf("smtp_%d", time.Now().UnixMilli()), nil
}
