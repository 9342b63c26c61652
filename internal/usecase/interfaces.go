package usecase

import (
	"context"

	"github.com/xavierca1/ligue-outreach/internal/entity"
	"github.com/xavierca1/ligue-outreach/internal/infra/mail"
)

// ContentGenerator é o adapter de geração de corpo (OpenAI por trás)
type ContentGenerator interface {
	GenerateBody(ctx context.Context, lead *entity.Lead) (string, error)
}

// EmailSenderInterface é o Send Adapter: Brevo, Resend ou SMTP,
// todos devolvem um messageId opaco
type EmailSenderInterface interface {
	Send(ctx context.Context, msg mail.Message) (string, error)
}
