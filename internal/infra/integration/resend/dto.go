package resend

// Formato da API da Resend (POST /emails)

type sendEmailRequest struct {
	From    string   `json:"from"` // "Nome <email@dominio>"
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
}

type sendEmailResponse struct {
	ID string `json:"id"`
}
