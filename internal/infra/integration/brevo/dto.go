package brevo

// Formato da API transacional da Brevo (POST /v3/smtp/email)

type sendEmailRequest struct {
	Sender      emailParty   `json:"sender"`
	To          []emailParty `json:"to"`
	ReplyTo     *emailParty  `json:"replyTo,omitempty"`
	Subject     string       `json:"subject"`
	TextContent string       `json:"textContent"`
}

type emailParty struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

type sendEmailResponse struct {
	MessageID string `json:"messageId"`
}
