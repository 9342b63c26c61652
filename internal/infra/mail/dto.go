package mail

// Message é o contrato neutro do Send Adapter. Cada provedor (Brevo,
// Resend, SMTP) faz o de-para pro formato dele.
type Message struct {
	FromName string
	From     string
	To       string
	ReplyTo  string
	Subject  string
	TextBody string
}

type SMTPSender struct {
	Host     string
	Port     int
	User     string
	Password string
}
