package usecase

import (
	"math/rand"
	"strings"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

// SubjectPool é o pool fixo de templates de assunto. Placeholders:
// {first_name} e {company}. A escolha é uniforme-aleatória por envio —
// assunto repetido demais é red flag pros filtros de spam.
var SubjectPool = []string{
	"{first_name}, adorei o trabalho da {company}",
	"pergunta rápida, {first_name}",
	"{first_name} — vi o que vocês estão fazendo na {company}",
	"admirando o trabalho da {company}",
	"oi {first_name}, posso te falar uma coisa?",
	"{company} chamou minha atenção",
}

// PickSubject sorteia e interpola um assunto pro lead
func PickSubject(lead *entity.Lead) string {
	tmpl := SubjectPool[rand.Intn(len(SubjectPool))]
	return RenderSubject(tmpl, lead)
}

// RenderSubject interpola um template do pool. Se o lead não tem
// empresa, cai num assunto que funciona sem ela.
func RenderSubject(tmpl string, lead *entity.Lead) string {
	company := lead.CompanyName
	if company == "" && strings.Contains(tmpl, "{company}") {
		tmpl = "pergunta rápida, {first_name}"
		company = ""
	}

	r := strings.NewReplacer(
		"{first_name}", lead.FirstName,
		"{company}", company,
	)
	return r.Replace(tmpl)
}
