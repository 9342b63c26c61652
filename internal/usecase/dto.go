package usecase

// DispatchSummary é o resultado de uma rodada de disparo — o que vai
// pro log de resumo e pro operador
type DispatchSummary struct {
	CampaignID     string `json:"campaign_id"`
	Domain         string `json:"domain"`
	QuotaRemaining int    `json:"quota_remaining"` // cota que sobrou DEPOIS da rodada
	Eligible       int    `json:"eligible"`        // leads buscados (≤ remaining no início)
	Sent           int    `json:"sent"`
	Failed         int    `json:"failed"`
	QuotaExhausted bool   `json:"quota_exhausted"` // rodada terminou sem cota (estado normal, não erro)
	Preview        bool   `json:"preview"`
}

// ImportLeadInput é uma linha vinda da extração (Apify etc)
type ImportLeadInput struct {
	Email              string `json:"email"`
	PersonalEmail      string `json:"personal_email,omitempty"`
	FirstName          string `json:"first_name"`
	LastName           string `json:"last_name,omitempty"`
	JobTitle           string `json:"job_title,omitempty"`
	CompanyName        string `json:"company_name,omitempty"`
	CompanyWebsite     string `json:"company_website,omitempty"`
	CompanyDescription string `json:"company_description,omitempty"`
	Industry           string `json:"industry,omitempty"`
	City               string `json:"city,omitempty"`
	State              string `json:"state,omitempty"`
	Country            string `json:"country,omitempty"`
	Source             string `json:"source,omitempty"`
	Campaign           string `json:"campaign,omitempty"`
}

// ImportSummary responde o batch de importação
type ImportSummary struct {
	Received   int `json:"received"`
	Imported   int `json:"imported"`
	Duplicates int `json:"duplicates"`
	Invalid    int `json:"invalid"`
	Errors     int `json:"errors"`
}
