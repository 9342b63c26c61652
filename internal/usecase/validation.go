package usecase

import (
	"fmt"
	"net/mail"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateImportLead valida uma linha da extração antes de persistir.
// Lead sem email válido não serve pra nada nesse pipeline.
func ValidateImportLead(input ImportLeadInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if input.PersonalEmail != "" {
		if _, err := mail.ParseAddress(input.PersonalEmail); err != nil {
			errors = append(errors, ValidationError{"personal_email", "is invalid"})
		}
	}

	if strings.TrimSpace(input.FirstName) == "" {
		errors = append(errors, ValidationError{"first_name", "is required"})
	} else if len(input.FirstName) > 100 {
		errors = append(errors, ValidationError{"first_name", "must not exceed 100 characters"})
	}

	if len(input.CompanyName) > 200 {
		errors = append(errors, ValidationError{"company_name", "must not exceed 200 characters"})
	}

	if input.CompanyWebsite != "" && !isValidWebsite(input.CompanyWebsite) {
		errors = append(errors, ValidationError{"company_website", "must be a valid URL or domain"})
	}

	return errors
}

func isValidWebsite(site string) bool {
	s := strings.TrimSpace(site)
	if s == "" {
		return false
	}
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")

	// Precisa ter pelo menos um ponto e nenhum espaço (dominio.com)
	return strings.Contains(s, ".") && !strings.Contains(s, " ")
}
