package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateImportLeadValid(t *testing.T) {
	errs := ValidateImportLead(ImportLeadInput{
		Email:          "ana@banda.com",
		FirstName:      "Ana",
		CompanyName:    "Banda X",
		CompanyWebsite: "https://bandax.com",
	})

	assert.Empty(t, errs)
}

func TestValidateImportLeadMissingEmail(t *testing.T) {
	errs := ValidateImportLead(ImportLeadInput{FirstName: "Ana"})

	assert.Len(t, errs, 1)
	assert.Equal(t, "email", errs[0].Field)
}

func TestValidateImportLeadInvalidEmail(t *testing.T) {
	errs := ValidateImportLead(ImportLeadInput{Email: "sem-arroba", FirstName: "Ana"})

	assert.Len(t, errs, 1)
	assert.Equal(t, "email", errs[0].Field)
}

func TestValidateImportLeadInvalidPersonalEmail(t *testing.T) {
	errs := ValidateImportLead(ImportLeadInput{
		Email:         "ana@banda.com",
		PersonalEmail: "tambem-sem-arroba",
		FirstName:     "Ana",
	})

	assert.Len(t, errs, 1)
	assert.Equal(t, "personal_email", errs[0].Field)
}

func TestValidateImportLeadMissingFirstName(t *testing.T) {
	errs := ValidateImportLead(ImportLeadInput{Email: "ana@banda.com"})

	assert.Len(t, errs, 1)
	assert.Equal(t, "first_name", errs[0].Field)
}

func TestValidateImportLeadFieldLimits(t *testing.T) {
	errs := ValidateImportLead(ImportLeadInput{
		Email:       "ana@banda.com",
		FirstName:   strings.Repeat("a", 101),
		CompanyName: strings.Repeat("b", 201),
	})

	assert.Len(t, errs, 2)
}

func TestValidateImportLeadWebsite(t *testing.T) {
	base := ImportLeadInput{Email: "ana@banda.com", FirstName: "Ana"}

	valid := base
	valid.CompanyWebsite = "bandax.com.br"
	assert.Empty(t, ValidateImportLead(valid))

	invalid := base
	invalid.CompanyWebsite = "isso não é um site"
	errs := ValidateImportLead(invalid)
	assert.Len(t, errs, 1)
	assert.Equal(t, "company_website", errs[0].Field)
}
