package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/xavierca1/ligue-outreach/internal/entity"
	"github.com/xavierca1/ligue-outreach/internal/usecase"
)

func TestImportBatchMixedResults(t *testing.T) {
	repo := new(MockLeadRepository)
	handler := NewImportHandler(usecase.NewImportLeadsUseCase(repo))

	repo.On("Upsert", mock.Anything, mock.MatchedBy(func(l *entity.Lead) bool {
		return l.Email == "nova@banda.com"
	})).Return(nil)
	repo.On("Upsert", mock.Anything, mock.MatchedBy(func(l *entity.Lead) bool {
		return l.Email == "repetida@banda.com"
	})).Return(entity.ErrLeadAlreadyExists)

	body := `{"leads":[
		{"email":"nova@banda.com","first_name":"Ana"},
		{"email":"repetida@banda.com","first_name":"Bia"},
		{"email":"","first_name":"Sem Email"}
	]}`
	req := httptest.NewRequest("POST", "/leads/import", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.Handle(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var summary usecase.ImportSummary
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, 3, summary.Received)
	assert.Equal(t, 1, summary.Imported)
	assert.Equal(t, 1, summary.Duplicates)
	assert.Equal(t, 1, summary.Invalid)
}

func TestImportEmptyBatch(t *testing.T) {
	repo := new(MockLeadRepository)
	handler := NewImportHandler(usecase.NewImportLeadsUseCase(repo))

	req := httptest.NewRequest("POST", "/leads/import", strings.NewReader(`{"leads":[]}`))
	w := httptest.NewRecorder()

	handler.Handle(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "EMPTY_BATCH")
}
