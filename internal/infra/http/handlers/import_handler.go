package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xavierca1/ligue-outreach/internal/usecase"
)

type ImportHandler struct {
	ImportLeadsUC *usecase.ImportLeadsUseCase
}

func NewImportHandler(uc *usecase.ImportLeadsUseCase) *ImportHandler {
	return &ImportHandler{ImportLeadsUC: uc}
}

// Handle (POST /leads/import) recebe o lote que o extrator de leads gerou.
// Linha ruim não derruba o lote: o resumo diz quantas entraram e quantas não.
func (h *ImportHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Leads []usecase.ImportLeadInput `json:"leads"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	if len(input.Leads) == 0 {
		writeErrorResponse(w, http.StatusBadRequest, "EMPTY_BATCH", "lote vazio: nenhum lead para importar")
		return
	}

	summary, err := h.ImportLeadsUC.Execute(r.Context(), input.Leads)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "IMPORT_ERROR", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(summary)
}
