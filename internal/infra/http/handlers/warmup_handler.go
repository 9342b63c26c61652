package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/xavierca1/ligue-outreach/internal/entity"
	"github.com/xavierca1/ligue-outreach/internal/infra/http/middleware"
)

type WarmupHandler struct {
	WarmupRepo entity.WarmupRepositoryInterface
}

func NewWarmupHandler(warmupRepo entity.WarmupRepositoryInterface) *WarmupHandler {
	return &WarmupHandler{WarmupRepo: warmupRepo}
}

type WarmupStatusResponse struct {
	Domain     string `json:"domain"`
	DailyLimit int    `json:"daily_limit"`
	SentToday  int    `json:"sent_today"`
	Remaining  int    `json:"remaining"`
	WarmupDay  int    `json:"warmup_day"`
	WarmupWeek int    `json:"warmup_week"`
	LastReset  string `json:"last_reset"`
}

// GetStatusHandler (GET /warmup/status/{domain}) mostra onde o domínio está
// no aquecimento: quanto já saiu hoje e quanto ainda cabe.
func (h *WarmupHandler) GetStatusHandler(w http.ResponseWriter, r *http.Request) {
	domain := chi.URLParam(r, "domain")
	if domain == "" {
		writeErrorResponse(w, http.StatusBadRequest, "MISSING_DOMAIN", "domain is required")
		return
	}

	cfg, err := h.WarmupRepo.FindByDomain(r.Context(), domain)
	if err != nil {
		if errors.Is(err, entity.ErrWarmupConfigNotFound) {
			writeErrorResponse(w, http.StatusNotFound, "DOMAIN_NOT_FOUND", "nenhum aquecimento registrado para esse domínio")
			return
		}
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "erro ao consultar aquecimento")
		return
	}

	middleware.SetQuotaRemaining(cfg.Domain, cfg.Remaining())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(WarmupStatusResponse{
		Domain:     cfg.Domain,
		DailyLimit: cfg.DailyLimit,
		SentToday:  cfg.SentToday,
		Remaining:  cfg.Remaining(),
		WarmupDay:  cfg.WarmupDay,
		WarmupWeek: cfg.WarmupWeek,
		LastReset:  cfg.LastReset.Format(time.DateOnly),
	})
}
