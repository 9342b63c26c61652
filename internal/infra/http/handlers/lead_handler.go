package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)


type LeadHandler struct {
	leadRepo    entity.LeadRepositoryInterface
	rateLimiter *RateLimiter
}


func NewLeadHandler(leadRepo entity.LeadRepositoryInterface) *LeadHandler {
	return &LeadHandler{
		leadRepo:    leadRepo,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 req/min por IP
	}
}


type CaptureLeadRequest struct {
	Email          string `json:"email"`
	PersonalEmail  string `json:"personal_email,omitempty"`
	FirstName      string `json:"first_name,omitempty"`
	LastName       string `json:"last_name,omitempty"`
	JobTitle       string `json:"job_title,omitempty"`
	CompanyName    string `json:"company_name,omitempty"`
	CompanyWebsite string `json:"company_website,omitempty"`
	Industry       string `json:"industry,omitempty"`
	City           string `json:"city,omitempty"`
	State          string `json:"state,omitempty"`
	Country        string `json:"country,omitempty"`
	Source         string `json:"source,omitempty"`
	Campaign       string `json:"campaign,omitempty"`
}


type CaptureLeadResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}


func (h *LeadHandler) CaptureLead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()


	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(CaptureLeadResponse{
			Success: false,
			Message: "Too many requests. Please try again later.",
		})
		return
	}


	var req CaptureLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(CaptureLeadResponse{
			Success: false,
			Message: "Invalid JSON",
		})
		return
	}


	if req.Email == "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(CaptureLeadResponse{
			Success: false,
			Message: "Email is required",
		})
		return
	}


	lead := &entity.Lead{
		Email:          req.Email,
		PersonalEmail:  req.PersonalEmail,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		JobTitle:       req.JobTitle,
		CompanyName:    req.CompanyName,
		CompanyWebsite: req.CompanyWebsite,
		Industry:       req.Industry,
		City:           req.City,
		State:          req.State,
		Country:        req.Country,
		Source:         req.Source,
		Campaign:       req.Campaign,
	}

	if err := h.leadRepo.Upsert(ctx, lead); err != nil {
		if errors.Is(err, entity.ErrLeadAlreadyExists) {
			// Upsert idempotente: lead repetido não é erro pro chamador
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(CaptureLeadResponse{
				Success: true,
				Message: "Lead already registered",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(CaptureLeadResponse{
			Success: false,
			Message: "Failed to capture lead",
		})
		return
	}


	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(CaptureLeadResponse{
		Success: true,
	})
}


func getClientIP(r *http.Request) string {

	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	return r.RemoteAddr
}


type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
}

type visitor struct {
	count     int
	lastReset time.Time
}


func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
	}

	go rl.cleanup()
	return rl
}


func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	now := time.Now()

	if !exists {
		rl.visitors[ip] = &visitor{count: 1, lastReset: now}
		return true
	}


	if now.Sub(v.lastReset) > rl.window {
		v.count = 1
		v.lastReset = now
		return true
	}


	v.count++
	return v.count <= rl.limit
}


func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, v := range rl.visitors {
			if now.Sub(v.lastReset) > rl.window*2 {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}
