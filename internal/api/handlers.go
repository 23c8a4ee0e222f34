package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/hamida-paiman/fraudscore/internal/domain"
	"github.com/hamida-paiman/fraudscore/internal/input"
	"github.com/hamida-paiman/fraudscore/internal/model"
	"github.com/hamida-paiman/fraudscore/internal/scoring"
)

// Handlers groups all HTTP handler methods and their dependencies.
type Handlers struct {
	svc  *scoring.Service
	info model.Info
}

// --- helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[api] encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// --- Score ---

// Score evaluates one transaction submitted as JSON.
func (h *Handlers) Score(w http.ResponseWriter, r *http.Request) {
	var raw domain.RawTransaction
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := input.Validate(raw); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.svc.Evaluate(raw)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// --- GetModelInfo ---

func (h *Handlers) GetModelInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.info)
}

// --- Health ---

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "fraudscore"})
}
