package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/taxpadi/tax-service/internal/models"
	"github.com/taxpadi/tax-service/internal/repository"
	"github.com/taxpadi/tax-service/internal/service"
)

const maxChatMessageLen = 2000

// Handler exposes the HTTP endpoints.
type Handler struct {
	svc     *service.Service
	monitor *service.HealthMonitor
	log     *logrus.Logger
}

// NewHandler initializes a new handler.
func NewHandler(svc *service.Service, monitor *service.HealthMonitor, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, monitor: monitor, log: log}
}

// Calculate handles a compute request. The engine runs only on input
// that passed validation; a store failure still returns the result.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	var body calculationRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: all amounts must be numbers")
		return
	}

	input, err := body.validate()
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, h.svc.Calculate(r.Context(), input))
}

// GetCalculation handles retrieval of a stored calculation by id.
func (h *Handler) GetCalculation(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if strings.TrimSpace(id) == "" {
		respondError(w, http.StatusBadRequest, "calculation id is required")
		return
	}

	result, err := h.svc.Retrieve(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		respondError(w, http.StatusNotFound, "calculation not found or expired")
		return
	}
	if err != nil {
		h.log.Errorf("Failed to retrieve calculation %s: %v", id, err)
		respondError(w, http.StatusInternalServerError, "failed to retrieve calculation")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Chat handles a conversational tax question.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		respondError(w, http.StatusBadRequest, "message is required")
		return
	}
	if len(req.Message) > maxChatMessageLen {
		respondError(w, http.StatusBadRequest, "message is too long")
		return
	}

	resp, err := h.svc.Chat(r.Context(), req)
	if errors.Is(err, service.ErrChatUnavailable) {
		respondError(w, http.StatusServiceUnavailable, "chat is not available")
		return
	}
	if err != nil {
		h.log.Errorf("Chat request failed: %v", err)
		respondError(w, http.StatusBadGateway, "failed to answer the question")
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// Health reports liveness and store reachability.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	store := "down"
	if h.monitor.StoreUp() {
		store = "up"
	}
	respondJSON(w, http.StatusOK, models.HealthResponse{Status: "ok", Store: store})
}
