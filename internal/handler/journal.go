package handler

import (
	"log/slog"
	"net/http"

	journalModels "nextstep/internal/domain/models/journal"
	journalSvc "nextstep/internal/domain/services/journal"
	"nextstep/internal/httputil"
)

// JournalHandler handles AI journal chat requests
type JournalHandler struct {
	relay  journalSvc.RelayService
	logger *slog.Logger
}

// NewJournalHandler creates a new journal handler
func NewJournalHandler(relay journalSvc.RelayService, logger *slog.Logger) *JournalHandler {
	return &JournalHandler{
		relay:  relay,
		logger: logger,
	}
}

type chatRequest struct {
	Messages    []journalModels.Message `json:"messages"`
	JournalMode string                  `json:"journalMode"`
}

type chatResponse struct {
	Message string              `json:"message"`
	Usage   journalModels.Usage `json:"usage"`
}

// Chat relays a conversation transcript to the completion provider
// POST /api/chat
func (h *JournalHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	res, err := h.relay.Relay(r.Context(), &journalSvc.RelayRequest{
		Messages: req.Messages,
		Mode:     req.JournalMode,
	})
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, chatResponse{
		Message: res.Message,
		Usage:   res.Usage,
	})
}

// HealthCheck reports liveness
// GET /health
func (h *JournalHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
