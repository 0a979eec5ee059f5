package handlers

import (
	"net/http"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/atelier/internal/interfaces"
)

// AssistantHandler handles chat messages aimed at the canvas assistant
type AssistantHandler struct {
	assistant interfaces.AssistantService
	logger    arbor.ILogger
}

// NewAssistantHandler creates a new AssistantHandler
func NewAssistantHandler(assistant interfaces.AssistantService, logger arbor.ILogger) *AssistantHandler {
	return &AssistantHandler{
		assistant: assistant,
		logger:    logger,
	}
}

// MessageHandler handles POST /api/assistant/message
func (h *AssistantHandler) MessageHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	var req interfaces.AssistantRequest
	if !DecodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.assistant.HandleMessage(r.Context(), &req)
	if err != nil {
		if isNotFound(err) {
			WriteError(w, http.StatusNotFound, err.Error())
			return
		}
		h.logger.Error().Err(err).Str("project_id", req.ProjectID).Msg("Assistant message failed")
		WriteError(w, http.StatusInternalServerError, "Failed to handle message")
		return
	}

	WriteJSON(w, http.StatusOK, resp)
}
