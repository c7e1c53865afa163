package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/forum-api/internal/domain"
	"github.com/itchan-dev/forum-api/internal/middleware/metrics"
	"github.com/itchan-dev/forum-api/internal/utils"
)

func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}

	body, err := utils.DecodePayload(r.Body)
	if err != nil {
		writeError(w, err)
		return
	}
	payload := domain.Payload{"title": body["title"], "body": body["body"], "owner": user.Id}
	utils.SanitizePayload(payload, "title", "body")

	added, err := h.thread.Add(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	metrics.RecordEvent(metrics.EventThreadCreated)
	utils.WriteJSON(w, http.StatusCreated, map[string]any{"addedThread": added})
}

func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	threadId := chi.URLParam(r, "threadId")

	thread, err := h.thread.Get(r.Context(), threadId)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{"thread": thread})
}
