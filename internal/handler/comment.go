package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/forum-api/internal/domain"
	"github.com/itchan-dev/forum-api/internal/middleware/metrics"
	"github.com/itchan-dev/forum-api/internal/utils"
)

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}

	body, err := utils.DecodePayload(r.Body)
	if err != nil {
		writeError(w, err)
		return
	}
	payload := domain.Payload{
		"content":  body["content"],
		"owner":    user.Id,
		"threadId": chi.URLParam(r, "threadId"),
	}
	utils.SanitizePayload(payload, "content")

	added, err := h.comment.Add(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	metrics.RecordEvent(metrics.EventCommentAdded)
	utils.WriteJSON(w, http.StatusCreated, map[string]any{"addedComment": added})
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}

	err := h.comment.Delete(r.Context(), domain.Payload{
		"commentId": chi.URLParam(r, "commentId"),
		"threadId":  chi.URLParam(r, "threadId"),
		"owner":     user.Id,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	metrics.RecordEvent(metrics.EventCommentDeleted)
	utils.WriteJSON(w, http.StatusOK, nil)
}
