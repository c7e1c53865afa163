package handler

import (
	"net/http"

	"github.com/itchan-dev/forum-api/internal/domain"
	"github.com/itchan-dev/forum-api/internal/middleware/metrics"
	"github.com/itchan-dev/forum-api/internal/utils"
)

type credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Register handles POST /users.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	payload, err := utils.DecodePayload(r.Body)
	if err != nil {
		writeError(w, err)
		return
	}

	newUser := domain.Payload{
		"username": payload["username"],
		"password": payload["password"],
		"fullname": payload["fullname"],
	}
	utils.SanitizePayload(newUser, "fullname")

	user, err := h.auth.Register(r.Context(), newUser)
	if err != nil {
		writeError(w, err)
		return
	}

	metrics.RecordEvent(metrics.EventUserRegistered)
	utils.WriteJSON(w, http.StatusCreated, map[string]any{"addedUser": user})
}

// Login handles POST /authentications.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := utils.DecodeValidate(r.Body, &creds); err != nil {
		writeError(w, err)
		return
	}

	token, err := h.auth.Login(r.Context(), creds.Username, creds.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, map[string]string{"accessToken": token})
}
