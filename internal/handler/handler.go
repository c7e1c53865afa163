package handler

import (
	"context"
	"net/http"

	internal_errors "github.com/itchan-dev/forum-api/internal/errors"
	mw "github.com/itchan-dev/forum-api/internal/middleware"
	"github.com/itchan-dev/forum-api/internal/service"
	"github.com/itchan-dev/forum-api/internal/utils"
)

type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	auth    service.AuthService
	thread  service.ThreadService
	comment service.CommentService
	health  HealthChecker
}

func New(auth service.AuthService, thread service.ThreadService, comment service.CommentService, health HealthChecker) *Handler {
	return &Handler{auth: auth, thread: thread, comment: comment, health: health}
}

// writeError answers with the human readable form of entity validation codes.
func writeError(w http.ResponseWriter, err error) {
	utils.WriteErrorAndStatusCode(w, translate(err))
}

// requireUser writes a 401 and returns nil when the auth middleware did not run.
func requireUser(w http.ResponseWriter, r *http.Request) *mw.User {
	user := mw.GetUserFromContext(r)
	if user == nil {
		writeError(w, internal_errors.Unauthorized("Missing authentication"))
	}
	return user
}
