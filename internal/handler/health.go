package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/itchan-dev/forum-api/internal/logger"
	"github.com/itchan-dev/forum-api/internal/utils"
)

const readyTimeout = 2 * time.Second

type readiness struct {
	Storage   string `json:"storage"`
	LatencyMs int64  `json:"latencyMs"`
}

// Health answers {"status":"success"} while the process serves requests.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, nil)
}

// Ready pings storage. Threads and comments cannot be read or written while it is down.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	start := time.Now()
	if err := h.health.Ping(ctx); err != nil {
		logger.For("handler.ready").Warn("storage ping failed", "error", err)
		utils.WriteFail(w, http.StatusServiceUnavailable, "storage unavailable")
		return
	}
	utils.WriteJSON(w, http.StatusOK, readiness{Storage: "up", LatencyMs: time.Since(start).Milliseconds()})
}
