package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/gardenkeeper/internal/common"
)

const healthTimeout = 2 * time.Second

type healthResponse struct {
	Status string `json:"status"`
}

// health reports whether the store answers a ping.
func (s *HTTPServer) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := s.store.Ping(ctx); err != nil {
		s.logger.Warn(r.Context(), "health check failed", "error", err.Error())
		writeJSON(w, http.StatusServiceUnavailable, common.NewStatusError(http.StatusServiceUnavailable, "Service Unavailable"))
		return
	}

	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}
