package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	start time.Time
	ping  func(ctx context.Context) error
}

func NewHealthHandler(ping func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{start: time.Now(), ping: ping}
}

// Check reports store connectivity as mongoState (1 connected, 0 otherwise)
// and process uptime in seconds.
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	state := 1
	if err := h.ping(ctx); err != nil {
		state = 0
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":         state == 1,
		"mongoState": state,
		"uptime":     time.Since(h.start).Seconds(),
	})
}
