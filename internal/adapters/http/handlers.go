package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pion/webrtc/v4"
	"github.com/rs/zerolog/log"

	"github.com/VedSharma9644/Omegle-clone/internal/app/orch"
)

const statsTimeout = 2 * time.Second

type handlers struct {
	orch *orch.Orchestrator
	ice  webrtc.Configuration
}

type HealthResponse struct {
	Status string `json:"status"`
}

type ICEResponse struct {
	ICEServers []webrtc.ICEServer `json:"iceServers"`
}

func (h *handlers) health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

func (h *handlers) stats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), statsTimeout)
	defer cancel()

	stats, err := h.orch.Stats(ctx)
	if err != nil {
		log.Error().Err(err).Str("module", "adapters.http").Msg("stats")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *handlers) iceServers(c *gin.Context) {
	c.JSON(http.StatusOK, ICEResponse{ICEServers: h.ice.ICEServers})
}
