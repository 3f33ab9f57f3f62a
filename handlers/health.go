package handlers

import (
	"net/http"

	"bookingbridge/utils"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	monitor *utils.HealthMonitor
}

func NewHealthHandler(monitor *utils.HealthMonitor) *HealthHandler {
	return &HealthHandler{monitor: monitor}
}

// Health reports the latest store health snapshot.
func (h *HealthHandler) Health(c *gin.Context) {
	status := h.monitor.Status()
	code := http.StatusOK
	if !status.Healthy {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
