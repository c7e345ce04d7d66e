package handlers

import (
	"net/http"

	"slotbook/utils"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	Monitor *utils.HealthMonitor
}

func NewHealthHandler(monitor *utils.HealthMonitor) *HealthHandler {
	return &HealthHandler{Monitor: monitor}
}

// HealthCheckHandler handles GET /health.
func (h *HealthHandler) HealthCheckHandler(c *gin.Context) {
	st := h.Monitor.Status()
	if st.CheckedAt.IsZero() {
		st = h.Monitor.Check(c.Request.Context())
	}

	status, code := "ok", http.StatusOK
	if !st.Healthy {
		status, code = "degraded", http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{
		"status":       status,
		"sessionStore": st.SessionStore,
		"checkedAt":    st.CheckedAt,
	})
}
