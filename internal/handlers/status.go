package handlers

import (
	"net/http"
	"time"

	"github.com/sankalp021/intervue/internal/services"

	"github.com/gin-gonic/gin"
)

type StatusHandler struct {
	controller *services.Controller
}

func NewStatusHandler(controller *services.Controller) *StatusHandler {
	return &StatusHandler{controller: controller}
}

// Health is the liveness probe.
func (h *StatusHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// PollHistory returns every archived poll, oldest first.
func (h *StatusHandler) PollHistory(c *gin.Context) {
	c.JSON(http.StatusOK, h.controller.History())
}
