package health

import (
	"net/http"

	"helpdesk/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler serves the liveness endpoint.
type Handler struct {
	name    string
	version string
}

func NewHandler(name, version string) *Handler {
	return &Handler{name: name, version: version}
}

func (h *Handler) RegisterRoutes(root *gin.RouterGroup) {
	root.GET("/health", h.Check)
}

func (h *Handler) Check(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"status":  "ok",
		"service": h.name,
		"version": h.version,
	})
}
