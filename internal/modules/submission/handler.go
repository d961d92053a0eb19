package submission

import (
	"errors"
	"log"
	"net/http"

	"helpdesk/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler manages the HTTP surface of the submission pipeline.
type Handler struct {
	service *Service
}

// NewHandler creates a submission handler with injected service.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/submit", h.Submit)
}

// Submit relays a helpdesk query as a formatted email.
// @Summary		Submit a helpdesk query
// @Description	Accepts the multi-step form payload (all four field groups plus the query section), picks the group matching typeOfUser and relays it to the helpdesk address as an HTML email. One dispatch attempt per request.
// @Tags		Submission
// @Param		request	body	Request	true	"Form payload: typeOfUser plus the AP, Student, other and Query groups"
// @Success		200	{object}	map[string]interface{} "Email sent successfully"
// @Failure		400	{object}	map[string]interface{} "Invalid user type, missing detail group or unparseable body"
// @Failure		500	{object}	map[string]interface{} "Relay failure or internal error"
// @Router		/api/submit [POST]
func (h *Handler) Submit(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		// Treated as a client bug or probe: reject without partial
		// processing, never echo parser detail.
		log.Printf("submission_malformed request_id=%s error=%v", c.GetString("request_id"), err)
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.service.Submit(c.Request.Context(), req)
	switch {
	case err == nil:
		response.Message(c, http.StatusOK, "Email sent successfully")
	case errors.Is(err, ErrInvalidUserType):
		response.Error(c, http.StatusBadRequest, "Invalid user type")
	case errors.Is(err, ErrDetailsMissing):
		response.Error(c, http.StatusBadRequest, "User details missing")
	default:
		// Full detail stays in the server log; the client gets the
		// generic body only.
		log.Printf("submission_failed request_id=%s error=%v", c.GetString("request_id"), err)
		response.Message(c, http.StatusInternalServerError, "Internal server error")
	}
}
