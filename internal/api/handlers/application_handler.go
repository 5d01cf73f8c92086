package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/zhiren/talenthub/internal/models"
	"github.com/zhiren/talenthub/internal/services"
	"github.com/zhiren/talenthub/internal/utils"
)

type ApplicationHandler struct {
	svc services.ApplicationService
}

func NewApplicationHandler(svc services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{svc: svc}
}

func (h *ApplicationHandler) List(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	rows, err := h.svc.List(c.Request.Context(), c.Query("status"), c.Query("job_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	writeOK(c, gin.H{"data": rows})
}

type setStatusRequest struct {
	Status string `json:"status"`
}

func (h *ApplicationHandler) SetStatus(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	var req setStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ApplicationHandler.SetStatus", "invalid request body", err))
		return
	}

	app, err := h.svc.SetStatus(c.Request.Context(), c.Param("id"), models.ApplicationStatus(req.Status))
	if err != nil {
		writeError(c, err)
		return
	}
	writeOK(c, gin.H{"data": app})
}
