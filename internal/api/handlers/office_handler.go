package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/zhiren/talenthub/internal/services"
	"github.com/zhiren/talenthub/internal/utils"
)

type OfficeHandler struct {
	svc services.OfficeService
}

func NewOfficeHandler(svc services.OfficeService) *OfficeHandler {
	return &OfficeHandler{svc: svc}
}

func (h *OfficeHandler) List(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	rows, err := h.svc.List(c.Request.Context(), c.Query("active") == "true")
	if err != nil {
		writeError(c, err)
		return
	}
	writeOK(c, gin.H{"data": rows})
}

func (h *OfficeHandler) Create(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	var in services.OfficeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "OfficeHandler.Create", "invalid request body", err))
		return
	}

	o, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	writeOK(c, gin.H{"data": o})
}

func (h *OfficeHandler) Update(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	var in services.OfficeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "OfficeHandler.Update", "invalid request body", err))
		return
	}

	o, err := h.svc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(c, err)
		return
	}
	writeOK(c, gin.H{"data": o})
}

func (h *OfficeHandler) Delete(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	writeOK(c, gin.H{})
}
