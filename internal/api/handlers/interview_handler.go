package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/zhiren/talenthub/internal/services"
	"github.com/zhiren/talenthub/internal/utils"
)

type InterviewHandler struct {
	svc       services.InterviewService
	scheduler services.SchedulerService
}

func NewInterviewHandler(svc services.InterviewService, scheduler services.SchedulerService) *InterviewHandler {
	return &InterviewHandler{svc: svc, scheduler: scheduler}
}

func (h *InterviewHandler) List(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	rows, err := h.svc.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		writeError(c, err)
		return
	}
	writeOK(c, gin.H{"data": rows})
}

func (h *InterviewHandler) Create(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	var in services.InterviewInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "InterviewHandler.Create", "invalid request body", err))
		return
	}

	iv, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	writeOK(c, gin.H{"data": iv})
}

func (h *InterviewHandler) Update(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	var in services.InterviewInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "InterviewHandler.Update", "invalid request body", err))
		return
	}

	iv, err := h.svc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(c, err)
		return
	}
	writeOK(c, gin.H{"data": iv})
}

func (h *InterviewHandler) Delete(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	writeOK(c, gin.H{})
}

// Suggest serves POST /api/hr/interviews/suggest, the smart scheduler.
func (h *InterviewHandler) Suggest(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	var in services.SuggestInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "InterviewHandler.Suggest", "invalid request body", err))
		return
	}

	slots, err := h.scheduler.Suggest(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	writeOK(c, gin.H{"data": slots})
}
