package handlers

import (
	"bytes"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/zhiren/talenthub/internal/roster"
	"github.com/zhiren/talenthub/internal/services"
	"github.com/zhiren/talenthub/internal/utils"
)

type CandidateHandler struct {
	svc services.CandidateService
}

func NewCandidateHandler(svc services.CandidateService) *CandidateHandler {
	return &CandidateHandler{svc: svc}
}

// List serves GET /api/hr/candidates. Store failures never surface here: the
// service transparently falls back to the seed roster.
func (h *CandidateHandler) List(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	f := roster.Filter{
		Search:     c.Query("search"),
		Status:     c.Query("status"),
		Experience: c.Query("experience"),
		Rating:     c.Query("rating"),
		Skills:     c.Query("skills"),
		Location:   c.Query("location"),
		Source:     c.Query("source"),
	}

	page := intQuery(c, "page", 1)
	limit := intQuery(c, "limit", 10)
	if limit > 100 {
		limit = 100
	}

	out, err := h.svc.List(c.Request.Context(), f, page, limit)
	if err != nil {
		writeError(c, err)
		return
	}

	writeOK(c, gin.H{
		"data":       out.Candidates,
		"pagination": out.Pagination,
		"stats":      out.Stats,
	})
}

func (h *CandidateHandler) Create(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	var in services.CreateCandidateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "CandidateHandler.Create", "invalid request body", err))
		return
	}

	created, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}

	writeOK(c, gin.H{"data": created})
}

type bulkRequest struct {
	Action       string             `json:"action"`
	CandidateIDs *[]string          `json:"candidate_ids"`
	Data         roster.BulkPayload `json:"data"`
}

// BulkUpdate serves PUT /api/hr/candidates.
func (h *CandidateHandler) BulkUpdate(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req bulkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "CandidateHandler.BulkUpdate", "invalid request body", err))
		return
	}
	if req.Action == "" {
		writeError(c, utils.E(utils.CodeInvalidArgument, "CandidateHandler.BulkUpdate", "action is required", nil))
		return
	}
	if req.CandidateIDs == nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "CandidateHandler.BulkUpdate", "candidate_ids must be an array", nil))
		return
	}

	res, err := h.svc.BulkUpdate(c.Request.Context(), userID, roster.BulkAction(req.Action), *req.CandidateIDs, req.Data)
	if err != nil {
		writeError(c, err)
		return
	}

	writeOK(c, gin.H{
		"data": gin.H{
			"updated_count":      res.UpdatedCount,
			"updated_candidates": res.Updated,
		},
	})
}

// UploadResume serves POST /api/hr/candidates/:id/resume (multipart).
func (h *CandidateHandler) UploadResume(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}
	id := c.Param("id")

	fh, err := c.FormFile("file")
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "CandidateHandler.UploadResume", "missing multipart field 'file'", err))
		return
	}

	file, err := fh.Open()
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, "CandidateHandler.UploadResume", "failed to open upload", err))
		return
	}
	defer file.Close()

	// sniff the real content type from the first 512 bytes
	head := make([]byte, 512)
	n, _ := file.Read(head)
	head = head[:n]
	ct := http.DetectContentType(head)
	if _, ok := services.AllowedResumeTypes[ct]; !ok {
		// DetectContentType cannot tell doc/docx apart from zip/ole; trust the
		// declared type for those
		ct = fh.Header.Get("Content-Type")
	}

	r := &readJoin{a: bytes.NewReader(head), b: file}

	updated, err := h.svc.AttachResume(c.Request.Context(), id, fh.Filename, ct, fh.Size, r)
	if err != nil {
		writeError(c, err)
		return
	}

	writeOK(c, gin.H{"data": updated})
}

type readJoin struct {
	a *bytes.Reader
	b io.Reader
}

func (r *readJoin) Read(p []byte) (int, error) {
	if r.a != nil && r.a.Len() > 0 {
		return r.a.Read(p)
	}
	return r.b.Read(p)
}

func intQuery(c *gin.Context, key string, def int) int {
	if s := c.Query(key); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return def
}
