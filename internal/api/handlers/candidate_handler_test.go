package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zhiren/talenthub/internal/repositories/memory"
	"github.com/zhiren/talenthub/internal/services"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logrus.New()
	log.SetOutput(io.Discard)

	svc := services.NewCandidateService(memory.NewCandidateStore(), memory.NewCandidateStore(), nil, nil, nil, log)
	h := NewCandidateHandler(svc)

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("user_id", "hr-1") })
	r.GET("/api/hr/candidates", h.List)
	r.POST("/api/hr/candidates", h.Create)
	r.PUT("/api/hr/candidates", h.BulkUpdate)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return w, out
}

func TestListCandidatesDefaults(t *testing.T) {
	r := testRouter(t)

	w, out := doJSON(t, r, http.MethodGet, "/api/hr/candidates", "")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, true, out["success"])
	assert.Len(t, out["data"], 8)

	stats := out["stats"].(map[string]any)
	assert.EqualValues(t, 8, stats["total"])
	assert.EqualValues(t, 3.8, stats["average_rating"])

	pg := out["pagination"].(map[string]any)
	assert.EqualValues(t, 1, pg["page"])
	assert.EqualValues(t, false, pg["has_next"])
}

func TestListCandidatesFiltered(t *testing.T) {
	r := testRouter(t)

	_, out := doJSON(t, r, http.MethodGet, "/api/hr/candidates?status=active&limit=2&page=2", "")

	assert.Len(t, out["data"], 2)
	pg := out["pagination"].(map[string]any)
	assert.EqualValues(t, 2, pg["page"])
	// stats still cover everyone, not just the filtered page
	stats := out["stats"].(map[string]any)
	assert.EqualValues(t, 8, stats["total"])
}

func TestBulkUpdateMissingIDsField(t *testing.T) {
	r := testRouter(t)

	w, out := doJSON(t, r, http.MethodPut, "/api/hr/candidates", `{"action":"update_status","data":{"status":"hired"}}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, out["success"])
	assert.Equal(t, "candidate_ids must be an array", out["error"])
}

func TestBulkUpdateUnknownAction(t *testing.T) {
	r := testRouter(t)

	w, out := doJSON(t, r, http.MethodPut, "/api/hr/candidates", `{"action":"delete_all","candidate_ids":["c-1"]}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, out["success"])
}

func TestBulkUpdateEmptyIDList(t *testing.T) {
	r := testRouter(t)

	w, out := doJSON(t, r, http.MethodPut, "/api/hr/candidates", `{"action":"add_note","candidate_ids":[],"data":{"note":"跟进"}}`)

	require.Equal(t, http.StatusOK, w.Code)
	data := out["data"].(map[string]any)
	assert.EqualValues(t, 0, data["updated_count"])
}

func TestCreateCandidateDuplicateEmail(t *testing.T) {
	r := testRouter(t)
	seed := memory.SeedCandidates()

	body, _ := json.Marshal(map[string]any{
		"name":  "重复",
		"email": seed[0].Email,
		"phone": "13800000000",
	})
	w, out := doJSON(t, r, http.MethodPost, "/api/hr/candidates", string(body))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "该邮箱已存在候选人记录", out["error"])
}

func TestUnauthenticatedRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := logrus.New()
	log.SetOutput(io.Discard)

	svc := services.NewCandidateService(memory.NewCandidateStore(), memory.NewCandidateStore(), nil, nil, nil, log)
	h := NewCandidateHandler(svc)

	r := gin.New()
	r.GET("/api/hr/candidates", h.List)

	req := httptest.NewRequest(http.MethodGet, "/api/hr/candidates", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.True(t, bytes.Contains(w.Body.Bytes(), []byte(`"success":false`)))
}
