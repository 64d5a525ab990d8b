package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("request_id", "req-1")
	return c, w
}

func TestSuccessWritesEnvelope(t *testing.T) {
	c, w := newContext()

	res := Success(c, 0, map[string]string{"id": "42"}, "ok", nil)

	assert.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "req-1", body["request_id"])
	assert.Equal(t, "ok", body["message"])
	assert.Equal(t, map[string]any{"id": "42"}, body["data"])
	assert.NotContains(t, body, "error")
}

func TestErrorWritesEnvelope(t *testing.T) {
	c, w := newContext()

	Error[any](c, http.StatusConflict, "user already exists", map[string]string{"email": "taken"})

	assert.Equal(t, http.StatusConflict, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, float64(http.StatusConflict), body["status"])
	assert.Equal(t, map[string]any{"email": "taken"}, body["error"])
	assert.NotContains(t, body, "data")
}

func TestErrorDefaultsToBadRequest(t *testing.T) {
	c, w := newContext()
	Error[any](c, 0, "bad", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
