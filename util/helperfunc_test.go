package util

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func runResponder(t *testing.T, fn func(c *gin.Context)) (*httptest.ResponseRecorder, APIResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	fn(c)

	var resp APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return w, resp
}

func TestErrorResponders(t *testing.T) {
	tests := []struct {
		name   string
		call   func(c *gin.Context, p APIErrorParams)
		status int
	}{
		{"not found", CallErrorNotFound, http.StatusNotFound},
		{"user error", CallUserError, http.StatusBadRequest},
		{"too many requests", CallTooManyRequests, http.StatusTooManyRequests},
		{"server error", CallServerError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := runResponder(t, func(c *gin.Context) {
				tt.call(c, APIErrorParams{Msg: "something failed", Err: errors.New("boom")})
			})
			assert.Equal(t, tt.status, w.Code)
			assert.False(t, resp.Success)
			assert.Equal(t, "boom", resp.Error)
			assert.Equal(t, "something failed", resp.Msg)
		})
	}
}

func TestErrorResponder_NilError(t *testing.T) {
	w, resp := runResponder(t, func(c *gin.Context) {
		CallUserError(c, APIErrorParams{Msg: "no cause"})
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "", resp.Error)
}

func TestSuccessResponders(t *testing.T) {
	w, resp := runResponder(t, func(c *gin.Context) {
		CallSuccessOK(c, APISuccessParams{Msg: "ok", Data: []int{1, 2}})
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, "ok", resp.Msg)
	assert.Equal(t, []interface{}{float64(1), float64(2)}, resp.Data)

	w, resp = runResponder(t, func(c *gin.Context) {
		CallSuccessCreated(c, APISuccessParams{Msg: "created", Data: map[string]int{"id": 7}})
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, map[string]interface{}{"id": float64(7)}, resp.Data)
}
