package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Domenick1991/airport/internal/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type registrar interface {
	Register(router *gin.RouterGroup)
}

var tokens = auth.NewTokenManager("test-secret", time.Hour)

func newTestRouter(handlers ...registrar) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.HandleMethodNotAllowed = true
	group := r.Group("/api/airport", auth.Middleware(tokens))
	for _, h := range handlers {
		h.Register(group)
	}
	return r
}

func bearer(t *testing.T, userID int64) string {
	t.Helper()
	token, err := tokens.Issue(userID, "user@example.com")
	require.NoError(t, err)
	return "Bearer " + token
}

func do(r http.Handler, method, path, authHeader string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, _ := json.Marshal(b)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
