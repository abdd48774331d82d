package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_IssueAndParse(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)

	token, err := m.Issue(42, "user@example.com")
	require.NoError(t, err)

	p, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, domain.Principal{UserID: 42, Email: "user@example.com"}, p)
}

func TestTokenManager_RejectsExpired(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := m.Issue(1, "a@b.c")
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsOtherSecret(t *testing.T) {
	token, err := NewTokenManager("one", time.Hour).Issue(1, "a@b.c")
	require.NoError(t, err)

	_, err = NewTokenManager("two", time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsNonNumericSubject(t *testing.T) {
	claims := Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "admin", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewTokenManager("secret", time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func newPolicyRouter(m *TokenManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware(m))

	echo := func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"user": PrincipalFrom(c).UserID}) }
	public := r.Group("/public", ReadOnlyForAnonymous())
	public.GET("", echo)
	public.POST("", echo)
	private := r.Group("/private", RequireAuthenticated())
	private.GET("", echo)
	return r
}

func TestPolicy(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)
	token, err := m.Issue(7, "u@example.com")
	require.NoError(t, err)
	r := newPolicyRouter(m)

	tests := []struct {
		name   string
		method string
		path   string
		header string
		want   int
	}{
		{"anonymous read", http.MethodGet, "/public", "", http.StatusOK},
		{"anonymous write", http.MethodPost, "/public", "", http.StatusUnauthorized},
		{"authenticated write", http.MethodPost, "/public", "Bearer " + token, http.StatusOK},
		{"anonymous private read", http.MethodGet, "/private", "", http.StatusUnauthorized},
		{"authenticated private read", http.MethodGet, "/private", "Bearer " + token, http.StatusOK},
		{"malformed token on public read", http.MethodGet, "/public", "Bearer garbage", http.StatusUnauthorized},
		{"wrong scheme", http.MethodGet, "/public", "Basic abc", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestPrincipalFrom_Anonymous(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.False(t, PrincipalFrom(c).Authenticated())
}
