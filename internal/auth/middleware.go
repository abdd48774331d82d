package auth

import (
	"net/http"
	"strings"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

type TokenParser interface {
	Parse(token string) (domain.Principal, error)
}

// Middleware resolves the caller from the Authorization header. A request without
// the header proceeds anonymously; a present but unusable token is rejected.
func Middleware(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
			abortUnauthorized(c, "Invalid token header.")
			return
		}
		principal, err := parser.Parse(strings.TrimSpace(token))
		if err != nil {
			abortUnauthorized(c, "Given token not valid for any token type.")
			return
		}
		c.Set(principalKey, principal)
		c.Next()
	}
}

// PrincipalFrom returns the anonymous principal when none was resolved.
func PrincipalFrom(c *gin.Context) domain.Principal {
	if v, ok := c.Get(principalKey); ok {
		if p, ok := v.(domain.Principal); ok {
			return p
		}
	}
	return domain.Principal{}
}

// ReadOnlyForAnonymous lets anonymous callers use safe methods only.
func ReadOnlyForAnonymous() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !PrincipalFrom(c).Authenticated() && !isSafeMethod(c.Request.Method) {
			abortUnauthorized(c, "Authentication credentials were not provided.")
			return
		}
		c.Next()
	}
}

func RequireAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !PrincipalFrom(c).Authenticated() {
			abortUnauthorized(c, "Authentication credentials were not provided.")
			return
		}
		c.Next()
	}
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

func abortUnauthorized(c *gin.Context, detail string) {
	c.Header("WWW-Authenticate", `Bearer realm="api"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": detail})
}
