package api

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCapabilities_Has(t *testing.T) {
	assert.True(t, FullCRUD.Has(CanDelete))
	assert.True(t, ListCreate.Has(CanList|CanCreate))
	assert.False(t, ListCreate.Has(CanRetrieve))
}

type mountOnly struct {
	caps Capabilities
	res  Resource
}

func (m mountOnly) Register(router *gin.RouterGroup) {
	Mount(router, m.caps, m.res)
}

func TestMount_RegistersOnlyDeclaredOperations(t *testing.T) {
	ok := func(c *gin.Context, _ domain.Principal) { c.Status(http.StatusOK) }
	r := newTestRouter(mountOnly{caps: CanList | CanRetrieve, res: Resource{Name: "things", List: ok, Retrieve: ok}})

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api/airport/things/", "", nil).Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api/airport/things/1/", "", nil).Code)
	assert.Equal(t, http.StatusMethodNotAllowed, do(r, http.MethodPost, "/api/airport/things/", bearer(t, 1), nil).Code)
	assert.Equal(t, http.StatusMethodNotAllowed, do(r, http.MethodDelete, "/api/airport/things/1/", bearer(t, 1), nil).Code)
}

func TestMount_PassesPrincipal(t *testing.T) {
	var got domain.Principal
	capture := func(c *gin.Context, p domain.Principal) {
		got = p
		c.Status(http.StatusOK)
	}
	r := newTestRouter(mountOnly{caps: CanList, res: Resource{Name: "things", List: capture}})

	do(r, http.MethodGet, "/api/airport/things/", bearer(t, 12), nil)
	assert.Equal(t, int64(12), got.UserID)
}

func TestMount_PanicsOnMissingHandler(t *testing.T) {
	assert.Panics(t, func() {
		newTestRouter(mountOnly{caps: ListCreate, res: Resource{Name: "things", List: func(*gin.Context, domain.Principal) {}}})
	})
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	healthy := gin.New()
	healthy.GET("/health", NewHealthHandler(pingFunc(func(context.Context) error { return nil })).Check)
	assert.Equal(t, http.StatusOK, do(healthy, http.MethodGet, "/health", "", nil).Code)

	down := gin.New()
	down.GET("/health", NewHealthHandler(pingFunc(func(context.Context) error { return errors.New("refused") })).Check)
	assert.Equal(t, http.StatusServiceUnavailable, do(down, http.MethodGet, "/health", "", nil).Code)
}
