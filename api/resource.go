package api

import (
	"fmt"

	"github.com/Domenick1991/airport/internal/auth"
	"github.com/Domenick1991/airport/internal/domain"
	"github.com/gin-gonic/gin"
)

// Capabilities is the set of operations a resource exposes.
type Capabilities uint8

const (
	CanList Capabilities = 1 << iota
	CanCreate
	CanRetrieve
	CanUpdate
	CanDelete
)

const (
	ListCreate = CanList | CanCreate
	FullCRUD   = CanList | CanCreate | CanRetrieve | CanUpdate | CanDelete
)

func (c Capabilities) Has(flag Capabilities) bool {
	return c&flag == flag
}

// HandlerFunc receives the caller resolved by the auth middleware.
type HandlerFunc func(c *gin.Context, principal domain.Principal)

type Resource struct {
	Name string
	// Private resources are never readable anonymously.
	Private bool

	List          HandlerFunc
	Create        HandlerFunc
	Retrieve      HandlerFunc
	Update        HandlerFunc
	PartialUpdate HandlerFunc
	Delete        HandlerFunc
}

// Mount registers the routes of res allowed by caps under /<name>/ and /<name>/:id/.
// Methods outside caps are left unregistered so the engine answers 405.
func Mount(group *gin.RouterGroup, caps Capabilities, res Resource) {
	policy := auth.ReadOnlyForAnonymous()
	if res.Private {
		policy = auth.RequireAuthenticated()
	}
	g := group.Group("/"+res.Name, policy)

	if caps.Has(CanList) {
		g.GET("/", with(res.Name, "list", res.List))
	}
	if caps.Has(CanCreate) {
		g.POST("/", with(res.Name, "create", res.Create))
	}
	if caps.Has(CanRetrieve) {
		g.GET("/:id/", with(res.Name, "retrieve", res.Retrieve))
	}
	if caps.Has(CanUpdate) {
		g.PUT("/:id/", with(res.Name, "update", res.Update))
		partial := res.PartialUpdate
		if partial == nil {
			partial = res.Update
		}
		g.PATCH("/:id/", with(res.Name, "partial update", partial))
	}
	if caps.Has(CanDelete) {
		g.DELETE("/:id/", with(res.Name, "delete", res.Delete))
	}
}

func with(resource, op string, h HandlerFunc) gin.HandlerFunc {
	if h == nil {
		panic(fmt.Sprintf("api: %s declares %s without a handler", resource, op))
	}
	return func(c *gin.Context) {
		h(c, auth.PrincipalFrom(c))
	}
}
