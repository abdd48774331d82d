package api

import (
	"net/http"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/Domenick1991/airport/internal/projection"
	"github.com/Domenick1991/airport/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

// CatalogHandler serves airports, routes, airplane types, airplanes and crews.
type CatalogHandler struct {
	service catalog.CatalogUseCase
}

func NewCatalogHandler(service catalog.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{service: service}
}

func (h *CatalogHandler) Register(router *gin.RouterGroup) {
	Mount(router, ListCreate, Resource{Name: "airports", List: h.listAirports, Create: h.createAirport})
	Mount(router, ListCreate, Resource{Name: "routes", List: h.listRoutes, Create: h.createRoute})
	Mount(router, ListCreate|CanRetrieve, Resource{
		Name:     "airplane-types",
		List:     h.listAirplaneTypes,
		Create:   h.createAirplaneType,
		Retrieve: h.getAirplaneType,
	})
	Mount(router, ListCreate, Resource{Name: "airplanes", List: h.listAirplanes, Create: h.createAirplane})
	Mount(router, ListCreate, Resource{Name: "crews", List: h.listCrews, Create: h.createCrew})
}

func (h *CatalogHandler) listAirports(c *gin.Context, _ domain.Principal) {
	airports, err := h.service.ListAirports(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projection.Map(airports, projection.NewAirport))
}

func (h *CatalogHandler) createAirport(c *gin.Context, _ domain.Principal) {
	var in projection.AirportInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindingError(c, err)
		return
	}
	airport := in.Domain()
	if err := h.service.CreateAirport(c.Request.Context(), &airport); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, projection.NewAirport(airport))
}

func (h *CatalogHandler) listRoutes(c *gin.Context, _ domain.Principal) {
	routes, err := h.service.ListRoutes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projection.Map(routes, projection.NewRouteListItem))
}

func (h *CatalogHandler) createRoute(c *gin.Context, _ domain.Principal) {
	var in projection.RouteInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindingError(c, err)
		return
	}
	route := in.Domain()
	if err := h.service.CreateRoute(c.Request.Context(), &route); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, projection.NewRoute(route))
}

func (h *CatalogHandler) listAirplaneTypes(c *gin.Context, _ domain.Principal) {
	types, err := h.service.ListAirplaneTypes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projection.Map(types, projection.NewAirplaneType))
}

func (h *CatalogHandler) getAirplaneType(c *gin.Context, _ domain.Principal) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	airplaneType, err := h.service.GetAirplaneType(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projection.NewAirplaneTypeDetail(*airplaneType))
}

func (h *CatalogHandler) createAirplaneType(c *gin.Context, _ domain.Principal) {
	var in projection.AirplaneTypeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindingError(c, err)
		return
	}
	airplaneType := in.Domain()
	if err := h.service.CreateAirplaneType(c.Request.Context(), &airplaneType); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, projection.NewAirplaneType(airplaneType))
}

func (h *CatalogHandler) listAirplanes(c *gin.Context, _ domain.Principal) {
	airplanes, err := h.service.ListAirplanes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projection.Map(airplanes, projection.NewAirplaneListItem))
}

func (h *CatalogHandler) createAirplane(c *gin.Context, _ domain.Principal) {
	var in projection.AirplaneInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindingError(c, err)
		return
	}
	airplane := in.Domain()
	if err := h.service.CreateAirplane(c.Request.Context(), &airplane); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, projection.NewAirplane(airplane))
}

func (h *CatalogHandler) listCrews(c *gin.Context, _ domain.Principal) {
	crews, err := h.service.ListCrews(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projection.Map(crews, projection.NewCrew))
}

func (h *CatalogHandler) createCrew(c *gin.Context, _ domain.Principal) {
	var in projection.CrewInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindingError(c, err)
		return
	}
	crew := in.Domain()
	if err := h.service.CreateCrew(c.Request.Context(), &crew); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, projection.NewCrew(crew))
}
