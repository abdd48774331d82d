package api

import (
	"net/http"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/Domenick1991/airport/internal/projection"
	"github.com/Domenick1991/airport/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	Mount(router, FullCRUD, Resource{
		Name:          "flights",
		List:          h.list,
		Create:        h.create,
		Retrieve:      h.get,
		Update:        h.update,
		PartialUpdate: h.patch,
		Delete:        h.delete,
	})
}

// list accepts ?source=, ?destination= (city substrings) and ?airplane= (name substring).
func (h *FlightHandler) list(c *gin.Context, _ domain.Principal) {
	filter := domain.FlightFilter{
		Source:      c.Query("source"),
		Destination: c.Query("destination"),
		Airplane:    c.Query("airplane"),
	}
	list, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projection.Map(list, projection.NewFlightListItem))
}

func (h *FlightHandler) get(c *gin.Context, _ domain.Principal) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	flight, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projection.NewFlightDetail(*flight))
}

func (h *FlightHandler) create(c *gin.Context, _ domain.Principal) {
	var in projection.FlightInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindingError(c, err)
		return
	}
	flight := in.Domain()
	if err := h.service.Create(c.Request.Context(), &flight); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, projection.NewFlight(flight))
}

func (h *FlightHandler) update(c *gin.Context, _ domain.Principal) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in projection.FlightInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindingError(c, err)
		return
	}
	flight := in.Domain()
	flight.ID = id
	if err := h.service.Update(c.Request.Context(), &flight); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projection.NewFlight(flight))
}

func (h *FlightHandler) patch(c *gin.Context, _ domain.Principal) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in projection.FlightPatch
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindingError(c, err)
		return
	}
	flight, err := h.service.Patch(c.Request.Context(), id, in.Apply)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projection.NewFlight(*flight))
}

func (h *FlightHandler) delete(c *gin.Context, _ domain.Principal) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
