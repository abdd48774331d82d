package api

import (
	"net/http"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/Domenick1991/airport/internal/projection"
	"github.com/Domenick1991/airport/internal/service/orders"
	"github.com/gin-gonic/gin"
)

// OrderHandler only ever sees the caller's own orders.
type OrderHandler struct {
	service orders.OrderUseCase
}

func NewOrderHandler(service orders.OrderUseCase) *OrderHandler {
	return &OrderHandler{service: service}
}

func (h *OrderHandler) Register(router *gin.RouterGroup) {
	Mount(router, ListCreate, Resource{Name: "orders", Private: true, List: h.list, Create: h.create})
}

func (h *OrderHandler) list(c *gin.Context, principal domain.Principal) {
	list, err := h.service.ListOrders(c.Request.Context(), principal)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projection.Map(list, projection.NewOrder))
}

func (h *OrderHandler) create(c *gin.Context, principal domain.Principal) {
	var in projection.OrderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindingError(c, err)
		return
	}
	order, err := h.service.CreateOrder(c.Request.Context(), principal, in.Domain())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, projection.NewCreatedOrder(*order))
}
