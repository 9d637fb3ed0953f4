package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation for the Kitchen Service
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// CreateOrder godoc
// @Summary Create new order
// @Description Place a new customer order; it starts in pending status
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body object{customer_name=string,items=array} true "Order data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/orders [post]
func (h *OrderHandler) CreateOrderDoc() {}

// CheckInventory godoc
// @Summary Check inventory sufficiency
// @Description Check whether current stock can cover the order's aggregated ingredient requirements
// @Tags Orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} object{isOk=bool,missingIngredients=array}
// @Failure 404 {object} object{success=bool,error=string}
// @Failure 429 {object} object{success=bool,error=string}
// @Router /api/orders/{id}/check-inventory [get]
func (h *OrderHandler) CheckInventoryDoc() {}

// UpdateInventory godoc
// @Summary Apply order consumption to stock
// @Description Decrement or restore ingredient stock for an order; failures are reported per ingredient
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body object{action=string} true "increment or decrement"
// @Success 200 {object} object{success=bool,results=array}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/orders/{id}/update-inventory [post]
func (h *OrderHandler) UpdateInventoryDoc() {}

// UpdateStatus godoc
// @Summary Change order status
// @Description Transition an order between statuses; acceptance is gated on inventory sufficiency
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body object{status=string,restoreInventory=bool} true "Target status"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 409 {object} object{success=bool,error=string,missingIngredients=array}
// @Router /api/orders/{id}/update-status [post]
func (h *OrderHandler) UpdateStatusDoc() {}
