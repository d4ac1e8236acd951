package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/avenlyn/commerce-backend/internal/http/response"
	"github.com/avenlyn/commerce-backend/internal/services"
)

type OrderHandler struct {
	orderService services.OrderService
}

func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// POST /api/orders
// body: { "product_id": "...", "customer_id": "...", "created_date": "2026-01-02T15:04:05Z" }
// created_date is optional; absent means now.
func (oh *OrderHandler) Place(c *gin.Context) {
	var req struct {
		ProductID   uuid.UUID  `json:"product_id"`
		CustomerID  uuid.UUID  `json:"customer_id"`
		CreatedDate *time.Time `json:"created_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	o, err := oh.orderService.Place(c.Request.Context(), req.ProductID, req.CustomerID, req.CreatedDate)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"order": toOrderView(o)})
}

// POST /api/orders/:id/complete
func (oh *OrderHandler) Complete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	o, err := oh.orderService.Complete(c.Request.Context(), id)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"order": toOrderView(o)})
}

// POST /api/orders/:id/cancel
func (oh *OrderHandler) Cancel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	o, err := oh.orderService.Cancel(c.Request.Context(), id)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"order": toOrderView(o)})
}

// GET /api/orders/:id
func (oh *OrderHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	o, err := oh.orderService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"order": toOrderView(o)})
}

// GET /api/orders
func (oh *OrderHandler) List(c *gin.Context) {
	limit, offset := parsePage(c)
	orders, err := oh.orderService.List(c.Request.Context(), limit, offset)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"orders": toOrderViews(orders)})
}
