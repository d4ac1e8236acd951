package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avenlyn/commerce-backend/internal/http/response"
	"github.com/avenlyn/commerce-backend/internal/services"
)

type ProductHandler struct {
	productService services.ProductService
}

func NewProductHandler(productService services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// POST /api/products
// body: { "name": "...", "description": "...", "sku": "AB123" }
func (ph *ProductHandler) Create(c *gin.Context) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		SKU         string `json:"sku"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	p, err := ph.productService.Create(c.Request.Context(), req.Name, req.Description, req.SKU)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"product": toProductView(p)})
}

// GET /api/products/:id
func (ph *ProductHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	p, err := ph.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"product": toProductView(p)})
}

// GET /api/products
func (ph *ProductHandler) List(c *gin.Context) {
	limit, offset := parsePage(c)
	products, err := ph.productService.List(c.Request.Context(), limit, offset)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, toProductView(p))
	}
	response.RespondOK(c, gin.H{"products": views})
}

// PATCH /api/products/:id/name
// body: { "value": "..." }
func (ph *ProductHandler) ChangeName(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	p, err := ph.productService.ChangeName(c.Request.Context(), id, bindValue(c))
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"product": toProductView(p)})
}

// PATCH /api/products/:id/description
// body: { "value": "..." }
func (ph *ProductHandler) ChangeDescription(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	p, err := ph.productService.ChangeDescription(c.Request.Context(), id, bindValue(c))
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"product": toProductView(p)})
}

// PATCH /api/products/:id/sku
// body: { "value": "..." }
func (ph *ProductHandler) ChangeSKU(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	p, err := ph.productService.ChangeSKU(c.Request.Context(), id, bindValue(c))
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"product": toProductView(p)})
}
