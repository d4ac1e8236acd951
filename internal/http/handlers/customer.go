package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/avenlyn/commerce-backend/internal/http/response"
	"github.com/avenlyn/commerce-backend/internal/services"
)

type CustomerHandler struct {
	customerService services.CustomerService
}

func NewCustomerHandler(customerService services.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return uuid.Nil, false
	}
	return id, true
}

func parsePage(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	return limit, offset
}

// POST /api/customers
// body: { "first_name": "...", "last_name": "...", "phone_number": "...", "email": "..." }
func (ch *CustomerHandler) Create(c *gin.Context) {
	var req struct {
		FirstName   string `json:"first_name"`
		LastName    string `json:"last_name"`
		PhoneNumber string `json:"phone_number"`
		Email       string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	cust, err := ch.customerService.Create(c.Request.Context(), req.FirstName, req.LastName, req.PhoneNumber, req.Email)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"customer": toCustomerView(cust)})
}

// GET /api/customers/:id
func (ch *CustomerHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	cust, err := ch.customerService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"customer": toCustomerView(cust)})
}

// GET /api/customers
func (ch *CustomerHandler) List(c *gin.Context) {
	limit, offset := parsePage(c)
	customers, err := ch.customerService.List(c.Request.Context(), limit, offset)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	views := make([]customerView, 0, len(customers))
	for _, cust := range customers {
		views = append(views, toCustomerView(cust))
	}
	response.RespondOK(c, gin.H{"customers": views})
}

// PATCH /api/customers/:id/first_name
// body: { "value": "..." }
func (ch *CustomerHandler) ChangeFirstName(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	cust, err := ch.customerService.ChangeFirstName(c.Request.Context(), id, bindValue(c))
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"customer": toCustomerView(cust)})
}

// PATCH /api/customers/:id/last_name
// body: { "value": "..." }
func (ch *CustomerHandler) ChangeLastName(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	cust, err := ch.customerService.ChangeLastName(c.Request.Context(), id, bindValue(c))
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"customer": toCustomerView(cust)})
}

// PATCH /api/customers/:id/phone_number
// body: { "value": "..." }
func (ch *CustomerHandler) ChangePhoneNumber(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	cust, err := ch.customerService.ChangePhoneNumber(c.Request.Context(), id, bindValue(c))
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"customer": toCustomerView(cust)})
}

// PATCH /api/customers/:id/email
// body: { "value": "..." }
func (ch *CustomerHandler) ChangeEmail(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	cust, err := ch.customerService.ChangeEmail(c.Request.Context(), id, bindValue(c))
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"customer": toCustomerView(cust)})
}

// bindValue reads the single-field patch body. An unreadable body yields an
// empty string, which the value-object constructor rejects downstream.
func bindValue(c *gin.Context) string {
	var req struct {
		Value string `json:"value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return ""
	}
	return req.Value
}
