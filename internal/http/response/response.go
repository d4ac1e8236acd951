package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avenlyn/commerce-backend/internal/domain"
	pkgerrors "github.com/avenlyn/commerce-backend/internal/pkg/errors"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Field   string `json:"field,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}

// RespondDomainError translates the domain error taxonomy into HTTP statuses
// so raw failures never surface as 500s.
func RespondDomainError(c *gin.Context, err error) {
	var domErr *domain.Error
	if errors.As(err, &domErr) {
		status := http.StatusInternalServerError
		switch domErr.Code {
		case domain.CodeValidation:
			status = http.StatusBadRequest
		case domain.CodeNotFound:
			status = http.StatusNotFound
		case domain.CodeConflict:
			status = http.StatusConflict
		case domain.CodeInvariant:
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, ErrorEnvelope{
			Error: APIError{
				Message: domErr.Message,
				Code:    string(domErr.Code),
				Field:   domErr.Field,
			},
		})
		return
	}
	if errors.Is(err, pkgerrors.ErrNotFound) {
		RespondError(c, http.StatusNotFound, "not_found", err)
		return
	}
	if errors.Is(err, pkgerrors.ErrUnauthorized) {
		RespondError(c, http.StatusUnauthorized, "unauthorized", err)
		return
	}
	RespondError(c, http.StatusInternalServerError, "internal", err)
}
