package handlers

import (
	"errors"

	"freehunt_backend/internal/middleware"
	"freehunt_backend/internal/models"
	"freehunt_backend/internal/validator"
	"freehunt_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// BaseHandler carries the shared request plumbing: body binding, payload
// validation and caller identity extraction.
type BaseHandler struct {
	validate *validator.Validator
}

func NewBaseHandler(v *validator.Validator) BaseHandler {
	return BaseHandler{validate: v}
}

// bindAndValidate decodes the JSON body and runs the validation rules.
// On failure the error response is already written; callers just return.
func (h *BaseHandler) bindAndValidate(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
		return false
	}
	if err := h.validate.Validate(dst); err != nil {
		var ve *validator.ValidationError
		if errors.As(err, &ve) {
			apperrors.HandleError(c, apperrors.ValidationError(ve.Errors))
		} else {
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

func (h *BaseHandler) caller(c *gin.Context) (userID string, role models.UserRole) {
	return middleware.UserIDFromContext(c), models.UserRole(middleware.RoleFromContext(c))
}
