package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/mwalto7/filevault/internal/utils"
)

// ErrorResponse is the error envelope returned by every failing endpoint.
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// SuccessResponse is the bare confirmation envelope.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// RegisterCustomValidators wires application-specific validators into
// gin's binding engine. Must be called once before routes are served.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("identifier", func(fl validator.FieldLevel) bool {
			return utils.IsValidID(fl.Field().String())
		})
	}
}
