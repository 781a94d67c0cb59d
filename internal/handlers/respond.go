package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/mwalto7/filevault/internal/dto"
)

// respondError writes the error envelope shared by every endpoint.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, dto.ErrorResponse{Error: true, Message: message})
}

// bindErrorMessage picks the client-facing message for a binding failure.
// Identifier-format failures get their own message; everything else falls
// back to the handler's required-fields message.
func bindErrorMessage(err error, requiredMsg string) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Tag() == "identifier" {
				return "Invalid ID format"
			}
		}
	}
	return requiredMsg
}

// queryInt parses an integer query parameter, falling back to def when the
// parameter is absent or not numeric.
func queryInt(c *gin.Context, name string, def int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return def
	}
	return v
}
