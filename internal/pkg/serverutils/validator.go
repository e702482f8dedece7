package serverutils

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateRequest checks validator tags on a request DTO and converts
// failures into a 400 before any external call is made.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		return NewApiError(fiber.StatusBadRequest, err.Error())
	}
	return nil
}
