package serverutils

import "github.com/gofiber/fiber/v2"

// ApiError is an expected failure carrying the HTTP status it maps to.
// Services return these for not-found, validation, and conflict cases;
// anything else surfaces as a 500.
type ApiError struct {
	Status  int
	Message string
}

func (e *ApiError) Error() string {
	return e.Message
}

func NewApiError(status int, message string) *ApiError {
	return &ApiError{Status: status, Message: message}
}

func NotFound(message string) *ApiError {
	return NewApiError(fiber.StatusNotFound, message)
}

func BadRequest(message string) *ApiError {
	return NewApiError(fiber.StatusBadRequest, message)
}

func Conflict(message string) *ApiError {
	return NewApiError(fiber.StatusConflict, message)
}
