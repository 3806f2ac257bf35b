package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Envelope is the uniform response wrapper. Exactly one of Data, Message or
// Errors accompanies the success flag depending on the outcome.
type Envelope struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Data    any          `json:"data,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

func okData(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

func okMessage(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, Envelope{Success: true, Message: message})
}
