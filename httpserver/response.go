package httpserver

import (
	"github.com/labstack/echo/v4"
)

// APIResponse is the envelope of every JSON response. Status always equals
// the HTTP status code.
type APIResponse struct {
	Status  int         `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func writeData(c echo.Context, status int, data interface{}) error {
	return c.JSON(status, APIResponse{
		Status: status,
		Data:   data,
	})
}

func writeMessage(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, APIResponse{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

func writeError(c echo.Context, status int, message string) error {
	return c.JSON(status, APIResponse{
		Status: status,
		Error:  message,
	})
}
