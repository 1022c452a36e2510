package handler

import "github.com/labstack/echo/v4"

// Response is the uniform JSON envelope for every endpoint, success or
// failure. StatusCode mirrors the HTTP status for clients that only read the
// body.
type Response struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	Data       any    `json:"data"`
	StatusCode int    `json:"statusCode"`
}

// OK writes a success envelope with the given status.
func OK(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, Response{
		Success:    true,
		Message:    message,
		Data:       data,
		StatusCode: status,
	})
}

// Fail writes a failure envelope with the given status.
func Fail(c echo.Context, status int, message string) error {
	return c.JSON(status, Response{
		Success:    false,
		Message:    message,
		StatusCode: status,
	})
}
