package presenter

import "github.com/gofiber/fiber/v2"

type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}

// Failure reports message together with the underlying error text.
func Failure(c *fiber.Ctx, status int, message string, err error) error {
	resp := ErrorResponse{Message: message}
	if err != nil {
		resp.Error = err.Error()
	}
	return JSON(c, status, resp)
}

// StatusResponse is the body of the health and readiness endpoints.
type StatusResponse struct {
	Status  string `json:"status"`
	Details string `json:"details,omitempty"`
}
