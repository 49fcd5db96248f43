package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	goerrors "github.com/goliatone/go-errors"

	"github.com/davidmartinii-sketch/ai-business-assistant/internal/auth"
)

// statusByTextCode is the explicit mapping from domain error variant to
// HTTP status. "Same message for different causes" is designed in here:
// invalid credentials, missing auth, and bad tokens each collapse their
// sub-causes before they ever reach this table.
var statusByTextCode = map[string]int{
	auth.TextCodeDuplicateEmail:     fiber.StatusBadRequest,
	auth.TextCodeInvalidCredentials: fiber.StatusUnauthorized,
	auth.TextCodeMissingAuth:        fiber.StatusUnauthorized,
	auth.TextCodeTokenInvalid:       fiber.StatusUnauthorized,
	auth.TextCodeAccountNotFound:    fiber.StatusNotFound,
}

// newErrorHandler converts errors escaping handlers into the response
// envelope. Anything outside the mapping table is a 500 with a generic
// message; the detail is logged for operators, never returned.
func newErrorHandler(logger auth.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var rich *goerrors.Error
		if goerrors.As(err, &rich) {
			if status, ok := statusByTextCode[rich.TextCode]; ok {
				return c.Status(status).JSON(Fail(status, rich.Message))
			}
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) && fiberErr.Code < fiber.StatusInternalServerError {
			return c.Status(fiberErr.Code).JSON(Fail(fiberErr.Code, fiberErr.Message))
		}

		logger.Error("unhandled request error", "error", err, "path", c.Path())
		return c.Status(fiber.StatusInternalServerError).
			JSON(Fail(fiber.StatusInternalServerError, "Internal Server Error"))
	}
}

// validationError shapes a declarative validation failure the way the
// clients expect it.
func validationError(c *fiber.Ctx, detail string) error {
	return c.Status(fiber.StatusBadRequest).
		JSON(Fail(fiber.StatusBadRequest, "Validation error: "+detail))
}
