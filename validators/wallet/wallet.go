package walletValidator

import (
	"strings"

	"lnf/middleware"

	"github.com/gofiber/fiber/v2"
)

// DepositRequest is the parsed deposit payload. ReferenceID is the
// external payment confirmation id and is used to reject replays.
type DepositRequest struct {
	Amount      float64 `json:"amount"`
	ReferenceID string  `json:"referenceId"`
}

// Deposit validator middleware
func Deposit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(DepositRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Amount <= 0 {
			errors["amount"] = "Amount must be greater than zero!"
		}

		if strings.TrimSpace(reqData.ReferenceID) == "" {
			errors["referenceId"] = "Reference ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedDeposit", reqData)
		return c.Next()
	}
}
