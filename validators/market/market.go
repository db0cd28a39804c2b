package marketValidator

import (
	"strconv"
	"strings"

	"lnf/middleware"
	"lnf/models"

	"github.com/gofiber/fiber/v2"
)

// SellRequest is the parsed listing payload
type SellRequest struct {
	Title       string  `json:"title" form:"title"`
	Description string  `json:"description" form:"description"`
	Price       float64 `json:"price" form:"price"`
	Condition   string  `json:"condition" form:"condition"`
	Category    string  `json:"category" form:"category"`
}

func isValidCondition(condition string) bool {
	switch condition {
	case models.ConditionNew, models.ConditionLikeNew, models.ConditionGood, models.ConditionFair:
		return true
	}
	return false
}

// Sell validates a marketplace listing form
func Sell() fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := &SellRequest{
			Title:       strings.TrimSpace(c.FormValue("title")),
			Description: strings.TrimSpace(c.FormValue("description")),
			Condition:   c.FormValue("condition"),
			Category:    c.FormValue("category"),
		}
		if v, err := strconv.ParseFloat(c.FormValue("price"), 64); err == nil {
			req.Price = v
		}

		errors := make(map[string]string)

		if req.Title == "" {
			errors["title"] = "Title is required!"
		}
		if req.Description == "" {
			errors["description"] = "Description is required!"
		}
		if req.Price <= 0 {
			errors["price"] = "Price must be greater than zero!"
		}
		if !isValidCondition(req.Condition) {
			errors["condition"] = "Condition must be new, like_new, good or fair!"
		}
		if req.Category == "" {
			errors["category"] = "Category is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSell", req)
		return c.Next()
	}
}

// Review validates an order review payload
func Review() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Rating  int    `json:"rating"`
			Comment string `json:"comment"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Rating < 1 || reqData.Rating > 5 {
			errors["rating"] = "Rating must be between 1 and 5!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReview", reqData)
		return c.Next()
	}
}
