package itemValidator

import (
	"strconv"
	"strings"

	"lnf/middleware"
	"lnf/models"

	"github.com/gofiber/fiber/v2"
)

// ItemRequest is the parsed post/edit payload. Posts arrive as multipart
// forms (with an optional image part) or plain JSON on the api routes.
type ItemRequest struct {
	Title           string  `json:"title" form:"title"`
	Description     string  `json:"description" form:"description"`
	Category        string  `json:"category" form:"category"`
	Subcategory     string  `json:"subcategory" form:"subcategory"`
	Brand           string  `json:"brand" form:"brand"`
	Color           string  `json:"color" form:"color"`
	Size            string  `json:"size" form:"size"`
	Location        string  `json:"location" form:"location"`
	LocationDetails string  `json:"locationDetails" form:"locationDetails"`
	DateLostFound   string  `json:"dateLostFound" form:"dateLostFound"`
	RewardAmount    float64 `json:"rewardAmount" form:"rewardAmount"`
	Value           float64 `json:"value" form:"value"`
}

// ValidItemType reports whether the :type path param is lost or found
func ValidItemType(itemType string) bool {
	return itemType == string(models.ItemTypeLost) || itemType == string(models.ItemTypeFound)
}

func parseItemForm(c *fiber.Ctx) *ItemRequest {
	req := &ItemRequest{
		Title:           strings.TrimSpace(c.FormValue("title")),
		Description:     strings.TrimSpace(c.FormValue("description")),
		Category:        c.FormValue("category"),
		Subcategory:     c.FormValue("subcategory"),
		Brand:           c.FormValue("brand"),
		Color:           c.FormValue("color"),
		Size:            c.FormValue("size"),
		Location:        strings.TrimSpace(c.FormValue("location")),
		LocationDetails: c.FormValue("locationDetails"),
		DateLostFound:   c.FormValue("dateLostFound"),
	}
	if v, err := strconv.ParseFloat(c.FormValue("rewardAmount"), 64); err == nil {
		req.RewardAmount = v
	}
	if v, err := strconv.ParseFloat(c.FormValue("value"), 64); err == nil {
		req.Value = v
	}
	return req
}

func validate(req *ItemRequest) map[string]string {
	errors := make(map[string]string)

	if req.Title == "" {
		errors["title"] = "Title is required!"
	}
	if req.Description == "" {
		errors["description"] = "Description is required!"
	}
	if req.Category == "" {
		errors["category"] = "Category is required!"
	}
	if req.Location == "" {
		errors["location"] = "Location is required!"
	}
	if req.RewardAmount < 0 {
		errors["rewardAmount"] = "Reward cannot be negative!"
	}

	return errors
}

// Item validates a multipart post/edit form
func Item() fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := parseItemForm(c)

		if errors := validate(req); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedItem", req)
		return c.Next()
	}
}

// ItemJSON validates a JSON item payload (api routes, no image part)
func ItemJSON() fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(ItemRequest)
		if err := c.BodyParser(req); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		req.Title = strings.TrimSpace(req.Title)
		req.Description = strings.TrimSpace(req.Description)
		req.Location = strings.TrimSpace(req.Location)

		if errors := validate(req); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedItem", req)
		return c.Next()
	}
}

// Resolve validates the resolution payload
func Resolve() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ResolutionType string `json:"resolutionType"`
			ResolverID     *uint  `json:"resolverId"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		switch reqData.ResolutionType {
		case models.ResolutionClaimed, models.ResolutionReturned, models.ResolutionDonated:
		default:
			errors["resolutionType"] = "Resolution type must be claimed, returned or donated!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedResolve", reqData)
		return c.Next()
	}
}
