package itemController

import (
	"errors"
	"log"
	"strings"
	"time"

	notificationController "lnf/controllers/notifications"
	"lnf/database"
	"lnf/middleware"
	"lnf/models"
	"lnf/utils"
	itemValidator "lnf/validators/items"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Home returns the landing payload: the six most recent active posts of
// each type.
func Home(c *fiber.Ctx) error {
	db := database.Database.Db

	var recentLost, recentFound []models.Item

	if err := db.Where("type = ? AND status = ?", models.ItemTypeLost, models.ItemStatusActive).
		Order("created_at DESC").Limit(6).Find(&recentLost).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch items!", nil)
	}

	if err := db.Where("type = ? AND status = ?", models.ItemTypeFound, models.ItemStatusActive).
		Order("created_at DESC").Limit(6).Find(&recentFound).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch items!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Recent items fetched!", fiber.Map{
		"recentLost":  recentLost,
		"recentFound": recentFound,
		"categories":  utils.Categories,
	})
}

func createItem(c *fiber.Ctx, itemType models.ItemType, req *itemValidator.ItemRequest, image string) error {
	userId := c.Locals("userId").(uint)

	item := models.Item{
		ID:              utils.GenerateItemID(),
		Type:            itemType,
		Title:           req.Title,
		Description:     req.Description,
		Category:        req.Category,
		Subcategory:     req.Subcategory,
		Brand:           req.Brand,
		Color:           req.Color,
		Size:            req.Size,
		Value:           req.Value,
		Location:        req.Location,
		LocationDetails: req.LocationDetails,
		DateLostFound:   req.DateLostFound,
		RewardAmount:    req.RewardAmount,
		Image:           image,
		UserID:          userId,
	}

	if err := database.Database.Db.Create(&item).Error; err != nil {
		log.Printf("Error posting item: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "An error occurred while posting the item. Please try again.", nil)
	}

	// A lost post alerts the rest of campus
	if itemType == models.ItemTypeLost {
		if err := notificationController.FanOutLostItem(&item); err != nil {
			log.Printf("Error creating notifications: %v", err)
		}
		utils.PostLostItemWebhook(&item)
	}

	label := "Lost"
	if itemType == models.ItemTypeFound {
		label = "Found"
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, label+" item posted successfully!", item)
}

// PostItem handles the multipart lost/found post form
func PostItem(c *fiber.Ctx) error {
	itemType := c.Params("type")
	if !itemValidator.ValidItemType(itemType) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid item type", nil)
	}

	req, ok := c.Locals("validatedItem").(*itemValidator.ItemRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	image := ""
	if file, err := c.FormFile("image"); err == nil && file != nil {
		saved, err := utils.SaveUploadedImage(file)
		if err != nil {
			if errors.Is(err, utils.ErrFileType) || errors.Is(err, utils.ErrFileSize) {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
			}
			log.Printf("Error saving upload: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store image!", nil)
		}
		image = saved
	}

	return createItem(c, models.ItemType(itemType), req, image)
}

// CreateItemAPI is the pure-JSON variant of PostItem (no image part)
func CreateItemAPI(c *fiber.Ctx) error {
	itemType := c.Query("type", string(models.ItemTypeLost))
	if !itemValidator.ValidItemType(itemType) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid item type", nil)
	}

	req, ok := c.Locals("validatedItem").(*itemValidator.ItemRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	return createItem(c, models.ItemType(itemType), req, "")
}

// BrowseItems returns active items of a type, AND-filtered by exact
// category, substring location and a cross-field search term.
func BrowseItems(c *fiber.Ctx) error {
	itemType := c.Params("type")
	if !itemValidator.ValidItemType(itemType) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid item type", nil)
	}

	category := c.Query("category")
	location := c.Query("location")
	search := c.Query("search")

	db := database.Database.Db
	query := db.Where("type = ? AND status = ?", itemType, models.ItemStatusActive)

	if category != "" {
		query = query.Where("category = ?", category)
	}
	if location != "" {
		query = query.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(location)+"%")
	}
	if search != "" {
		term := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(location) LIKE ?",
			term, term, term,
		)
	}

	var items []models.Item
	if err := query.Order("created_at DESC").Find(&items).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch items!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Items fetched!", fiber.Map{
		"items":      items,
		"itemType":   itemType,
		"categories": utils.Categories,
	})
}

// ListItemsAPI returns active items across both types (JSON api surface)
func ListItemsAPI(c *fiber.Ctx) error {
	db := database.Database.Db
	query := db.Where("status = ?", models.ItemStatusActive)

	if itemType := c.Query("type"); itemType != "" {
		if !itemValidator.ValidItemType(itemType) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid item type", nil)
		}
		query = query.Where("type = ?", itemType)
	}

	var items []models.Item
	if err := query.Order("created_at DESC").Find(&items).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch items!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Items fetched!", items)
}

// ItemDetail returns one item and bumps its view counter
func ItemDetail(c *fiber.Ctx) error {
	itemId := c.Params("id")
	db := database.Database.Db

	var item models.Item
	if err := db.Where("id = ?", itemId).First(&item).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Item not found!", nil)
	}

	db.Model(&item).Update("views", gorm.Expr("views + 1"))
	item.Views++

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Item fetched!", item)
}

// loadOwnedItem fetches the item and enforces ownership. Two distinct
// failures: missing item is 404, foreign item is 403.
func loadOwnedItem(c *fiber.Ctx, itemId string) (*models.Item, error) {
	userId := c.Locals("userId").(uint)

	var item models.Item
	if err := database.Database.Db.Where("id = ?", itemId).First(&item).Error; err != nil {
		return nil, middleware.JsonResponse(c, fiber.StatusNotFound, false, "Item not found!", nil)
	}

	if item.UserID != userId {
		return nil, middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this item!", nil)
	}

	return &item, nil
}

// EditItem updates an owned post
func EditItem(c *fiber.Ctx) error {
	item, errResp := loadOwnedItem(c, c.Params("id"))
	if item == nil {
		return errResp
	}

	req, ok := c.Locals("validatedItem").(*itemValidator.ItemRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if file, err := c.FormFile("image"); err == nil && file != nil {
		saved, err := utils.SaveUploadedImage(file)
		if err != nil {
			if errors.Is(err, utils.ErrFileType) || errors.Is(err, utils.ErrFileSize) {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
			}
			log.Printf("Error saving upload: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store image!", nil)
		}
		item.Image = saved
	}

	item.Title = req.Title
	item.Description = req.Description
	item.Category = req.Category
	item.Subcategory = req.Subcategory
	item.Brand = req.Brand
	item.Color = req.Color
	item.Size = req.Size
	item.Value = req.Value
	item.Location = req.Location
	item.LocationDetails = req.LocationDetails
	item.DateLostFound = req.DateLostFound
	item.RewardAmount = req.RewardAmount

	if err := database.Database.Db.Save(item).Error; err != nil {
		log.Printf("Error updating item: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "An error occurred while updating the item. Please try again.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Item updated successfully!", item)
}

// DeleteItem removes an owned post
func DeleteItem(c *fiber.Ctx) error {
	item, errResp := loadOwnedItem(c, c.Params("id"))
	if item == nil {
		return errResp
	}

	if err := database.Database.Db.Delete(item).Error; err != nil {
		log.Printf("Error deleting item: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error deleting item", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Item deleted successfully", nil)
}

// ResolveItem closes out an owned post (claimed/returned/donated). When a
// resolver is named they get a thank-you notification.
func ResolveItem(c *fiber.Ctx) error {
	item, errResp := loadOwnedItem(c, c.Params("id"))
	if item == nil {
		return errResp
	}

	if item.Status != models.ItemStatusActive {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Item is not active!", nil)
	}

	reqData, ok := c.Locals("validatedResolve").(*struct {
		ResolutionType string `json:"resolutionType"`
		ResolverID     *uint  `json:"resolverId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if reqData.ResolverID != nil {
		if err := db.First(&models.User{}, *reqData.ResolverID).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Resolver not found!", nil)
		}
	}

	now := time.Now()
	item.Status = models.ItemStatusResolved
	item.ResolutionType = reqData.ResolutionType
	item.ResolutionDate = &now
	item.ResolverID = reqData.ResolverID

	if err := db.Save(item).Error; err != nil {
		log.Printf("Error resolving item: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to resolve item!", nil)
	}

	if reqData.ResolverID != nil {
		notificationController.Notify(
			*reqData.ResolverID,
			"Item Resolved: "+item.Title,
			"The owner marked '"+item.Title+"' as "+reqData.ResolutionType+". Thanks for helping out!",
			models.NotificationItemResolved,
			item.ID,
		)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Item resolved!", item)
}

// Search runs the global text search across active items
func Search(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Search query is required!", nil)
	}

	term := "%" + strings.ToLower(q) + "%"

	var items []models.Item
	if err := database.Database.Db.
		Where("status = ?", models.ItemStatusActive).
		Where(
			"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(location) LIKE ? OR LOWER(category) LIKE ?",
			term, term, term, term,
		).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Search failed!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Search results fetched!", fiber.Map{
		"items": items,
		"query": q,
	})
}

// Health is the liveness probe
func Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "ok",
	})
}
