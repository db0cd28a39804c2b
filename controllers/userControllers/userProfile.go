package userController

import (
	"errors"
	"log"
	"strings"

	"lnf/database"
	"lnf/middleware"
	"lnf/models"
	"lnf/utils"

	"github.com/gofiber/fiber/v2"
)

// Dashboard returns the caller's posts split by type plus notification
// summary (unread count and five most recent).
func Dashboard(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)
	db := database.Database.Db

	var lostItems, foundItems []models.Item
	if err := db.Where("user_id = ? AND type = ?", userId, models.ItemTypeLost).
		Order("created_at DESC").Find(&lostItems).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard!", nil)
	}
	if err := db.Where("user_id = ? AND type = ?", userId, models.ItemTypeFound).
		Order("created_at DESC").Find(&foundItems).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard!", nil)
	}

	var unread int64
	db.Model(&models.Notification{}).Where("user_id = ? AND is_read = ?", userId, false).Count(&unread)

	var recentNotifications []models.Notification
	db.Where("user_id = ?", userId).Order("created_at DESC").Limit(5).Find(&recentNotifications)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched!", fiber.Map{
		"lostItems":           lostItems,
		"foundItems":          foundItems,
		"unreadNotifications": unread,
		"recentNotifications": recentNotifications,
	})
}

// GetProfile returns the caller's profile
func GetProfile(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND active = ?", userId, true).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched!", user)
}

// UpdateProfile edits the caller's profile fields. Identity fields
// (username, email, wallet) are not editable here.
func UpdateProfile(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND active = ?", userId, true).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	reqData := new(struct {
		FirstName      string `json:"firstName"`
		LastName       string `json:"lastName"`
		Phone          string `json:"phone"`
		Bio            string `json:"bio"`
		School         string `json:"school"`
		Major          string `json:"major"`
		GraduationYear int    `json:"graduationYear"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if strings.TrimSpace(reqData.FirstName) != "" {
		user.FirstName = strings.TrimSpace(reqData.FirstName)
	}
	if strings.TrimSpace(reqData.LastName) != "" {
		user.LastName = strings.TrimSpace(reqData.LastName)
	}
	user.Phone = reqData.Phone
	user.Bio = reqData.Bio
	user.School = reqData.School
	user.Major = reqData.Major
	if reqData.GraduationYear > 0 {
		user.GraduationYear = reqData.GraduationYear
	}

	// Profile image arrives as an optional multipart part
	if file, err := c.FormFile("profileImage"); err == nil && file != nil {
		saved, err := utils.SaveUploadedImage(file)
		if err != nil {
			if errors.Is(err, utils.ErrFileType) || errors.Is(err, utils.ErrFileSize) {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
			}
			log.Printf("Error saving upload: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store image!", nil)
		}
		user.ProfileImage = saved
	}

	if err := database.Database.Db.Save(&user).Error; err != nil {
		log.Printf("Error updating profile: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated!", user)
}

// GetReviews returns reviews the caller has received, with the aggregate
func GetReviews(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)
	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND active = ?", userId, true).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	var reviews []models.Review
	if err := db.Where("reviewed_id = ?", userId).Order("created_at DESC").Find(&reviews).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reviews!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched!", fiber.Map{
		"reviews":      reviews,
		"rating":       user.Rating,
		"totalRatings": user.TotalRatings,
	})
}
