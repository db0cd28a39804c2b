package notificationController

import (
	"fmt"
	"log"

	"lnf/database"
	"lnf/middleware"
	"lnf/models"
	"lnf/utils"

	"github.com/gofiber/fiber/v2"
)

// FanOutLostItem creates one notification for every user other than the
// poster, in a single transaction, and fires the alert emails. Exactly N-1
// rows for N users at post time.
func FanOutLostItem(item *models.Item) error {
	db := database.Database.Db

	var users []models.User
	if err := db.Where("id <> ? AND active = ?", item.UserID, true).Find(&users).Error; err != nil {
		return err
	}

	if len(users) == 0 {
		return nil
	}

	notifications := make([]models.Notification, 0, len(users))
	for _, user := range users {
		notifications = append(notifications, models.Notification{
			UserID: user.ID,
			Title:  "New Lost Item Posted: " + item.Title,
			Message: fmt.Sprintf(
				"A new lost item '%s' was posted in %s. Check if you've found something similar!",
				item.Title, item.Location,
			),
			Type:   models.NotificationLostItem,
			ItemID: item.ID,
		})
	}

	if err := db.Create(&notifications).Error; err != nil {
		return err
	}

	for _, user := range users {
		utils.SendLostItemAlertEmail(user.Email, item.Title, item.Location)
	}

	return nil
}

// Notify creates a single notification for one user
func Notify(userID uint, title, message, notifType, itemID string) {
	notification := models.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    notifType,
		ItemID:  itemID,
	}
	if err := database.Database.Db.Create(&notification).Error; err != nil {
		log.Printf("Error creating notification: %v", err)
	}
}

// ListNotifications returns the caller's inbox, newest first
func ListNotifications(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var notifications []models.Notification
	if err := database.Database.Db.
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Find(&notifications).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch notifications!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notifications fetched!", notifications)
}

// MarkRead flips the read flag. 404 unless the notification belongs to the caller.
func MarkRead(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)
	notificationId := c.Params("id")

	db := database.Database.Db

	var notification models.Notification
	if err := db.Where("id = ? AND user_id = ?", notificationId, userId).First(&notification).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Notification not found!", nil)
	}

	notification.IsRead = true
	if err := db.Save(&notification).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update notification!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notification marked as read!", notification)
}

// UnreadCount returns the badge count for the caller
func UnreadCount(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var count int64
	if err := database.Database.Db.
		Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userId, false).
		Count(&count).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch unread count!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Unread count fetched!", fiber.Map{
		"unread": count,
	})
}
