package notificationController_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"lnf/config"
	notificationController "lnf/controllers/notifications"
	"lnf/database"
	"lnf/middleware"
	"lnf/models"
	notificationRoutes "lnf/routers/notificationRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type apiResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.LoadConfig()
	config.AppConfig.JWTKey = "test-secret"
	db := database.ConnectTestDb()

	app := fiber.New()
	notificationRoutes.SetupNotificationRoutes(app)
	return app, db
}

func createUser(t *testing.T, db *gorm.DB, username string) (*models.User, string) {
	t.Helper()

	user := &models.User{
		Username:  username,
		Email:     username + "@campus.edu",
		Password:  "x",
		FirstName: "Test",
		LastName:  "User",
	}
	require.NoError(t, db.Create(user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Username, user.Email)
	require.NoError(t, err)
	return user, token
}

func do(t *testing.T, app *fiber.App, method, path, token string) (int, apiResponse) {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed apiResponse
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp.StatusCode, parsed
}

func TestFanOutSkipsPoster(t *testing.T) {
	_, db := setupApp(t)

	poster, _ := createUser(t, db, "poster")
	w1, _ := createUser(t, db, "w1")
	w2, _ := createUser(t, db, "w2")

	item := &models.Item{
		ID:          "aaaa1111",
		Type:        models.ItemTypeLost,
		Title:       "Lost Badge",
		Description: "staff badge",
		Category:    "Documents",
		Location:    "Lab 3",
		UserID:      poster.ID,
	}
	require.NoError(t, db.Create(item).Error)

	require.NoError(t, notificationController.FanOutLostItem(item))

	var total int64
	db.Model(&models.Notification{}).Count(&total)
	assert.EqualValues(t, 2, total)

	for _, id := range []uint{w1.ID, w2.ID} {
		var n models.Notification
		require.NoError(t, db.Where("user_id = ?", id).First(&n).Error)
		assert.Equal(t, models.NotificationLostItem, n.Type)
		assert.Equal(t, item.ID, n.ItemID)
		assert.False(t, n.IsRead)
	}
}

func TestFanOutSkipsInactiveUsers(t *testing.T) {
	_, db := setupApp(t)

	poster, _ := createUser(t, db, "poster")
	createUser(t, db, "active1")
	gone, _ := createUser(t, db, "gone")
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", gone.ID).Update("active", false).Error)

	item := &models.Item{
		ID: "aaaa1111", Type: models.ItemTypeLost, Title: "Lost Badge",
		Description: "x", Category: "Documents", Location: "Lab 3", UserID: poster.ID,
	}
	require.NoError(t, db.Create(item).Error)
	require.NoError(t, notificationController.FanOutLostItem(item))

	var total int64
	db.Model(&models.Notification{}).Count(&total)
	assert.EqualValues(t, 1, total)
}

func TestMarkReadOwnNotification(t *testing.T) {
	app, db := setupApp(t)

	user, token := createUser(t, db, "reader")
	notificationController.Notify(user.ID, "Hello", "msg", models.NotificationLostItem, "")

	var n models.Notification
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&n).Error)
	require.False(t, n.IsRead)

	code, _ := do(t, app, "PATCH", fmt.Sprintf("/notifications/%d/read", n.ID), token)
	assert.Equal(t, fiber.StatusOK, code)

	require.NoError(t, db.First(&n, n.ID).Error)
	assert.True(t, n.IsRead)
}

// Marking someone else's notification is indistinguishable from a missing one.
func TestMarkReadForeignNotification(t *testing.T) {
	app, db := setupApp(t)

	owner, _ := createUser(t, db, "owner")
	_, intruderToken := createUser(t, db, "intruder")
	notificationController.Notify(owner.ID, "Hello", "msg", models.NotificationLostItem, "")

	var n models.Notification
	require.NoError(t, db.Where("user_id = ?", owner.ID).First(&n).Error)

	code, _ := do(t, app, "PATCH", fmt.Sprintf("/notifications/%d/read", n.ID), intruderToken)
	assert.Equal(t, fiber.StatusNotFound, code)

	require.NoError(t, db.First(&n, n.ID).Error)
	assert.False(t, n.IsRead)
}

func TestUnreadCount(t *testing.T) {
	app, db := setupApp(t)

	user, token := createUser(t, db, "reader")
	notificationController.Notify(user.ID, "One", "msg", models.NotificationLostItem, "")
	notificationController.Notify(user.ID, "Two", "msg", models.NotificationLostItem, "")
	notificationController.Notify(user.ID, "Three", "msg", models.NotificationLostItem, "")

	var n models.Notification
	require.NoError(t, db.Where("user_id = ? AND title = ?", user.ID, "Two").First(&n).Error)
	require.NoError(t, db.Model(&n).Update("is_read", true).Error)

	code, resp := do(t, app, "GET", "/notifications/unread/count", token)
	require.Equal(t, fiber.StatusOK, code)

	var data struct {
		Unread int64 `json:"unread"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.EqualValues(t, 2, data.Unread)
}

func TestListNotificationsNewestFirst(t *testing.T) {
	app, db := setupApp(t)

	user, token := createUser(t, db, "reader")
	notificationController.Notify(user.ID, "One", "msg", models.NotificationLostItem, "")
	notificationController.Notify(user.ID, "Two", "msg", models.NotificationLostItem, "")

	code, resp := do(t, app, "GET", "/notifications/", token)
	require.Equal(t, fiber.StatusOK, code)

	var list []models.Notification
	require.NoError(t, json.Unmarshal(resp.Data, &list))
	assert.Len(t, list, 2)
}
