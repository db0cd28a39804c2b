package utils_test

import (
	"testing"
	"time"

	"lnf/config"
	"lnf/database"
	"lnf/models"
	"lnf/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDb(t *testing.T) *gorm.DB {
	t.Helper()
	config.LoadConfig()
	config.AppConfig.ItemExpiryDays = 30
	return database.ConnectTestDb()
}

func seedItemAt(t *testing.T, db *gorm.DB, id string, status models.ItemStatus, createdAt time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&models.Item{
		ID:          id,
		Type:        models.ItemTypeLost,
		Title:       "Item " + id,
		Description: "x",
		Category:    "Other",
		Location:    "Quad",
		Status:      status,
		UserID:      1,
		CreatedAt:   createdAt,
	}).Error)
}

func TestExpireStaleItems(t *testing.T) {
	db := setupDb(t)

	now := time.Now()
	seedItemAt(t, db, "old11111", models.ItemStatusActive, now.AddDate(0, 0, -45))
	seedItemAt(t, db, "new22222", models.ItemStatusActive, now.AddDate(0, 0, -5))
	seedItemAt(t, db, "res33333", models.ItemStatusResolved, now.AddDate(0, 0, -45))

	count := utils.ExpireStaleItems()
	assert.EqualValues(t, 1, count)

	status := func(id string) models.ItemStatus {
		var item models.Item
		require.NoError(t, db.Where("id = ?", id).First(&item).Error)
		return item.Status
	}

	assert.Equal(t, models.ItemStatusExpired, status("old11111"))
	assert.Equal(t, models.ItemStatusActive, status("new22222"))
	// resolved items stay resolved, the sweep only touches active ones
	assert.Equal(t, models.ItemStatusResolved, status("res33333"))
}

func TestExpireStaleItemsBoundary(t *testing.T) {
	db := setupDb(t)

	// just inside the window, must survive
	seedItemAt(t, db, "edge1111", models.ItemStatusActive, time.Now().AddDate(0, 0, -29))

	count := utils.ExpireStaleItems()
	assert.EqualValues(t, 0, count)

	var item models.Item
	require.NoError(t, db.Where("id = ?", "edge1111").First(&item).Error)
	assert.Equal(t, models.ItemStatusActive, item.Status)
}
