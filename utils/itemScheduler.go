package utils

import (
	"fmt"
	"log"
	"time"

	"lnf/config"
	"lnf/database"
	"lnf/models"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[ITEM-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// ExpireStaleItems marks active posts older than the configured expiry window
// as expired. Returns the number of items transitioned.
func ExpireStaleItems() int64 {
	db := database.Database.Db
	cutoff := time.Now().AddDate(0, 0, -config.AppConfig.ItemExpiryDays)

	result := db.Model(&models.Item{}).
		Where("status = ? AND created_at < ?", models.ItemStatusActive, cutoff).
		Update("status", models.ItemStatusExpired)
	if result.Error != nil {
		logScheduler("Error expiring stale items: " + result.Error.Error())
		return 0
	}

	if result.RowsAffected > 0 {
		logScheduler(fmt.Sprintf("Expired %d stale items", result.RowsAffected))
	}
	return result.RowsAffected
}

// StartItemScheduler runs the expiry sweep hourly
func StartItemScheduler() *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("@hourly", func() {
		ExpireStaleItems()
	})
	if err != nil {
		log.Fatalf("Failed to schedule item expiry job: %v", err)
	}

	c.Start()
	logScheduler("Item expiry scheduler started (hourly)")
	return c
}
