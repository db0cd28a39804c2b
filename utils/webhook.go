package utils

import (
	"log"

	"lnf/config"
	"lnf/models"

	"github.com/go-resty/resty/v2"
)

// PostLostItemWebhook pushes a lost-item alert to the configured campus
// webhook (e.g. a chat channel). Fire-and-forget; failures are only logged.
func PostLostItemWebhook(item *models.Item) {
	url := config.AppConfig.WebhookURL
	if url == "" {
		return
	}

	go func() {
		client := resty.New()
		resp, err := client.R().
			SetHeader("Content-Type", "application/json").
			SetBody(map[string]interface{}{
				"event":    "lost_item_posted",
				"itemId":   item.ID,
				"title":    item.Title,
				"category": item.Category,
				"location": item.Location,
				"reward":   item.RewardAmount,
			}).
			Post(url)
		if err != nil {
			log.Printf("Error posting lost item webhook: %v", err)
			return
		}
		if resp.StatusCode() >= 300 {
			log.Printf("Lost item webhook returned status %d", resp.StatusCode())
		}
	}()
}
