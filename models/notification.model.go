package models

import "gorm.io/gorm"

// Notification types
const (
	NotificationLostItem     = "lost_item"
	NotificationFoundItem    = "found_item"
	NotificationItemResolved = "item_resolved"
	NotificationOrder        = "order"
)

type Notification struct {
	gorm.Model
	UserID  uint   `gorm:"not null;index" json:"userId"`
	Title   string `gorm:"not null" json:"title"`
	Message string `gorm:"type:text;not null" json:"message"`
	Type    string `gorm:"type:varchar(50);not null" json:"type"`
	IsRead  bool   `gorm:"not null;default:false" json:"isRead"`
	ItemID  string `gorm:"size:8;default:''" json:"itemId"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Notification) TableName() string {
	return "notifications"
}
