package models

import "gorm.io/gorm"

// MarketStatus is the sale state of a marketplace listing
type MarketStatus string

const (
	MarketStatusAvailable MarketStatus = "available"
	MarketStatusSold      MarketStatus = "sold"
	MarketStatusReserved  MarketStatus = "reserved"
)

// Item conditions
const (
	ConditionNew     = "new"
	ConditionLikeNew = "like_new"
	ConditionGood    = "good"
	ConditionFair    = "fair"
)

// MarketItem is a secondhand good listed for sale, distinct from a
// lost/found post. Not editable after creation; only its status moves.
type MarketItem struct {
	gorm.Model
	SellerID    uint         `gorm:"not null;index" json:"sellerId"`
	Title       string       `gorm:"not null" json:"title"`
	Description string       `gorm:"type:text;not null" json:"description"`
	Price       float64      `gorm:"not null" json:"price"`
	Condition   string       `gorm:"type:varchar(50);not null" json:"condition"`
	Category    string       `gorm:"not null" json:"category"`
	Image       string       `gorm:"default:''" json:"image"`
	Status      MarketStatus `gorm:"type:varchar(20);not null;default:'available';index" json:"status"`

	Seller User `gorm:"foreignKey:SellerID" json:"-"`
}

func (MarketItem) TableName() string {
	return "market_items"
}
