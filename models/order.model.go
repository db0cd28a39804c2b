package models

import "gorm.io/gorm"

// OrderStatus values
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order records a single marketplace purchase. Immutable after creation.
type Order struct {
	gorm.Model
	BuyerID  uint        `gorm:"not null;index" json:"buyerId"`
	SellerID uint        `gorm:"not null;index" json:"sellerId"`
	ItemID   uint        `gorm:"not null;index" json:"itemId"`
	Amount   float64     `gorm:"not null" json:"amount"`
	Status   OrderStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`

	Buyer  User       `gorm:"foreignKey:BuyerID" json:"-"`
	Seller User       `gorm:"foreignKey:SellerID" json:"-"`
	Item   MarketItem `gorm:"foreignKey:ItemID" json:"-"`
}

func (Order) TableName() string {
	return "orders"
}
