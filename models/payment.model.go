package models

import (
	"time"

	"gorm.io/gorm"
)

// PaymentStatus values
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// Payment methods. Wallet is the only one wired up.
const (
	PaymentMethodWallet = "wallet"
)

// Payment records settlement detail for an Order. One-to-one with Order.
type Payment struct {
	gorm.Model
	OrderID       uint          `gorm:"not null;uniqueIndex" json:"orderId"`
	Amount        float64       `gorm:"not null" json:"amount"`
	PaymentMethod string        `gorm:"type:varchar(50);not null" json:"paymentMethod"`
	Status        PaymentStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	TransactionID string        `gorm:"type:varchar(100)" json:"transactionId"`
	CompletedAt   *time.Time    `json:"completedAt"`

	Order Order `gorm:"foreignKey:OrderID" json:"-"`
}

func (Payment) TableName() string {
	return "payments"
}
