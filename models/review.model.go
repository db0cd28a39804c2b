package models

import "gorm.io/gorm"

type Review struct {
	gorm.Model
	ReviewerID uint   `gorm:"not null;index" json:"reviewerId"` // Who gave the review
	ReviewedID uint   `gorm:"not null;index" json:"reviewedId"` // Who it is about
	OrderID    uint   `gorm:"not null;index" json:"orderId"`
	Rating     int    `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"` // 1 to 5
	Comment    string `gorm:"type:text;default:''" json:"comment"`

	Reviewer User  `gorm:"foreignKey:ReviewerID" json:"-"`
	Reviewed User  `gorm:"foreignKey:ReviewedID" json:"-"`
	Order    Order `gorm:"foreignKey:OrderID" json:"-"`
}

func (Review) TableName() string {
	return "reviews"
}
