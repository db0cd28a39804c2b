package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username       string     `gorm:"unique;not null" json:"username"`
	Email          string     `gorm:"unique;not null" json:"email"`
	Password       string     `gorm:"not null" json:"-"`
	FirstName      string     `gorm:"not null" json:"firstName"`
	LastName       string     `gorm:"not null" json:"lastName"`
	Phone          string     `gorm:"default:''" json:"phone"`
	ProfileImage   string     `gorm:"default:''" json:"profileImage"`
	Bio            string     `gorm:"type:text;default:''" json:"bio"`
	School         string     `gorm:"default:''" json:"school"`
	Major          string     `gorm:"default:''" json:"major"`
	GraduationYear int        `gorm:"default:0" json:"graduationYear"`
	Active         bool       `gorm:"default:true" json:"active"`
	EmailVerified  bool       `gorm:"default:false" json:"emailVerified"`
	PhoneVerified  bool       `gorm:"default:false" json:"phoneVerified"`
	WalletBalance  float64    `gorm:"not null;default:0" json:"walletBalance"`
	Rating         float64    `gorm:"default:0" json:"rating"`
	TotalRatings   int        `gorm:"default:0" json:"totalRatings"`
	LastLogin      *time.Time `json:"lastLogin"`
}

func (User) TableName() string {
	return "users"
}
