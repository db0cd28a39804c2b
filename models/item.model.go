package models

import (
	"time"
)

// ItemType distinguishes lost posts from found posts
type ItemType string

const (
	ItemTypeLost  ItemType = "lost"
	ItemTypeFound ItemType = "found"
)

// ItemStatus is the lifecycle state of a post
type ItemStatus string

const (
	ItemStatusActive   ItemStatus = "active"
	ItemStatusResolved ItemStatus = "resolved"
	ItemStatusExpired  ItemStatus = "expired"
)

// Resolution types for a resolved item
const (
	ResolutionClaimed  = "claimed"
	ResolutionReturned = "returned"
	ResolutionDonated  = "donated"
)

// Item is a lost or found post. IDs are short uuid-derived strings so they
// can be shared verbally or printed on flyers.
type Item struct {
	ID              string     `gorm:"primaryKey;size:8" json:"id"`
	Type            ItemType   `gorm:"type:varchar(10);not null;index" json:"type"`
	Title           string     `gorm:"not null" json:"title"`
	Description     string     `gorm:"type:text;not null" json:"description"`
	Category        string     `gorm:"not null;index" json:"category"`
	Subcategory     string     `gorm:"default:''" json:"subcategory"`
	Brand           string     `gorm:"default:''" json:"brand"`
	Color           string     `gorm:"default:''" json:"color"`
	Size            string     `gorm:"default:''" json:"size"`
	Value           float64    `gorm:"default:0" json:"value"` // estimated value
	Location        string     `gorm:"not null" json:"location"`
	LocationDetails string     `gorm:"type:text;default:''" json:"locationDetails"`
	Latitude        *float64   `json:"latitude"`
	Longitude       *float64   `json:"longitude"`
	DateLostFound   string     `gorm:"default:''" json:"dateLostFound"`
	Image           string     `gorm:"default:''" json:"image"`
	Status          ItemStatus `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	ResolutionType  string     `gorm:"default:''" json:"resolutionType"`
	ResolutionDate  *time.Time `json:"resolutionDate"`
	Views           int        `gorm:"default:0" json:"views"`
	RewardAmount    float64    `gorm:"default:0" json:"rewardAmount"`

	UserID     uint  `gorm:"not null;index" json:"userId"`
	ResolverID *uint `json:"resolverId"`

	CreatedAt time.Time `json:"datePosted"`
	UpdatedAt time.Time `json:"updatedAt"`

	Owner    User  `gorm:"foreignKey:UserID" json:"-"`
	Resolver *User `gorm:"foreignKey:ResolverID" json:"-"`
}

func (Item) TableName() string {
	return "items"
}
