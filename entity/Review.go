package entity

import (
	"gorm.io/gorm"
)

// Review is a visitor post. Admins toggle visibility but never delete.
// Password holds a bcrypt hash of the visitor's 4-digit code and never
// leaves the server.
type Review struct {
	gorm.Model
	Nickname  string   `json:"nickname"`
	Password  string   `json:"-"`
	Content   string   `json:"content"`
	Images    []string `gorm:"serializer:json" json:"images"`
	IsVisible bool     `gorm:"default:true" json:"isVisible"`
}

func (Review) TableName() string { return "reviews" }

// MaxReviewImages caps attachments per review. A selection over the cap is
// rejected whole, not truncated.
const MaxReviewImages = 5
