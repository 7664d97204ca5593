package entity

import (
	"time"
)

// Introduction is the home-page intro text, a singleton like StoreInfo.
type Introduction struct {
	ID        uint      `gorm:"primarykey" json:"-"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	ImageURL  string    `json:"imageUrl"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Introduction) TableName() string { return "introductions" }

const IntroductionID uint = 1
