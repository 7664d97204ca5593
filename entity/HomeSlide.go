package entity

import (
	"gorm.io/gorm"
)

// HomeSlide occupies one of ten fixed carousel slots (0-9). A populated slot
// must be deleted before it can take a new image.
type HomeSlide struct {
	gorm.Model
	Slot     int    `gorm:"uniqueIndex" json:"slot"`
	ImageURL string `json:"imageUrl"`
}

func (HomeSlide) TableName() string { return "intro_slides" }

const SlideSlotCount = 10
