package entity

import (
	"gorm.io/gorm"
)

// StorePhoto is a flat gallery entry; display order is insertion order.
type StorePhoto struct {
	gorm.Model
	ImageURL string `json:"imageUrl"`
}

func (StorePhoto) TableName() string { return "store_images" }
