package entity

import (
	"time"
)

// StoreInfo is a singleton row (fixed primary key) overwritten on every save.
type StoreInfo struct {
	ID          uint      `gorm:"primarykey" json:"-"`
	Address     string    `json:"address"`
	Zipcode     string    `json:"zipcode"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Description string    `json:"description"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (StoreInfo) TableName() string { return "store_info" }

// StoreInfoID is the fixed key of the singleton row.
const StoreInfoID uint = 1
