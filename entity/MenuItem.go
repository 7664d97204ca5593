package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int64    `json:"price"`
	Category    string   `json:"category"`
	Tags        []string `gorm:"serializer:json" json:"tags"`
	ImageURL    string   `json:"imageUrl"`
}

func (MenuItem) TableName() string { return "menus" }
