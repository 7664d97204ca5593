package configs

import (
	"github.com/nanho-work/theUBoo/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {

	// Migrate the schema
	db.AutoMigrate(
		&entity.Admin{},
		&entity.MenuCategory{}, &entity.MenuItem{},
		&entity.Review{},
		&entity.Event{},
		&entity.HomeSlide{},
		&entity.StoreInfo{}, &entity.StorePhoto{},
		&entity.Introduction{},
	)
}
