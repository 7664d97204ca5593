package configs

import (
	"log"
	"strings"

	"github.com/nanho-work/theUBoo/entity"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the back-office account on first run. The email is
// normalized the same way login normalizes it.
func SeedAdmin() error {
	db := DB()
	email := strings.ToLower(strings.TrimSpace(getEnv("ADMIN_EMAIL", "")))
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.Admin{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.Admin{
		Email:    email,
		Password: string(hash),
	}
	return db.Create(&admin).Error
}

// SeedLookups inserts the fixed menu category set.
func SeedLookups() error {
	db := DB()

	for _, name := range entity.MenuCategories {
		db.FirstOrCreate(&entity.MenuCategory{}, entity.MenuCategory{Name: name})
	}

	log.Println("lookup tables seeded")
	return nil
}
