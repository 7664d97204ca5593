// repository/review_repository.go
package repository

import (
	"github.com/nanho-work/theUBoo/entity"
	"gorm.io/gorm"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

// FindVisible returns public reviews, newest first.
func (r *ReviewRepository) FindVisible() ([]entity.Review, error) {
	var reviews []entity.Review
	err := r.DB.Where("is_visible = ?", true).Order("created_at desc, id desc").Find(&reviews).Error
	return reviews, err
}

// FindAll returns every review for the admin console, newest first.
func (r *ReviewRepository) FindAll() ([]entity.Review, error) {
	var reviews []entity.Review
	err := r.DB.Order("created_at desc, id desc").Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) FindByID(id uint) (*entity.Review, error) {
	var review entity.Review
	err := r.DB.First(&review, id).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepository) Create(review *entity.Review) error {
	return r.DB.Create(review).Error
}

func (r *ReviewRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	return r.DB.Model(&entity.Review{}).Where("id = ?", id).Updates(fields).Error
}

func (r *ReviewRepository) SetVisibility(id uint, visible bool) error {
	return r.DB.Model(&entity.Review{}).Where("id = ?", id).Update("is_visible", visible).Error
}
