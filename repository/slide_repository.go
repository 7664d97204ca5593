// repository/slide_repository.go
package repository

import (
	"errors"

	"github.com/nanho-work/theUBoo/entity"
	"gorm.io/gorm"
)

type SlideRepository struct {
	DB *gorm.DB
}

func NewSlideRepository(db *gorm.DB) *SlideRepository {
	return &SlideRepository{DB: db}
}

func (r *SlideRepository) FindAll() ([]entity.HomeSlide, error) {
	var slides []entity.HomeSlide
	err := r.DB.Order("slot asc").Find(&slides).Error
	return slides, err
}

// FindBySlot returns nil without error when the slot is empty.
func (r *SlideRepository) FindBySlot(slot int) (*entity.HomeSlide, error) {
	var slide entity.HomeSlide
	err := r.DB.Where("slot = ?", slot).First(&slide).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &slide, nil
}

func (r *SlideRepository) Create(slide *entity.HomeSlide) error {
	return r.DB.Create(slide).Error
}

// DeleteBySlot removes the row for good; a soft-deleted slide would keep the
// unique slot index occupied.
func (r *SlideRepository) DeleteBySlot(slot int) error {
	return r.DB.Unscoped().Where("slot = ?", slot).Delete(&entity.HomeSlide{}).Error
}
