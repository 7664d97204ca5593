// repository/store_repository.go
package repository

import (
	"errors"

	"github.com/nanho-work/theUBoo/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StoreRepository covers the store section: the StoreInfo singleton, the
// photo gallery and the Introduction singleton.
type StoreRepository struct {
	DB *gorm.DB
}

func NewStoreRepository(db *gorm.DB) *StoreRepository {
	return &StoreRepository{DB: db}
}

// SaveInfo overwrites the singleton row.
func (r *StoreRepository) SaveInfo(info *entity.StoreInfo) error {
	info.ID = entity.StoreInfoID
	return r.DB.Clauses(clause.OnConflict{UpdateAll: true}).Create(info).Error
}

// FetchInfo returns nil without error when nothing has been saved yet.
func (r *StoreRepository) FetchInfo() (*entity.StoreInfo, error) {
	var info entity.StoreInfo
	err := r.DB.First(&info, entity.StoreInfoID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (r *StoreRepository) AddPhoto(photo *entity.StorePhoto) error {
	return r.DB.Create(photo).Error
}

func (r *StoreRepository) FindPhotos() ([]entity.StorePhoto, error) {
	var photos []entity.StorePhoto
	err := r.DB.Order("id asc").Find(&photos).Error
	return photos, err
}

func (r *StoreRepository) FindPhotoByURL(imageURL string) (*entity.StorePhoto, error) {
	var photo entity.StorePhoto
	err := r.DB.Where("image_url = ?", imageURL).First(&photo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

func (r *StoreRepository) DeletePhoto(id uint) error {
	return r.DB.Delete(&entity.StorePhoto{}, id).Error
}

func (r *StoreRepository) SaveIntroduction(intro *entity.Introduction) error {
	intro.ID = entity.IntroductionID
	return r.DB.Clauses(clause.OnConflict{UpdateAll: true}).Create(intro).Error
}

func (r *StoreRepository) FetchIntroduction() (*entity.Introduction, error) {
	var intro entity.Introduction
	err := r.DB.First(&intro, entity.IntroductionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &intro, nil
}
