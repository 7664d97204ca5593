// repository/event_repository.go
package repository

import (
	"github.com/nanho-work/theUBoo/entity"
	"gorm.io/gorm"
)

type EventRepository struct {
	DB *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{DB: db}
}

func (r *EventRepository) FindAll() ([]entity.Event, error) {
	var events []entity.Event
	err := r.DB.Order("created_at desc, id desc").Find(&events).Error
	return events, err
}

func (r *EventRepository) FindByID(id uint) (*entity.Event, error) {
	var event entity.Event
	err := r.DB.First(&event, id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) Create(event *entity.Event) error {
	return r.DB.Create(event).Error
}

func (r *EventRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	return r.DB.Model(&entity.Event{}).Where("id = ?", id).Updates(fields).Error
}

func (r *EventRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Event{}, id).Error
}

// SetViews writes the counter back after a read-modify-write increment.
func (r *EventRepository) SetViews(id uint, views int64) error {
	return r.DB.Model(&entity.Event{}).Where("id = ?", id).Update("views", views).Error
}
