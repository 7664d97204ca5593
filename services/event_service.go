// services/event_service.go
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/nanho-work/theUBoo/entity"
	"github.com/nanho-work/theUBoo/repository"
	"github.com/nanho-work/theUBoo/storage"
)

type EventService struct {
	Repo  *repository.EventRepository
	Store storage.ObjectStore
}

func NewEventService(repo *repository.EventRepository, store storage.ObjectStore) *EventService {
	return &EventService{Repo: repo, Store: store}
}

func (s *EventService) List() ([]entity.Event, error) {
	return s.Repo.FindAll()
}

// ListActive filters to events whose date window contains today, bounds
// inclusive. today is a "2006-01-02" string.
func (s *EventService) ListActive(today string) ([]entity.Event, error) {
	events, err := s.Repo.FindAll()
	if err != nil {
		return nil, err
	}
	active := make([]entity.Event, 0, len(events))
	for _, e := range events {
		if e.ActiveOn(today) {
			active = append(active, e)
		}
	}
	return active, nil
}

func (s *EventService) Get(id uint) (*entity.Event, error) {
	return s.Repo.FindByID(id)
}

// Create needs the record id to build the object path, so the row is written
// first and rolled back if the upload or the URL write fails.
func (s *EventService) Create(ctx context.Context, event *entity.Event, file FileUpload) error {
	event.Views = 0
	event.Participants = 0
	if err := s.Repo.Create(event); err != nil {
		return err
	}

	objectPath := fmt.Sprintf("events/%d/%s", event.ID, file.Filename)
	url, err := s.Store.Upload(ctx, objectPath, file.Reader)
	if err != nil {
		s.Repo.Delete(event.ID)
		return err
	}

	if err := s.Repo.UpdateFields(event.ID, map[string]interface{}{"image_url": url}); err != nil {
		discard(ctx, s.Store, objectPath)
		s.Repo.Delete(event.ID)
		return err
	}
	event.ImageURL = url
	return nil
}

func (s *EventService) Update(ctx context.Context, id uint, fields map[string]interface{}, file *FileUpload) error {
	objectPath := ""
	if file != nil {
		objectPath = fmt.Sprintf("events/%d/%s", id, file.Filename)
		url, err := s.Store.Upload(ctx, objectPath, file.Reader)
		if err != nil {
			return err
		}
		fields["image_url"] = url
	}

	if err := s.Repo.UpdateFields(id, fields); err != nil {
		if objectPath != "" {
			discard(ctx, s.Store, objectPath)
		}
		return err
	}
	return nil
}

// Delete removes the record and its image. A stored URL that cannot be parsed
// aborts the whole operation, leaving the record in place.
func (s *EventService) Delete(ctx context.Context, id uint) error {
	event, err := s.Repo.FindByID(id)
	if err != nil {
		return ErrNotFound
	}

	objectPath := ""
	if event.ImageURL != "" {
		objectPath, err = storage.ObjectPathFromURL(event.ImageURL)
		if err != nil {
			return err
		}
	}

	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	if objectPath != "" {
		return s.Store.Delete(ctx, objectPath)
	}
	return nil
}

// IncrementViews is a plain read-modify-write; concurrent detail opens can
// lose an increment. Called once per detail open.
func (s *EventService) IncrementViews(id uint) error {
	event, err := s.Repo.FindByID(id)
	if err != nil {
		return ErrNotFound
	}
	return s.Repo.SetViews(id, event.Views+1)
}

// Today formats the current date the way event windows are stored.
func Today() string {
	return time.Now().Format("2006-01-02")
}
