// services/slide_service.go
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/nanho-work/theUBoo/entity"
	"github.com/nanho-work/theUBoo/repository"
	"github.com/nanho-work/theUBoo/storage"
)

type SlideService struct {
	Repo  *repository.SlideRepository
	Store storage.ObjectStore
}

func NewSlideService(repo *repository.SlideRepository, store storage.ObjectStore) *SlideService {
	return &SlideService{Repo: repo, Store: store}
}

func (s *SlideService) List() ([]entity.HomeSlide, error) {
	return s.Repo.FindAll()
}

// UploadToSlot fills an empty carousel slot. An occupied slot is rejected
// before anything reaches the object store; the image there must be deleted
// first.
func (s *SlideService) UploadToSlot(ctx context.Context, slot int, file FileUpload) (*entity.HomeSlide, error) {
	if slot < 0 || slot >= entity.SlideSlotCount {
		return nil, ErrSlotOutOfRange
	}
	existing, err := s.Repo.FindBySlot(slot)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrSlotOccupied
	}

	objectPath := fmt.Sprintf("intro-slides/slot-%d-%d.jpg", slot, time.Now().UnixMilli())
	url, err := s.Store.Upload(ctx, objectPath, file.Reader)
	if err != nil {
		return nil, err
	}

	slide := &entity.HomeSlide{Slot: slot, ImageURL: url}
	if err := s.Repo.Create(slide); err != nil {
		discard(ctx, s.Store, objectPath)
		return nil, err
	}
	return slide, nil
}

// DeleteSlot removes the object first, then the record, matching the original
// ordering. A malformed stored URL aborts before either.
func (s *SlideService) DeleteSlot(ctx context.Context, slot int) error {
	slide, err := s.Repo.FindBySlot(slot)
	if err != nil {
		return err
	}
	if slide == nil {
		return ErrNotFound
	}

	objectPath, err := storage.ObjectPathFromURL(slide.ImageURL)
	if err != nil {
		return err
	}
	if err := s.Store.Delete(ctx, objectPath); err != nil {
		return err
	}
	return s.Repo.DeleteBySlot(slot)
}
