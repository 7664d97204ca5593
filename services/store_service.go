// services/store_service.go
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/nanho-work/theUBoo/entity"
	"github.com/nanho-work/theUBoo/repository"
	"github.com/nanho-work/theUBoo/storage"
)

type StoreService struct {
	Repo  *repository.StoreRepository
	Store storage.ObjectStore
}

func NewStoreService(repo *repository.StoreRepository, store storage.ObjectStore) *StoreService {
	return &StoreService{Repo: repo, Store: store}
}

func (s *StoreService) SaveInfo(info *entity.StoreInfo) error {
	return s.Repo.SaveInfo(info)
}

func (s *StoreService) FetchInfo() (*entity.StoreInfo, error) {
	return s.Repo.FetchInfo()
}

func (s *StoreService) AddPhoto(ctx context.Context, file FileUpload) (*entity.StorePhoto, error) {
	objectPath := fmt.Sprintf("store-images/store-%d.jpg", time.Now().UnixMilli())
	url, err := s.Store.Upload(ctx, objectPath, file.Reader)
	if err != nil {
		return nil, err
	}

	photo := &entity.StorePhoto{ImageURL: url}
	if err := s.Repo.AddPhoto(photo); err != nil {
		discard(ctx, s.Store, objectPath)
		return nil, err
	}
	return photo, nil
}

func (s *StoreService) Photos() ([]entity.StorePhoto, error) {
	return s.Repo.FindPhotos()
}

// RemovePhoto deletes a gallery entry addressed by its public URL. The record
// is resolved first so a missing target surfaces before the object goes away.
func (s *StoreService) RemovePhoto(ctx context.Context, imageURL string) error {
	objectPath, err := storage.ObjectPathFromURL(imageURL)
	if err != nil {
		return err
	}

	photo, err := s.Repo.FindPhotoByURL(imageURL)
	if err != nil {
		return err
	}
	if photo == nil {
		return ErrNotFound
	}

	if err := s.Store.Delete(ctx, objectPath); err != nil {
		return err
	}
	return s.Repo.DeletePhoto(photo.ID)
}

// SaveIntroduction overwrites the home intro. The image is optional.
func (s *StoreService) SaveIntroduction(ctx context.Context, title, body string, file *FileUpload) (*entity.Introduction, error) {
	intro := &entity.Introduction{Title: title, Body: body}

	objectPath := ""
	if file != nil {
		objectPath = "introductions/" + file.Filename
		url, err := s.Store.Upload(ctx, objectPath, file.Reader)
		if err != nil {
			return nil, err
		}
		intro.ImageURL = url
	}

	if err := s.Repo.SaveIntroduction(intro); err != nil {
		if objectPath != "" {
			discard(ctx, s.Store, objectPath)
		}
		return nil, err
	}
	return intro, nil
}

func (s *StoreService) FetchIntroduction() (*entity.Introduction, error) {
	return s.Repo.FetchIntroduction()
}
