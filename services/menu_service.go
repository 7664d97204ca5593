// services/menu_service.go
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/nanho-work/theUBoo/entity"
	"github.com/nanho-work/theUBoo/repository"
	"github.com/nanho-work/theUBoo/storage"
)

type MenuService struct {
	Repo  *repository.MenuRepository
	Store storage.ObjectStore
}

func NewMenuService(repo *repository.MenuRepository, store storage.ObjectStore) *MenuService {
	return &MenuService{Repo: repo, Store: store}
}

func (s *MenuService) List() ([]entity.MenuItem, error) {
	return s.Repo.FindAll()
}

func (s *MenuService) Get(id uint) (*entity.MenuItem, error) {
	return s.Repo.FindByID(id)
}

// Create uploads the image first, then writes the record with the issued URL.
// A failed record write deletes the object again.
func (s *MenuService) Create(ctx context.Context, item *entity.MenuItem, file FileUpload) error {
	ok, err := s.Repo.CategoryExists(item.Category)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidCategory
	}

	objectPath := "menus/" + file.Filename
	url, err := s.Store.Upload(ctx, objectPath, file.Reader)
	if err != nil {
		return err
	}
	item.ImageURL = url

	if err := s.Repo.Create(item); err != nil {
		discard(ctx, s.Store, objectPath)
		return err
	}
	return nil
}

// Update replaces fields in place. A new file goes to a timestamped path so
// the previous object keeps serving until the record points elsewhere.
func (s *MenuService) Update(ctx context.Context, id uint, fields map[string]interface{}, file *FileUpload) error {
	if cat, ok := fields["category"].(string); ok {
		exists, err := s.Repo.CategoryExists(cat)
		if err != nil {
			return err
		}
		if !exists {
			return ErrInvalidCategory
		}
	}

	objectPath := ""
	if file != nil {
		objectPath = fmt.Sprintf("menus/%d_%s", time.Now().UnixMilli(), file.Filename)
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

// Delete aborts before touching the record when the stored URL cannot be
// mapped back to an object path.
func (s *MenuService) Delete(ctx context.Context, id uint, imageURL string) error {
	objectPath, err := storage.ObjectPathFromURL(imageURL)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	return s.Store.Delete(ctx, objectPath)
}
