// services/review_service.go
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/nanho-work/theUBoo/entity"
	"github.com/nanho-work/theUBoo/repository"
	"github.com/nanho-work/theUBoo/storage"
	"golang.org/x/crypto/bcrypt"
)

// ReviewPageSize is the public feed page length.
const ReviewPageSize = 10

type ReviewService struct {
	Repo  *repository.ReviewRepository
	Store storage.ObjectStore
}

func NewReviewService(repo *repository.ReviewRepository, store storage.ObjectStore) *ReviewService {
	return &ReviewService{Repo: repo, Store: store}
}

// Create posts a visitor review. More than MaxReviewImages attachments
// rejects the whole submission, not just the excess. The password is hashed
// before it ever reaches the database.
func (s *ReviewService) Create(ctx context.Context, nickname, password, content string, files []FileUpload) (*entity.Review, error) {
	if len(files) > entity.MaxReviewImages {
		return nil, ErrTooManyImages
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var urls []string
	var paths []string
	for _, f := range files {
		objectPath := fmt.Sprintf("reviews/%d_%s", time.Now().UnixMilli(), f.Filename)
		url, err := s.Store.Upload(ctx, objectPath, f.Reader)
		if err != nil {
			for _, p := range paths {
				discard(ctx, s.Store, p)
			}
			return nil, err
		}
		urls = append(urls, url)
		paths = append(paths, objectPath)
	}

	review := &entity.Review{
		Nickname:  nickname,
		Password:  string(hash),
		Content:   content,
		Images:    urls,
		IsVisible: true,
	}
	if err := s.Repo.Create(review); err != nil {
		for _, p := range paths {
			discard(ctx, s.Store, p)
		}
		return nil, err
	}
	return review, nil
}

// ListVisible returns one page of the public feed (newest first) plus the
// total visible count so the client can draw pagination.
func (s *ReviewService) ListVisible(page int) ([]entity.Review, int, error) {
	reviews, err := s.Repo.FindVisible()
	if err != nil {
		return nil, 0, err
	}
	total := len(reviews)

	if page < 1 {
		page = 1
	}
	start := (page - 1) * ReviewPageSize
	if start >= total {
		return []entity.Review{}, total, nil
	}
	end := start + ReviewPageSize
	if end > total {
		end = total
	}
	return reviews[start:end], total, nil
}

func (s *ReviewService) ListAll() ([]entity.Review, error) {
	return s.Repo.FindAll()
}

func (s *ReviewService) Hide(id uint) error {
	return s.Repo.SetVisibility(id, false)
}

func (s *ReviewService) Unhide(id uint) error {
	return s.Repo.SetVisibility(id, true)
}

// UpdateByOwner lets the original poster edit their text after proving the
// 4-digit code.
func (s *ReviewService) UpdateByOwner(id uint, password, content string) error {
	review, err := s.Repo.FindByID(id)
	if err != nil {
		return ErrNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(review.Password), []byte(password)); err != nil {
		return ErrWrongPassword
	}
	return s.Repo.UpdateFields(id, map[string]interface{}{"content": content})
}
