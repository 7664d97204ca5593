// controllers/review_controller.go
package controllers

import (
	"errors"
	"path/filepath"
	"strconv"

	"github.com/nanho-work/theUBoo/entity"
	"github.com/nanho-work/theUBoo/pkg/resp"
	"github.com/nanho-work/theUBoo/services"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	reviewService *services.ReviewService
}

func NewReviewController(service *services.ReviewService) *ReviewController {
	return &ReviewController{reviewService: service}
}

// GET /reviews?page=
// Visible reviews only, newest first, 10 per page. The two-card row layout is
// a client concern.
func (ctl *ReviewController) ListPublic(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	reviews, total, err := ctl.reviewService.ListVisible(page)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{
		"items":    reviews,
		"total":    total,
		"page":     page,
		"pageSize": services.ReviewPageSize,
	})
}

// POST /reviews (multipart)
// More than five attached images rejects the whole submission.
func (ctl *ReviewController) Create(c *gin.Context) {
	nickname := c.PostForm("nickname")
	password := c.PostForm("password")
	content := c.PostForm("content")
	if nickname == "" || password == "" || content == "" {
		resp.BadRequest(c, "nickname, password and content are required")
		return
	}

	var uploads []services.FileUpload
	form, err := c.MultipartForm()
	if err == nil && form != nil {
		headers := form.File["images"]
		if len(headers) > entity.MaxReviewImages {
			resp.BadRequest(c, "at most 5 images are allowed")
			return
		}
		for _, fh := range headers {
			f, err := fh.Open()
			if err != nil {
				resp.ServerError(c, err)
				return
			}
			defer f.Close()
			uploads = append(uploads, services.FileUpload{Filename: filepath.Base(fh.Filename), Reader: f})
		}
	}

	review, err := ctl.reviewService.Create(c.Request.Context(), nickname, password, content, uploads)
	if err != nil {
		if errors.Is(err, services.ErrTooManyImages) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, review)
}

// PATCH /reviews/:id
// The poster edits their own text after proving the 4-digit code.
func (ctl *ReviewController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		Password string `json:"password"`
		Content  string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Password == "" || req.Content == "" {
		resp.BadRequest(c, "password and content are required")
		return
	}

	if err := ctl.reviewService.UpdateByOwner(uint(id), req.Password, req.Content); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			resp.NotFound(c, "review not found")
		case errors.Is(err, services.ErrWrongPassword):
			resp.Forbidden(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"message": "review updated"})
}

// GET /admin/reviews
func (ctl *ReviewController) ListAdmin(c *gin.Context) {
	reviews, err := ctl.reviewService.ListAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": reviews})
}

// PATCH /admin/reviews/:id/visibility
func (ctl *ReviewController) SetVisibility(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		Visible *bool `json:"visible"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Visible == nil {
		resp.BadRequest(c, "visible is required")
		return
	}

	var err error
	if *req.Visible {
		err = ctl.reviewService.Unhide(uint(id))
	} else {
		err = ctl.reviewService.Hide(uint(id))
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "visibility updated"})
}
