// controllers/store_controller.go
package controllers

import (
	"errors"
	"path/filepath"

	"github.com/nanho-work/theUBoo/entity"
	"github.com/nanho-work/theUBoo/pkg/resp"
	"github.com/nanho-work/theUBoo/services"
	"github.com/nanho-work/theUBoo/storage"

	"github.com/gin-gonic/gin"
)

type StoreController struct {
	storeService *services.StoreService
	slideService *services.SlideService
}

func NewStoreController(storeService *services.StoreService, slideService *services.SlideService) *StoreController {
	return &StoreController{storeService: storeService, slideService: slideService}
}

// GET /store
// The home page fetches store info and the carousel slides together.
func (ctl *StoreController) Get(c *gin.Context) {
	info, err := ctl.storeService.FetchInfo()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	slides, err := ctl.slideService.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"storeInfo": info, "introSlides": slides})
}

// PUT /admin/store
func (ctl *StoreController) SaveInfo(c *gin.Context) {
	var req struct {
		Address     string   `json:"address"`
		Zipcode     string   `json:"zipcode"`
		Latitude    *float64 `json:"latitude"`
		Longitude   *float64 `json:"longitude"`
		Description string   `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Address == "" || req.Description == "" || req.Latitude == nil || req.Longitude == nil {
		resp.BadRequest(c, "address, latitude, longitude and description are required")
		return
	}

	info := &entity.StoreInfo{
		Address:     req.Address,
		Zipcode:     req.Zipcode,
		Latitude:    *req.Latitude,
		Longitude:   *req.Longitude,
		Description: req.Description,
	}
	if err := ctl.storeService.SaveInfo(info); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, info)
}

// GET /store/photos
func (ctl *StoreController) ListPhotos(c *gin.Context) {
	photos, err := ctl.storeService.Photos()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": photos})
}

// POST /admin/store/photos (multipart)
func (ctl *StoreController) AddPhoto(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		resp.BadRequest(c, "image is required")
		return
	}
	f, err := fh.Open()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	defer f.Close()

	photo, err := ctl.storeService.AddPhoto(c.Request.Context(), services.FileUpload{
		Filename: filepath.Base(fh.Filename),
		Reader:   f,
	})
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, photo)
}

// DELETE /admin/store/photos?url=
func (ctl *StoreController) RemovePhoto(c *gin.Context) {
	imageURL := c.Query("url")
	if imageURL == "" {
		resp.BadRequest(c, "url is required")
		return
	}

	if err := ctl.storeService.RemovePhoto(c.Request.Context(), imageURL); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			resp.NotFound(c, "photo not found")
		case errors.Is(err, storage.ErrBadObjectURL):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"message": "photo deleted"})
}

// GET /introduction
func (ctl *StoreController) GetIntroduction(c *gin.Context) {
	intro, err := ctl.storeService.FetchIntroduction()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, intro)
}

// POST /admin/introduction (multipart, image optional)
func (ctl *StoreController) SaveIntroduction(c *gin.Context) {
	title := c.PostForm("title")
	body := c.PostForm("body")
	if title == "" || body == "" {
		resp.BadRequest(c, "title and body are required")
		return
	}

	var upload *services.FileUpload
	if fh, err := c.FormFile("image"); err == nil {
		f, err := fh.Open()
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		defer f.Close()
		upload = &services.FileUpload{Filename: filepath.Base(fh.Filename), Reader: f}
	}

	intro, err := ctl.storeService.SaveIntroduction(c.Request.Context(), title, body, upload)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, intro)
}
