// controllers/slide_controller.go
package controllers

import (
	"errors"
	"path/filepath"
	"strconv"

	"github.com/nanho-work/theUBoo/pkg/resp"
	"github.com/nanho-work/theUBoo/services"
	"github.com/nanho-work/theUBoo/storage"

	"github.com/gin-gonic/gin"
)

type SlideController struct {
	slideService *services.SlideService
}

func NewSlideController(service *services.SlideService) *SlideController {
	return &SlideController{slideService: service}
}

// GET /admin/slides
func (ctl *SlideController) List(c *gin.Context) {
	slides, err := ctl.slideService.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": slides})
}

// POST /admin/slides/:slot (multipart)
// An occupied slot answers 409; the existing image must be deleted first.
func (ctl *SlideController) Upload(c *gin.Context) {
	slot, err := strconv.Atoi(c.Param("slot"))
	if err != nil {
		resp.BadRequest(c, "slot must be a number")
		return
	}

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

	slide, err := ctl.slideService.UploadToSlot(c.Request.Context(), slot, services.FileUpload{
		Filename: filepath.Base(fh.Filename),
		Reader:   f,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSlotOutOfRange):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrSlotOccupied):
			resp.Conflict(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, slide)
}

// DELETE /admin/slides/:slot
func (ctl *SlideController) Delete(c *gin.Context) {
	slot, err := strconv.Atoi(c.Param("slot"))
	if err != nil {
		resp.BadRequest(c, "slot must be a number")
		return
	}

	if err := ctl.slideService.DeleteSlot(c.Request.Context(), slot); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			resp.NotFound(c, "slide not found")
		case errors.Is(err, storage.ErrBadObjectURL):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"message": "slide deleted"})
}
