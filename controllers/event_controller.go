// controllers/event_controller.go
package controllers

import (
	"errors"
	"path/filepath"
	"strconv"

	"github.com/nanho-work/theUBoo/entity"
	"github.com/nanho-work/theUBoo/pkg/resp"
	"github.com/nanho-work/theUBoo/services"
	"github.com/nanho-work/theUBoo/storage"

	"github.com/gin-gonic/gin"
)

type EventController struct {
	eventService *services.EventService
}

func NewEventController(service *services.EventService) *EventController {
	return &EventController{eventService: service}
}

// GET /events?active=true
func (ctl *EventController) List(c *gin.Context) {
	var (
		events []entity.Event
		err    error
	)
	if c.Query("active") == "true" {
		events, err = ctl.eventService.ListActive(services.Today())
	} else {
		events, err = ctl.eventService.List()
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": events})
}

// GET /events/:id
func (ctl *EventController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	event, err := ctl.eventService.Get(uint(id))
	if err != nil {
		resp.NotFound(c, "event not found")
		return
	}
	resp.OK(c, event)
}

// POST /events/:id/views
// Fired once per detail open by the client.
func (ctl *EventController) IncrementViews(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ctl.eventService.IncrementViews(uint(id)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "event not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "views incremented"})
}

// POST /admin/events (multipart)
func (ctl *EventController) Create(c *gin.Context) {
	title := c.PostForm("title")
	description := c.PostForm("description")
	startDate := c.PostForm("startDate")
	endDate := c.PostForm("endDate")
	if title == "" || description == "" || startDate == "" || endDate == "" {
		resp.BadRequest(c, "title, description, startDate and endDate are required")
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

	event := &entity.Event{
		Title:       title,
		Description: description,
		StartDate:   startDate,
		EndDate:     endDate,
	}
	upload := services.FileUpload{Filename: filepath.Base(fh.Filename), Reader: f}

	if err := ctl.eventService.Create(c.Request.Context(), event, upload); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, event)
}

// PATCH /admin/events/:id (multipart, all fields optional)
func (ctl *EventController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	fields := map[string]interface{}{}
	if v := c.PostForm("title"); v != "" {
		fields["title"] = v
	}
	if v := c.PostForm("description"); v != "" {
		fields["description"] = v
	}
	if v := c.PostForm("startDate"); v != "" {
		fields["start_date"] = v
	}
	if v := c.PostForm("endDate"); v != "" {
		fields["end_date"] = v
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

	if len(fields) == 0 && upload == nil {
		resp.BadRequest(c, "nothing to update")
		return
	}

	if err := ctl.eventService.Update(c.Request.Context(), uint(id), fields, upload); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "event updated"})
}

// DELETE /admin/events/:id
func (ctl *EventController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ctl.eventService.Delete(c.Request.Context(), uint(id)); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			resp.NotFound(c, "event not found")
		case errors.Is(err, storage.ErrBadObjectURL):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"message": "event deleted"})
}
