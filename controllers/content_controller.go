// controllers/content_controller.go
package controllers

import (
	"errors"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/nanho-work/theUBoo/entity"
	"github.com/nanho-work/theUBoo/pkg/resp"
	"github.com/nanho-work/theUBoo/services"
	"github.com/nanho-work/theUBoo/storage"

	"github.com/gin-gonic/gin"
)

// ContentController is the legacy single-endpoint surface: one route, a type
// query parameter selecting the collection, the HTTP verb selecting the
// gateway operation. Newer clients use the per-entity routes; this stays
// wire-compatible for the old admin pages.
type ContentController struct {
	menuService   *services.MenuService
	reviewService *services.ReviewService
	eventService  *services.EventService
	slideService  *services.SlideService
	storeService  *services.StoreService
}

func NewContentController(
	menu *services.MenuService,
	review *services.ReviewService,
	event *services.EventService,
	slide *services.SlideService,
	store *services.StoreService,
) *ContentController {
	return &ContentController{
		menuService:   menu,
		reviewService: review,
		eventService:  event,
		slideService:  slide,
		storeService:  store,
	}
}

// Handle dispatches ANY /api/content?type=...
func (ctl *ContentController) Handle(c *gin.Context) {
	contentType := c.Query("type")
	if contentType == "" {
		resp.BadRequest(c, "type query parameter is required")
		return
	}

	switch contentType {
	case "menu":
		ctl.handleMenu(c)
	case "review":
		ctl.handleReview(c)
	case "event":
		ctl.handleEvent(c)
	case "store":
		ctl.handleStore(c)
	case "slide":
		ctl.handleSlide(c)
	case "storeImage":
		ctl.handleStoreImage(c)
	case "introduction":
		ctl.handleIntroduction(c)
	default:
		resp.BadRequest(c, "unsupported type")
	}
}

func methodNotAllowed(c *gin.Context, allow string) {
	c.Header("Allow", allow)
	c.JSON(http.StatusMethodNotAllowed, gin.H{"ok": false, "error": "method not allowed"})
}

func (ctl *ContentController) handleMenu(c *gin.Context) {
	switch c.Request.Method {
	case http.MethodGet:
		items, err := ctl.menuService.List()
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		resp.OK(c, gin.H{"items": items})

	case http.MethodPost:
		name := c.PostForm("name")
		description := c.PostForm("description")
		priceStr := c.PostForm("price")
		category := c.PostForm("category")
		if name == "" || description == "" || priceStr == "" || category == "" {
			resp.BadRequest(c, "name, description, price and category are required")
			return
		}
		price, err := strconv.ParseInt(priceStr, 10, 64)
		if err != nil || price <= 0 {
			resp.BadRequest(c, "price must be a positive integer")
			return
		}
		upload, ok := requireFile(c)
		if !ok {
			return
		}
		item := &entity.MenuItem{
			Name:        name,
			Description: description,
			Price:       price,
			Category:    category,
			Tags:        c.PostFormArray("tags"),
		}
		if err := ctl.menuService.Create(c.Request.Context(), item, *upload); err != nil {
			if errors.Is(err, services.ErrInvalidCategory) {
				resp.BadRequest(c, err.Error())
				return
			}
			resp.ServerError(c, err)
			return
		}
		resp.OK(c, gin.H{"success": true, "id": item.ID})

	case http.MethodDelete:
		idStr := c.Query("id")
		imageURL := c.Query("imageUrl")
		if idStr == "" || imageURL == "" {
			resp.BadRequest(c, "id and imageUrl are required")
			return
		}
		id, err := strconv.Atoi(idStr)
		if err != nil {
			resp.BadRequest(c, "id must be a number")
			return
		}
		if err := ctl.menuService.Delete(c.Request.Context(), uint(id), imageURL); err != nil {
			if errors.Is(err, storage.ErrBadObjectURL) {
				resp.BadRequest(c, err.Error())
				return
			}
			resp.ServerError(c, err)
			return
		}
		resp.OK(c, gin.H{"success": true})

	default:
		methodNotAllowed(c, "GET, POST, DELETE")
	}
}

func (ctl *ContentController) handleReview(c *gin.Context) {
	switch c.Request.Method {
	case http.MethodGet:
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		reviews, total, err := ctl.reviewService.ListVisible(page)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		resp.OK(c, gin.H{"items": reviews, "total": total})

	case http.MethodPost:
		nickname := c.PostForm("nickname")
		password := c.PostForm("password")
		content := c.PostForm("content")
		if nickname == "" || password == "" || content == "" {
			resp.BadRequest(c, "nickname, password and content are required")
			return
		}
		var uploads []services.FileUpload
		if form, err := c.MultipartForm(); err == nil && form != nil {
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
		resp.OK(c, gin.H{"success": true, "id": review.ID})

	case http.MethodPatch:
		idStr := c.Query("id")
		if idStr == "" {
			resp.BadRequest(c, "id query parameter is required")
			return
		}
		id, err := strconv.Atoi(idStr)
		if err != nil {
			resp.BadRequest(c, "id must be a number")
			return
		}
		hide := c.Query("hide") == "true"
		if hide {
			err = ctl.reviewService.Hide(uint(id))
		} else {
			err = ctl.reviewService.Unhide(uint(id))
		}
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		resp.OK(c, gin.H{"success": true})

	default:
		methodNotAllowed(c, "GET, POST, PATCH")
	}
}

func (ctl *ContentController) handleEvent(c *gin.Context) {
	switch c.Request.Method {
	case http.MethodGet:
		if idStr := c.Query("id"); idStr != "" {
			id, err := strconv.Atoi(idStr)
			if err != nil {
				resp.BadRequest(c, "id must be a number")
				return
			}
			event, err := ctl.eventService.Get(uint(id))
			if err != nil {
				resp.NotFound(c, "event not found")
				return
			}
			resp.OK(c, event)
			return
		}
		events, err := ctl.eventService.List()
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		resp.OK(c, gin.H{"items": events})

	case http.MethodPost:
		title := c.PostForm("title")
		description := c.PostForm("description")
		startDate := c.PostForm("startDate")
		endDate := c.PostForm("endDate")
		if title == "" || description == "" || startDate == "" || endDate == "" {
			resp.BadRequest(c, "title, description, startDate and endDate are required")
			return
		}
		upload, ok := requireFile(c)
		if !ok {
			return
		}
		event := &entity.Event{
			Title:       title,
			Description: description,
			StartDate:   startDate,
			EndDate:     endDate,
		}
		if err := ctl.eventService.Create(c.Request.Context(), event, *upload); err != nil {
			resp.ServerError(c, err)
			return
		}
		resp.OK(c, gin.H{"success": true, "id": event.ID})

	case http.MethodPatch:
		// PATCH on an event bumps its view counter.
		idStr := c.Query("id")
		if idStr == "" {
			resp.BadRequest(c, "id query parameter is required")
			return
		}
		id, err := strconv.Atoi(idStr)
		if err != nil {
			resp.BadRequest(c, "id must be a number")
			return
		}
		if err := ctl.eventService.IncrementViews(uint(id)); err != nil {
			if errors.Is(err, services.ErrNotFound) {
				resp.NotFound(c, "event not found")
				return
			}
			resp.ServerError(c, err)
			return
		}
		resp.OK(c, gin.H{"success": true})

	default:
		methodNotAllowed(c, "GET, POST, PATCH")
	}
}

func (ctl *ContentController) handleStore(c *gin.Context) {
	switch c.Request.Method {
	case http.MethodGet:
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

	case http.MethodPost:
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
		resp.OK(c, gin.H{"success": true})

	default:
		methodNotAllowed(c, "GET, POST")
	}
}

func (ctl *ContentController) handleSlide(c *gin.Context) {
	switch c.Request.Method {
	case http.MethodDelete:
		slotStr := c.Query("slot")
		if slotStr == "" {
			resp.BadRequest(c, "slot query parameter is required")
			return
		}
		slot, err := strconv.Atoi(slotStr)
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
		resp.OK(c, gin.H{"success": true})

	default:
		methodNotAllowed(c, "DELETE")
	}
}

func (ctl *ContentController) handleStoreImage(c *gin.Context) {
	switch c.Request.Method {
	case http.MethodGet:
		photos, err := ctl.storeService.Photos()
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		resp.OK(c, gin.H{"items": photos})

	case http.MethodDelete:
		imageURL := c.Query("url")
		if imageURL == "" {
			resp.BadRequest(c, "url query parameter is required")
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
		resp.OK(c, gin.H{"success": true})

	default:
		methodNotAllowed(c, "GET, DELETE")
	}
}

func (ctl *ContentController) handleIntroduction(c *gin.Context) {
	switch c.Request.Method {
	case http.MethodGet:
		intro, err := ctl.storeService.FetchIntroduction()
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		resp.OK(c, intro)

	case http.MethodPost:
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
		if _, err := ctl.storeService.SaveIntroduction(c.Request.Context(), title, body, upload); err != nil {
			resp.ServerError(c, err)
			return
		}
		resp.OK(c, gin.H{"success": true})

	default:
		methodNotAllowed(c, "GET, POST")
	}
}

// requireFile pulls the mandatory "image" part out of a multipart body.
func requireFile(c *gin.Context) (*services.FileUpload, bool) {
	fh, err := c.FormFile("image")
	if err != nil {
		resp.BadRequest(c, "image is required")
		return nil, false
	}
	f, err := fh.Open()
	if err != nil {
		resp.ServerError(c, err)
		return nil, false
	}
	// closed when the request ends
	return &services.FileUpload{Filename: filepath.Base(fh.Filename), Reader: f}, true
}
