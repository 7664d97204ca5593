// controllers/menu_controller.go
package controllers

import (
	"errors"
	"path/filepath"
	"strconv"

	"github.com/nanho-work/theUBoo/pkg/resp"
	"github.com/nanho-work/theUBoo/services"
	"github.com/nanho-work/theUBoo/storage"

	"github.com/nanho-work/theUBoo/entity"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	menuService *services.MenuService
}

func NewMenuController(service *services.MenuService) *MenuController {
	return &MenuController{menuService: service}
}

// GET /menus
// Category filtering happens client-side over this full listing; the "전체"
// pseudo-category is not a server concept.
func (ctl *MenuController) List(c *gin.Context) {
	items, err := ctl.menuService.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// POST /admin/menus (multipart)
func (ctl *MenuController) Create(c *gin.Context) {
	name := c.PostForm("name")
	description := c.PostForm("description")
	priceStr := c.PostForm("price")
	category := c.PostForm("category")
	tags := c.PostFormArray("tags")

	if name == "" || priceStr == "" || category == "" {
		resp.BadRequest(c, "name, price and category are required")
		return
	}
	price, err := strconv.ParseInt(priceStr, 10, 64)
	if err != nil || price <= 0 {
		resp.BadRequest(c, "price must be a positive integer")
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

	item := &entity.MenuItem{
		Name:        name,
		Description: description,
		Price:       price,
		Category:    category,
		Tags:        tags,
	}
	upload := services.FileUpload{Filename: filepath.Base(fh.Filename), Reader: f}

	if err := ctl.menuService.Create(c.Request.Context(), item, upload); err != nil {
		if errors.Is(err, services.ErrInvalidCategory) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, item)
}

// PATCH /admin/menus/:id (multipart, all fields optional)
func (ctl *MenuController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	fields := map[string]interface{}{}
	if v := c.PostForm("name"); v != "" {
		fields["name"] = v
	}
	if v := c.PostForm("description"); v != "" {
		fields["description"] = v
	}
	if v := c.PostForm("price"); v != "" {
		price, err := strconv.ParseInt(v, 10, 64)
		if err != nil || price <= 0 {
			resp.BadRequest(c, "price must be a positive integer")
			return
		}
		fields["price"] = price
	}
	if v := c.PostForm("category"); v != "" {
		fields["category"] = v
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

	if err := ctl.menuService.Update(c.Request.Context(), uint(id), fields, upload); err != nil {
		if errors.Is(err, services.ErrInvalidCategory) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "menu updated"})
}

// DELETE /admin/menus/:id?imageUrl=
func (ctl *MenuController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	imageURL := c.Query("imageUrl")
	if imageURL == "" {
		resp.BadRequest(c, "imageUrl is required")
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
	resp.OK(c, gin.H{"message": "menu deleted"})
}
