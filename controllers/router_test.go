package controllers_test

import (
	"bytes"
	"mime/multipart"
	"path/filepath"
	"testing"
	"time"

	"github.com/nanho-work/theUBoo/configs"
	"github.com/nanho-work/theUBoo/entity"
	"github.com/nanho-work/theUBoo/routes"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestRouter wires the full route table against a throwaway database and
// a temp-dir object store.
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	t.Setenv("JWT_SECRET", "testsecret")

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	err = db.AutoMigrate(
		&entity.Admin{},
		&entity.MenuCategory{}, &entity.MenuItem{},
		&entity.Review{},
		&entity.Event{},
		&entity.HomeSlide{},
		&entity.StoreInfo{}, &entity.StorePhoto{},
		&entity.Introduction{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	for _, name := range entity.MenuCategories {
		db.FirstOrCreate(&entity.MenuCategory{}, entity.MenuCategory{Name: name})
	}

	cfg := &configs.Config{
		Port:      "0",
		BaseURL:   "http://localhost:8000",
		UploadDir: t.TempDir(),
		JWTSecret: "testsecret",
		JWTTTL:    time.Hour,
	}

	r := gin.New()
	routes.RegisterRoutes(r, db, cfg)
	return r, db
}

// multipartBody builds a form with the given fields plus one file part per
// filename under fileField.
func multipartBody(t *testing.T, fields map[string]string, fileField string, filenames ...string) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	for _, name := range filenames {
		fw, err := w.CreateFormFile(fileField, name)
		if err != nil {
			t.Fatalf("create file part: %v", err)
		}
		fw.Write([]byte("fake image bytes"))
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return buf, w.FormDataContentType()
}
