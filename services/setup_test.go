package services_test

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/nanho-work/theUBoo/entity"
	"github.com/nanho-work/theUBoo/storage"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens a throwaway sqlite database with the full schema and the
// seeded category set.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

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
	return db
}

// setupStore returns a disk store in a temp dir plus the dir itself so tests
// can count what actually landed on disk.
func setupStore(t *testing.T) (*storage.DiskStore, string) {
	t.Helper()
	root := t.TempDir()
	return storage.NewDiskStore(root, "http://localhost:8000"), root
}

func countObjects(t *testing.T, root string) int {
	t.Helper()
	count := 0
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			count++
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk store dir: %v", err)
	}
	return count
}
