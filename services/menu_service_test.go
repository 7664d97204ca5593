package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/nanho-work/theUBoo/entity"
	"github.com/nanho-work/theUBoo/repository"
	"github.com/nanho-work/theUBoo/services"
	"github.com/nanho-work/theUBoo/storage"
)

func newMenuService(t *testing.T) (*services.MenuService, *storage.DiskStore, string) {
	t.Helper()
	db := setupTestDB(t)
	store, root := setupStore(t)
	return services.NewMenuService(repository.NewMenuRepository(db), store), store, root
}

func TestMenuCreateListDelete(t *testing.T) {
	svc, store, _ := newMenuService(t)
	ctx := context.Background()

	item := &entity.MenuItem{
		Name:     "유부초밥",
		Price:    6000,
		Category: "식사류",
		Tags:     []string{"인기", "포장"},
	}
	file := services.FileUpload{Filename: "yubu.jpg", Reader: strings.NewReader("img")}

	if err := svc.Create(ctx, item, file); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if item.ImageURL == "" {
		t.Fatal("expected image url on created item")
	}

	// the stored URL resolves to an uploaded object
	path, err := storage.ObjectPathFromURL(item.ImageURL)
	if err != nil {
		t.Fatalf("stored url did not parse: %v", err)
	}
	if ok, _ := store.Exists(ctx, path); !ok {
		t.Fatal("expected object behind stored url")
	}

	items, err := svc.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Price != 6000 || items[0].Category != "식사류" {
		t.Errorf("unexpected item %+v", items[0])
	}

	if err := svc.Delete(ctx, item.ID, item.ImageURL); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	items, _ = svc.List()
	if len(items) != 0 {
		t.Errorf("expected empty list after delete, got %d", len(items))
	}
	if ok, _ := store.Exists(ctx, path); ok {
		t.Error("object still present after delete")
	}
}

func TestMenuCreateCompensatesFailedWrite(t *testing.T) {
	db := setupTestDB(t)
	store, root := setupStore(t)
	svc := services.NewMenuService(repository.NewMenuRepository(db), store)

	// force the record write to fail after the upload succeeds
	if err := db.Migrator().DropTable(&entity.MenuItem{}); err != nil {
		t.Fatalf("drop table: %v", err)
	}

	item := &entity.MenuItem{Name: "유부초밥", Price: 6000, Category: "식사류"}
	err := svc.Create(context.Background(), item, services.FileUpload{
		Filename: "yubu.jpg",
		Reader:   strings.NewReader("img"),
	})
	if err == nil {
		t.Fatal("expected create to fail without the table")
	}
	if countObjects(t, root) != 0 {
		t.Error("uploaded object must be deleted when the record write fails")
	}
}

func TestMenuCreateRejectsUnknownCategory(t *testing.T) {
	svc, _, root := newMenuService(t)

	item := &entity.MenuItem{Name: "tea", Price: 3000, Category: "디저트"}
	err := svc.Create(context.Background(), item, services.FileUpload{Filename: "t.jpg", Reader: strings.NewReader("x")})
	if err != services.ErrInvalidCategory {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}
	if countObjects(t, root) != 0 {
		t.Error("nothing should reach the store on a rejected category")
	}
}

func TestMenuDeleteAbortsOnMalformedURL(t *testing.T) {
	svc, _, _ := newMenuService(t)
	ctx := context.Background()

	item := &entity.MenuItem{Name: "국수", Price: 7000, Category: "식사류"}
	if err := svc.Create(ctx, item, services.FileUpload{Filename: "noodle.jpg", Reader: strings.NewReader("x")}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	err := svc.Delete(ctx, item.ID, "https://cdn.example.com/images/noodle.jpg")
	if err == nil {
		t.Fatal("expected delete to fail on a foreign url")
	}

	// the whole operation aborted: the record is untouched
	items, _ := svc.List()
	if len(items) != 1 {
		t.Errorf("record should survive an aborted delete, got %d items", len(items))
	}
}

func TestMenuUpdateReplacesImage(t *testing.T) {
	svc, store, _ := newMenuService(t)
	ctx := context.Background()

	item := &entity.MenuItem{Name: "김밥", Price: 4000, Category: "식사류"}
	if err := svc.Create(ctx, item, services.FileUpload{Filename: "kimbap.jpg", Reader: strings.NewReader("v1")}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	newFile := &services.FileUpload{Filename: "kimbap2.jpg", Reader: strings.NewReader("v2")}
	if err := svc.Update(ctx, item.ID, map[string]interface{}{"price": int64(4500)}, newFile); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	got, err := svc.Get(item.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Price != 4500 {
		t.Errorf("expected price 4500, got %d", got.Price)
	}
	if got.ImageURL == item.ImageURL {
		t.Error("expected a fresh image url after update")
	}
	// update uploads go to a timestamped path
	path, err := storage.ObjectPathFromURL(got.ImageURL)
	if err != nil {
		t.Fatalf("updated url did not parse: %v", err)
	}
	if !strings.HasPrefix(path, "menus/") || !strings.HasSuffix(path, "_kimbap2.jpg") {
		t.Errorf("unexpected update path %s", path)
	}
	if ok, _ := store.Exists(context.Background(), path); !ok {
		t.Error("expected updated object in store")
	}
}
