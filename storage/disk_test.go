package storage

import (
	"context"
	"strings"
	"testing"
)

func TestDiskStoreRoundTrip(t *testing.T) {
	store := NewDiskStore(t.TempDir(), "http://localhost:8000")
	ctx := context.Background()

	url, err := store.Upload(ctx, "menus/bibimbap.jpg", strings.NewReader("fake image bytes"))
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	if url != "http://localhost:8000/uploads/menus/bibimbap.jpg" {
		t.Errorf("unexpected public url: %s", url)
	}

	// the minted URL must parse back to the path delete needs
	path, err := ObjectPathFromURL(url)
	if err != nil {
		t.Fatalf("minted url did not parse: %v", err)
	}
	if path != "menus/bibimbap.jpg" {
		t.Errorf("expected original object path, got %s", path)
	}

	ok, err := store.Exists(ctx, path)
	if err != nil || !ok {
		t.Fatalf("expected object to exist, ok=%v err=%v", ok, err)
	}

	if err := store.Delete(ctx, path); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	ok, _ = store.Exists(ctx, path)
	if ok {
		t.Error("object still present after delete")
	}
}

func TestDiskStoreDeleteMissing(t *testing.T) {
	store := NewDiskStore(t.TempDir(), "http://localhost:8000")
	if err := store.Delete(context.Background(), "menus/nope.jpg"); err != ErrObjectNotFound {
		t.Errorf("expected ErrObjectNotFound, got %v", err)
	}
}

func TestDiskStoreEscapesURL(t *testing.T) {
	store := NewDiskStore(t.TempDir(), "http://localhost:8000")

	url, err := store.Upload(context.Background(), "menus/유부초밥.jpg", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	path, err := ObjectPathFromURL(url)
	if err != nil {
		t.Fatalf("minted url did not parse: %v", err)
	}
	if path != "menus/유부초밥.jpg" {
		t.Errorf("round trip lost the filename: %s", path)
	}
}
