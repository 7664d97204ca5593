package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func postReview(t *testing.T, r http.Handler, imageCount int) *httptest.ResponseRecorder {
	t.Helper()
	names := make([]string, imageCount)
	for i := range names {
		names[i] = "photo.jpg"
	}
	body, contentType := multipartBody(t, map[string]string{
		"nickname": "guest",
		"password": "1234",
		"content":  "맛있어요",
	}, "images", names...)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/reviews", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)
	return w
}

func reviewCount(t *testing.T, r http.Handler) int {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reviews", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", w.Code)
	}
	var out struct {
		Data struct {
			Total int `json:"total"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	return out.Data.Total
}

func TestReviewSixImagesRejected(t *testing.T) {
	r, _ := newTestRouter(t)

	w := postReview(t, r, 6)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for 6 images, got %d", w.Code)
	}
	if got := reviewCount(t, r); got != 0 {
		t.Errorf("rejected submission must not create a review, got %d", got)
	}
}

func TestReviewFiveImagesAccepted(t *testing.T) {
	r, _ := newTestRouter(t)

	w := postReview(t, r, 5)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 for 5 images, got %d (%s)", w.Code, w.Body.String())
	}
	var out struct {
		Data struct {
			Images []string `json:"images"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode create: %v", err)
	}
	if len(out.Data.Images) != 5 {
		t.Errorf("expected 5 image urls, got %d", len(out.Data.Images))
	}
	if got := reviewCount(t, r); got != 1 {
		t.Errorf("expected 1 review, got %d", got)
	}
}

func TestReviewMissingFields(t *testing.T) {
	r, _ := newTestRouter(t)

	body, contentType := multipartBody(t, map[string]string{"nickname": "guest"}, "images")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/reviews", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestReviewResponseHidesPassword(t *testing.T) {
	r, _ := newTestRouter(t)

	w := postReview(t, r, 0)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	var raw map[string]any
	json.Unmarshal(w.Body.Bytes(), &raw)
	data, _ := raw["data"].(map[string]any)
	if _, leaked := data["password"]; leaked {
		t.Error("password must never be serialized")
	}
	if _, leaked := data["Password"]; leaked {
		t.Error("password must never be serialized")
	}
}
