package v1

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/resenas-api/dto"
)

func TestCreateReview_RatingOutOfRange(t *testing.T) {
	setupTestDB(t)
	f := seedFixtures(t)
	r := newTestRouter()

	for _, rating := range []int{0, 6, -1} {
		w := postJSON(t, r, "/reviews/", map[string]interface{}{
			"rating":     rating,
			"comment":    "fuera de rango",
			"user_id":    f.Santi.ID,
			"product_id": f.Alma.ID,
		})
		if w.Code != http.StatusBadRequest {
			t.Errorf("rating=%d: expected 400, got %d: %s", rating, w.Code, w.Body.String())
		}
		// Every out-of-range rating gets the range message, zero included
		if !strings.Contains(w.Body.String(), "La calificación debe estar entre 1 y 5.") {
			t.Errorf("rating=%d: expected range detail, got: %s", rating, w.Body.String())
		}
	}
}

func TestCreateReview_RatingBounds(t *testing.T) {
	setupTestDB(t)
	f := seedFixtures(t)
	r := newTestRouter()

	for _, rating := range []int{1, 5} {
		w := postJSON(t, r, "/reviews/", map[string]interface{}{
			"rating":     rating,
			"comment":    "en el límite",
			"user_id":    f.Santi.ID,
			"product_id": f.Alma.ID,
		})
		if w.Code != http.StatusCreated {
			t.Errorf("rating=%d: expected 201, got %d: %s", rating, w.Code, w.Body.String())
		}
	}
}

func TestCreateReview_EmbedsRelations(t *testing.T) {
	setupTestDB(t)
	f := seedFixtures(t)
	r := newTestRouter()

	w := postJSON(t, r, "/reviews/", map[string]interface{}{
		"rating":     4,
		"comment":    "Muy cómoda",
		"user_id":    f.Emmanuel.ID,
		"product_id": f.Orca.ID,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d: %s", w.Code, w.Body.String())
	}

	var review dto.ReviewResponse
	if err := json.Unmarshal(w.Body.Bytes(), &review); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if review.ID == 0 {
		t.Errorf("expected generated id")
	}
	if review.User == nil || review.User.Username != "emmanuel" {
		t.Errorf("expected embedded user, got %+v", review.User)
	}
	if review.Product == nil || review.Product.Name != "Orbea Orca" {
		t.Errorf("expected embedded product, got %+v", review.Product)
	}
	if review.Product.Category == nil || review.Product.Category.Name != "Bicicletas" {
		t.Errorf("expected embedded category, got %+v", review.Product.Category)
	}
}

func TestCreateReview_WithoutComment(t *testing.T) {
	setupTestDB(t)
	f := seedFixtures(t)
	r := newTestRouter()

	w := postJSON(t, r, "/reviews/", map[string]interface{}{
		"rating":     3,
		"user_id":    f.Santi.ID,
		"product_id": f.Casco.ID,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d: %s", w.Code, w.Body.String())
	}

	var review dto.ReviewResponse
	if err := json.Unmarshal(w.Body.Bytes(), &review); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if review.Comment != nil {
		t.Errorf("expected null comment, got %q", *review.Comment)
	}
}

func TestListReviews_EmptyIs404(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/reviews/", nil)
	r.ServeHTTP(w, req)

	// Documented policy: an empty collection is a 404, not []
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for empty review table, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "No se encontraron reseñas registradas.") {
		t.Errorf("expected not-found detail, got: %s", w.Body.String())
	}
}

func TestListReviews_AfterSeed(t *testing.T) {
	setupTestDB(t)
	seedFixtures(t)
	r := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/reviews/", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}

	var reviews []dto.ReviewResponse
	if err := json.Unmarshal(w.Body.Bytes(), &reviews); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if len(reviews) != 3 {
		t.Fatalf("expected exactly 3 reviews after seeding, got %d", len(reviews))
	}
	for _, review := range reviews {
		if review.User == nil {
			t.Errorf("review %d: embedded user is null", review.ID)
		}
		if review.Product == nil {
			t.Errorf("review %d: embedded product is null", review.ID)
		} else if review.Product.Category == nil {
			t.Errorf("review %d: embedded category is null", review.ID)
		}
	}
}
