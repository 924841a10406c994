package routes

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/Shahanees1998/HotelManagement-sub000/models"
	"github.com/Shahanees1998/HotelManagement-sub000/utils"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

func buildHotelTestApp() *iris.Application {
	os.Setenv("ACCESS_TOKEN_SECRET", "testsecret")
	app := iris.New()

	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte("testsecret"))
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} { return new(utils.AccessToken) })

	hotel := app.Party("/api/hotel", accessTokenVerifierMiddleware, utils.HotelScopeMiddleware)
	{
		hotel.Post("/forms", HotelCreateForm)
		hotel.Post("/reviews/{id:uint}/reply", HotelReplyReview)
		hotel.Patch("/reviews/{id:uint}/update-status", HotelUpdateReviewStatus)
	}
	if err := app.Build(); err != nil {
		panic(err)
	}
	return app
}

func TestHotelScopeRequiresHotelID(t *testing.T) {
	app := buildHotelTestApp()

	// Platform admin token has no hotel id, so hotel routes are off limits
	req := httptest.NewRequest(http.MethodPost, "/api/hotel/reviews/1/reply", strings.NewReader(`{"replyText":"thanks"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+signTestToken("admin", nil))
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 without hotel scope, got %d", resp.Code)
	}
}

func TestReplyRequiresText(t *testing.T) {
	app := buildHotelTestApp()
	hid := uint(1)
	token := signTestToken("hotel_admin", &hid)

	req := httptest.NewRequest(http.MethodPost, "/api/hotel/reviews/1/reply", strings.NewReader(`{"replyText":"   "}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for blank reply, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "invalid_reply") {
		t.Fatalf("expected invalid_reply error, got %s", resp.Body.String())
	}
}

func TestStatusUpdateRejectsUnknownStatus(t *testing.T) {
	app := buildHotelTestApp()
	hid := uint(1)
	token := signTestToken("hotel_admin", &hid)

	req := httptest.NewRequest(http.MethodPatch, "/api/hotel/reviews/1/update-status", strings.NewReader(`{"status":"archived"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for unknown status, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "invalid_status") {
		t.Fatalf("expected invalid_status error, got %s", resp.Body.String())
	}
}

func TestReplyAppendsAndMarksReplied(t *testing.T) {
	db := openTestDB(t)
	review := models.Review{
		FormID:        1,
		HotelID:       1,
		GuestName:     "Ana",
		GuestEmail:    "ana@example.com",
		OverallRating: 4,
		SubmittedAt:   time.Now().UTC(),
		Status:        models.ReviewPending,
	}
	if err := db.Create(&review).Error; err != nil {
		t.Fatalf("seed review: %v", err)
	}

	app := buildHotelTestApp()
	hid := uint(1)
	token := signTestToken("hotel_admin", &hid)

	req := httptest.NewRequest(http.MethodPost,
		fmt.Sprintf("/api/hotel/reviews/%d/reply", review.ID),
		strings.NewReader(`{"replyText":"Thank you for staying with us"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var replies []models.ReviewReply
	db.Where("review_id = ?", review.ID).Find(&replies)
	if len(replies) != 1 {
		t.Fatalf("expected exactly 1 reply, got %d", len(replies))
	}
	if replies[0].ReplyText != "Thank you for staying with us" {
		t.Fatalf("unexpected reply text %q", replies[0].ReplyText)
	}
	// SentTo falls back to the guest email when the payload omits it.
	if replies[0].SentTo != "ana@example.com" {
		t.Fatalf("expected sentTo defaulted to guest email, got %q", replies[0].SentTo)
	}

	var got models.Review
	db.First(&got, review.ID)
	if !got.IsReplied {
		t.Fatal("expected is_replied set after the first reply")
	}
}

func TestCreateFormRequiresTitle(t *testing.T) {
	app := buildHotelTestApp()
	hid := uint(1)
	token := signTestToken("hotel_admin", &hid)

	req := httptest.NewRequest(http.MethodPost, "/api/hotel/forms", strings.NewReader(`{"title":"  "}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for blank title, got %d", resp.Code)
	}
}
