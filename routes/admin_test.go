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
	"github.com/Shahanees1998/HotelManagement-sub000/storage"
	"github.com/Shahanees1998/HotelManagement-sub000/utils"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// buildTestApp creates a minimal Iris app with the admin routes and JWT verifier
func buildTestApp() *iris.Application {
	os.Setenv("ACCESS_TOKEN_SECRET", "testsecret")
	app := iris.New()

	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} { return new(utils.AccessToken) })

	admin := app.Party("/api/admin", accessTokenVerifierMiddleware, utils.AdminOnlyMiddleware)
	{
		admin.Get("/users", AdminListUsers)
		admin.Patch("/users/{id:uint}/role", utils.SuperAdminOnlyMiddleware, AdminChangeUserRole)
		admin.Patch("/hotels/{id:uint}/plan", AdminChangeHotelPlan)
	}
	if err := app.Build(); err != nil {
		panic(err)
	}
	return app
}

// openTestDB swaps storage.DB for a per-test in-memory sqlite database.
func openTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Hotel{},
		&models.Subscription{},
		&models.FeedbackForm{},
		&models.CustomRatingItem{},
		&models.FormQuestion{},
		&models.Review{},
		&models.ReviewAnswer{},
		&models.ReviewReply{},
		&models.AuditLog{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	storage.DB = db
	return db
}

// signTestToken returns a signed JWT with the given role
func signTestToken(role string, hotelID *uint) string {
	signer := jwt.NewSigner(jwt.HS256, os.Getenv("ACCESS_TOKEN_SECRET"), time.Hour)
	token, _ := signer.Sign(utils.AccessToken{ID: 1, Role: role, HotelID: hotelID})
	return string(token)
}

func TestAdminUsersRBAC(t *testing.T) {
	app := buildTestApp()

	// No token -> rejected by the verifier
	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	if resp.Code == http.StatusOK {
		t.Fatalf("expected non-200 without token, got %d", resp.Code)
	}

	// Hotel staff role -> 403
	hid := uint(1)
	req2 := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	req2.Header.Set("Authorization", "Bearer "+signTestToken("staff", &hid))
	resp2 := httptest.NewRecorder()
	app.ServeHTTP(resp2, req2)
	if resp2.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for staff role, got %d", resp2.Code)
	}
}

func TestChangeUserRoleRejectsUnknownRole(t *testing.T) {
	app := buildTestApp()

	req := httptest.NewRequest(http.MethodPatch, "/api/admin/users/1/role", strings.NewReader(`{"role":"wizard"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+signTestToken("super_admin", nil))
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for unknown role, got %d", resp.Code)
	}
	// Standard error envelope: {"error", "message"}
	if !strings.Contains(resp.Body.String(), "invalid_role") || !strings.Contains(resp.Body.String(), "message") {
		t.Fatalf("expected invalid_role envelope, got %s", resp.Body.String())
	}
}

func TestChangePlanToBasicOmitsSubscription(t *testing.T) {
	db := openTestDB(t)
	hotel := models.Hotel{Name: "Seaside Inn", Slug: "seaside-inn", Plan: models.PlanProfessional, OwnerID: 1}
	if err := db.Create(&hotel).Error; err != nil {
		t.Fatalf("seed hotel: %v", err)
	}

	app := buildTestApp()
	req := httptest.NewRequest(http.MethodPatch,
		fmt.Sprintf("/api/admin/hotels/%d/plan", hotel.ID),
		strings.NewReader(`{"plan":"basic"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+signTestToken("admin", nil))
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), `"subscription":null`) {
		t.Fatalf("expected null subscription on basic plan, got %s", resp.Body.String())
	}

	var count int64
	db.Model(&models.Subscription{}).Where("hotel_id = ?", hotel.ID).Count(&count)
	if count != 0 {
		t.Fatalf("expected no subscription rows, got %d", count)
	}

	var got models.Hotel
	db.First(&got, hotel.ID)
	if got.Plan != models.PlanBasic {
		t.Fatalf("expected hotel downgraded to basic, got %q", got.Plan)
	}
}
