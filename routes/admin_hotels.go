package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/Shahanees1998/HotelManagement-sub000/models"
	"github.com/Shahanees1998/HotelManagement-sub000/storage"
	"github.com/Shahanees1998/HotelManagement-sub000/utils"

	"github.com/kataras/iris/v12"
)

// GET /admin/hotels?plan=&q=&page=&per_page=
func AdminListHotels(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	perPage := ctx.URLParamIntDefault("per_page", 25)
	if perPage <= 0 || perPage > 100 {
		perPage = 25
	}

	query := storage.DB.Model(&models.Hotel{})
	if plan := ctx.URLParamDefault("plan", ""); plan != "" {
		query = query.Where("plan = ?", plan)
	}
	if q := strings.TrimSpace(ctx.URLParamDefault("q", "")); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		query = query.Where("lower(name) LIKE ? OR lower(city) LIKE ?", like, like)
	}

	var total int64
	query.Count(&total)

	var hotels []models.Hotel
	if err := query.Offset((page - 1) * perPage).Limit(perPage).Order("created_at DESC").Find(&hotels).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	for i := range hotels {
		storage.DB.Model(&models.Review{}).
			Where("hotel_id = ? AND is_deleted = ?", hotels[i].ID, false).
			Count(&hotels[i].TotalReviews)
	}

	utils.JSONPage(ctx, hotels, page, perPage, total)
}

// GET /admin/hotels/:id — hotel with its forms, subscription and review counts.
func AdminGetHotel(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var hotel models.Hotel
	if err := storage.DB.Preload("Owner").First(&hotel, id).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	var forms []models.FeedbackForm
	storage.DB.Where("hotel_id = ?", id).Order("created_at DESC").Find(&forms)

	var subscription models.Subscription
	hasSubscription := storage.DB.Where("hotel_id = ? AND status = ?", id, models.SubscriptionActive).
		Order("end_date DESC").First(&subscription).Error == nil

	storage.DB.Model(&models.Review{}).
		Where("hotel_id = ? AND is_deleted = ?", id, false).
		Count(&hotel.TotalReviews)

	data := iris.Map{
		"hotel": hotel,
		"forms": forms,
	}
	if hasSubscription {
		data["subscription"] = subscription
	}
	ctx.JSON(iris.Map{"data": data, "meta": iris.Map{}, "links": iris.Map{}})
}

// PATCH /admin/hotels/:id/plan { plan, months }
// Overrides the hotel's tier and records the subscription window, the
// same shape the billing collaborator produces.
func AdminChangeHotelPlan(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var body struct {
		Plan   string  `json:"plan"`
		Months int     `json:"months"`
		Price  float64 `json:"price"`
	}
	if err := ctx.ReadJSON(&body); err != nil {
		utils.JSONError(ctx, http.StatusUnprocessableEntity, "invalid_payload", "invalid body")
		return
	}
	switch body.Plan {
	case models.PlanBasic, models.PlanProfessional, models.PlanEnterprise:
	default:
		utils.JSONError(ctx, http.StatusUnprocessableEntity, "invalid_plan", "plan must be basic/professional/enterprise")
		return
	}
	if body.Months <= 0 {
		body.Months = 12
	}

	var hotel models.Hotel
	if err := storage.DB.First(&hotel, id).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	before := hotel
	hotel.Plan = body.Plan
	if err := storage.DB.Save(&hotel).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	// Supersede any running subscription; the plan window restarts now.
	now := time.Now().UTC()
	storage.DB.Model(&models.Subscription{}).
		Where("hotel_id = ? AND status = ?", hotel.ID, models.SubscriptionActive).
		Updates(map[string]interface{}{"status": models.SubscriptionCanceled, "canceled_at": &now})

	// The basic tier runs without a subscription window.
	data := iris.Map{"hotel": hotel, "subscription": nil}
	if body.Plan != models.PlanBasic {
		sub := models.Subscription{
			HotelID:   hotel.ID,
			Plan:      body.Plan,
			Status:    models.SubscriptionActive,
			StartDate: now,
			EndDate:   now.AddDate(0, body.Months, 0),
			Price:     body.Price,
		}
		if err := storage.DB.Create(&sub).Error; err != nil {
			utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
			return
		}
		data["subscription"] = sub
	}

	utils.Audit(ctx, "hotel.plan_update", "hotel", hotel.ID, before, hotel)
	ctx.JSON(iris.Map{"data": data})
}
