package routes

import (
	"net/http"
	"time"

	"github.com/Shahanees1998/HotelManagement-sub000/models"
	"github.com/Shahanees1998/HotelManagement-sub000/storage"
	"github.com/Shahanees1998/HotelManagement-sub000/utils"

	"github.com/kataras/iris/v12"
)

// GET /admin/subscriptions?status=&hotel_id=&page=&per_page=
func AdminListSubscriptions(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	perPage := ctx.URLParamIntDefault("per_page", 25)
	if perPage <= 0 || perPage > 100 {
		perPage = 25
	}

	q := storage.DB.Model(&models.Subscription{})
	if status := ctx.URLParamDefault("status", ""); status != "" {
		q = q.Where("status = ?", status)
	}
	if hotelID := ctx.URLParamDefault("hotel_id", ""); hotelID != "" {
		q = q.Where("hotel_id = ?", hotelID)
	}

	var total int64
	q.Count(&total)

	var subs []models.Subscription
	if err := q.Preload("Hotel").Offset((page - 1) * perPage).Limit(perPage).
		Order("created_at DESC").Find(&subs).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	utils.JSONPage(ctx, subs, page, perPage, total)
}

// POST /admin/subscriptions/:id/cancel — cancel a running subscription and
// move the hotel back to the basic plan.
func AdminCancelSubscription(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var sub models.Subscription
	if err := storage.DB.First(&sub, id).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}
	if sub.Status != models.SubscriptionActive {
		utils.JSONError(ctx, http.StatusUnprocessableEntity, "invalid_state", "only active subscriptions can be canceled")
		return
	}

	before := sub
	now := time.Now().UTC()
	sub.Status = models.SubscriptionCanceled
	sub.CanceledAt = &now
	if err := storage.DB.Save(&sub).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	storage.DB.Model(&models.Hotel{}).Where("id = ?", sub.HotelID).
		Update("plan", models.PlanBasic)

	utils.Audit(ctx, "subscription.cancel", "subscription", sub.ID, before, sub)
	ctx.JSON(iris.Map{"data": sub})
}
