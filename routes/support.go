package routes

import (
	"net/http"
	"strings"

	"github.com/Shahanees1998/HotelManagement-sub000/models"
	"github.com/Shahanees1998/HotelManagement-sub000/services"
	"github.com/Shahanees1998/HotelManagement-sub000/storage"
	"github.com/Shahanees1998/HotelManagement-sub000/utils"

	"github.com/kataras/iris/v12"
)

// SupportInput is the body of POST /hotel/support.
type SupportInput struct {
	Subject  string `json:"subject" validate:"required"`
	Message  string `json:"message" validate:"required"`
	Priority string `json:"priority"`
	ReviewID *uint  `json:"reviewID"`
}

// POST /hotel/support — raise a ticket towards platform admins.
func HotelCreateSupport(ctx iris.Context) {
	var input SupportInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	priority := input.Priority
	switch priority {
	case models.PriorityLow, models.PriorityMedium, models.PriorityHigh, models.PriorityUrgent:
	case "":
		priority = models.PriorityMedium
	default:
		utils.JSONError(ctx, http.StatusUnprocessableEntity, "invalid_priority", "priority must be low/medium/high/urgent")
		return
	}

	hotelID := utils.HotelIDFromContext(ctx)
	userID := utils.UserIDFromContext(ctx)

	if input.ReviewID != nil {
		var review models.Review
		if err := storage.DB.Where("hotel_id = ?", hotelID).First(&review, *input.ReviewID).Error; err != nil {
			utils.JSONError(ctx, http.StatusUnprocessableEntity, "invalid_review", "review not found for this hotel")
			return
		}
	}

	req := models.SupportRequest{
		UserID:   userID,
		HotelID:  &hotelID,
		ReviewID: input.ReviewID,
		Subject:  strings.TrimSpace(input.Subject),
		Message:  strings.TrimSpace(input.Message),
		Status:   models.TicketOpen,
		Priority: priority,
	}
	if err := storage.DB.Create(&req).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	services.NewNotificationService().NotifyAdmins("support_request",
		"New support request", req.Subject, "support_request", req.ID)

	ctx.StatusCode(http.StatusCreated)
	ctx.JSON(iris.Map{"data": req})
}

// GET /hotel/support?status=&page=&per_page= — the hotel's own tickets.
func HotelListSupport(ctx iris.Context) {
	hotelID := utils.HotelIDFromContext(ctx)
	page := ctx.URLParamIntDefault("page", 1)
	perPage := ctx.URLParamIntDefault("per_page", 25)
	if perPage <= 0 || perPage > 100 {
		perPage = 25
	}

	q := storage.DB.Model(&models.SupportRequest{}).Where("hotel_id = ?", hotelID)
	if status := ctx.URLParamDefault("status", ""); status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	q.Count(&total)

	var items []models.SupportRequest
	if err := q.Offset((page - 1) * perPage).Limit(perPage).Order("created_at DESC").Find(&items).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	utils.JSONPage(ctx, items, page, perPage, total)
}
