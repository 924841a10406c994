package routes

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Shahanees1998/HotelManagement-sub000/models"
	"github.com/Shahanees1998/HotelManagement-sub000/services"
	"github.com/Shahanees1998/HotelManagement-sub000/storage"
	"github.com/Shahanees1998/HotelManagement-sub000/utils"

	"github.com/kataras/iris/v12"
	"gorm.io/gorm"
)

// GET /hotel/reviews?status=&urgent=&rating=&q=&page=&per_page=
func HotelListReviews(ctx iris.Context) {
	hotelID := utils.HotelIDFromContext(ctx)
	page := ctx.URLParamIntDefault("page", 1)
	perPage := ctx.URLParamIntDefault("per_page", 25)
	if perPage <= 0 || perPage > 100 {
		perPage = 25
	}

	q := storage.DB.Model(&models.Review{}).
		Where("hotel_id = ? AND is_deleted = ?", hotelID, false)

	if status := ctx.URLParamDefault("status", ""); status != "" {
		q = q.Where("status = ?", status)
	}
	if urgent := ctx.URLParamDefault("urgent", ""); urgent == "true" {
		q = q.Where("is_urgent = ?", true)
	}
	if rating := ctx.URLParamDefault("rating", ""); rating != "" {
		if r, err := strconv.Atoi(rating); err == nil {
			q = q.Where("overall_rating = ?", r)
		}
	}
	if search := strings.TrimSpace(ctx.URLParamDefault("q", "")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("lower(guest_name) LIKE ? OR lower(guest_email) LIKE ? OR lower(room_number) LIKE ?", like, like, like)
	}

	var total int64
	q.Count(&total)

	var items []models.Review
	if err := q.Preload("Responses").
		Offset((page - 1) * perPage).Limit(perPage).Order("submitted_at DESC").
		Find(&items).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	utils.JSONPage(ctx, items, page, perPage, total)
}

// GET /hotel/reviews/:id — submission plus display-ready answers resolved
// against the owning form's predefined configuration.
func HotelGetReview(ctx iris.Context) {
	hotelID := utils.HotelIDFromContext(ctx)
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var review models.Review
	if err := storage.DB.Preload("Answers").Preload("Responses").
		Where("hotel_id = ?", hotelID).First(&review, id).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	var form models.FeedbackForm
	if err := storage.DB.Preload("CustomRatingItems").Preload("CustomQuestions").
		First(&form, review.FormID).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", "form definition missing for review")
		return
	}

	ctx.JSON(iris.Map{
		"data": iris.Map{
			"review":         review,
			"displayAnswers": services.ResolveReviewAnswers(&review, &form),
		},
		"meta":  iris.Map{},
		"links": iris.Map{},
	})
}

// ReplyInput is the body of POST /hotel/reviews/:id/reply.
type ReplyInput struct {
	ReplyText string `json:"replyText"`
	SentTo    string `json:"sentTo"`
}

// POST /hotel/reviews/:id/reply — append to the reply log. Replies are
// never edited or removed; a successful append also marks the review
// replied.
func HotelReplyReview(ctx iris.Context) {
	var input ReplyInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_payload", "invalid request body")
		return
	}
	text := strings.TrimSpace(input.ReplyText)
	if text == "" {
		utils.JSONError(ctx, http.StatusUnprocessableEntity, "invalid_reply", "reply text is required")
		return
	}

	hotelID := utils.HotelIDFromContext(ctx)
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var review models.Review
	if err := storage.DB.Where("hotel_id = ? AND is_deleted = ?", hotelID, false).
		First(&review, id).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	sentTo := strings.TrimSpace(input.SentTo)
	if sentTo == "" {
		sentTo = review.GuestEmail
	}
	reply := models.ReviewReply{
		ReviewID:  review.ID,
		ReplyText: text,
		SentTo:    sentTo,
		SentAt:    time.Now().UTC(),
	}
	err = storage.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&reply).Error; err != nil {
			return err
		}
		if !review.IsReplied {
			return tx.Model(&review).Update("is_replied", true).Error
		}
		return nil
	})
	if err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	review.IsReplied = true

	ctx.StatusCode(http.StatusCreated)
	ctx.JSON(iris.Map{"data": iris.Map{"reply": reply, "isReplied": review.IsReplied}})
}

// StatusUpdateInput carries single-field PATCH toggles. Only fields
// present in the body are applied.
type StatusUpdateInput struct {
	IsChecked *bool   `json:"isChecked"`
	IsUrgent  *bool   `json:"isUrgent"`
	IsPublic  *bool   `json:"isPublic"`
	IsShared  *bool   `json:"isShared"`
	Status    *string `json:"status"`
}

// PATCH /hotel/reviews/:id/update-status
func HotelUpdateReviewStatus(ctx iris.Context) {
	var input StatusUpdateInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_payload", "invalid request body")
		return
	}
	if input.Status != nil {
		switch *input.Status {
		case models.ReviewPending, models.ReviewApproved, models.ReviewRejected:
		default:
			utils.JSONError(ctx, http.StatusUnprocessableEntity, "invalid_status", "status must be pending/approved/rejected")
			return
		}
	}

	hotelID := utils.HotelIDFromContext(ctx)
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var review models.Review
	if err := storage.DB.Where("hotel_id = ? AND is_deleted = ?", hotelID, false).
		First(&review, id).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	updates := map[string]interface{}{}
	if input.IsChecked != nil {
		updates["is_checked"] = *input.IsChecked
	}
	if input.IsUrgent != nil {
		updates["is_urgent"] = *input.IsUrgent
	}
	if input.IsPublic != nil {
		updates["is_public"] = *input.IsPublic
	}
	if input.IsShared != nil {
		updates["is_shared"] = *input.IsShared
	}
	if input.Status != nil {
		updates["status"] = *input.Status
		if *input.Status == models.ReviewApproved && review.PublishedAt == nil {
			now := time.Now().UTC()
			updates["published_at"] = &now
		}
	}
	if len(updates) == 0 {
		utils.JSONError(ctx, http.StatusUnprocessableEntity, "invalid_payload", "no fields to update")
		return
	}

	if err := storage.DB.Model(&review).Updates(updates).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	storage.DB.First(&review, review.ID)
	ctx.JSON(iris.Map{"data": review})
}

// DELETE /hotel/reviews/:id/delete — soft delete; the submission stays in
// storage for aggregation history but leaves every listing.
func HotelDeleteReview(ctx iris.Context) {
	hotelID := utils.HotelIDFromContext(ctx)
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var review models.Review
	if err := storage.DB.Where("hotel_id = ?", hotelID).First(&review, id).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}
	if err := storage.DB.Model(&review).Update("is_deleted", true).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	ctx.JSON(iris.Map{"data": iris.Map{"deleted": true}})
}
