package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Shahanees1998/HotelManagement-sub000/models"
	"github.com/Shahanees1998/HotelManagement-sub000/services"
	"github.com/Shahanees1998/HotelManagement-sub000/storage"
	"github.com/Shahanees1998/HotelManagement-sub000/utils"

	"github.com/google/uuid"
	"github.com/kataras/iris/v12"
	"gorm.io/gorm"
)

// RatingItemInput is one authored custom-rating row in a save payload.
type RatingItemInput struct {
	Label    string `json:"label" validate:"required"`
	Order    int    `json:"order"`
	IsActive *bool  `json:"isActive"`
}

// QuestionInput is one authored custom question in a save payload.
type QuestionInput struct {
	Question   string   `json:"question"`
	Type       string   `json:"type"`
	IsRequired bool     `json:"isRequired"`
	Options    []string `json:"options"`
	Order      int      `json:"order"`
}

// PredefinedSectionInput carries the builder's toggleable section.
type PredefinedSectionInput struct {
	HasRateUs         bool              `json:"hasRateUs"`
	HasCustomRating   bool              `json:"hasCustomRating"`
	HasFeedback       bool              `json:"hasFeedback"`
	CustomRatingItems []RatingItemInput `json:"customRatingItems"`
}

// FormInput is the full save payload produced by the builder: predefined
// section and custom questions arrive separated.
type FormInput struct {
	Title             string                 `json:"title"`
	Description       string                 `json:"description"`
	IsActive          *bool                  `json:"isActive"`
	IsPublic          *bool                  `json:"isPublic"`
	PredefinedSection PredefinedSectionInput `json:"predefinedSection"`
	CustomQuestions   []QuestionInput        `json:"customQuestions"`
}

func (in *FormInput) apply(form *models.FeedbackForm) {
	form.Title = in.Title
	form.Description = in.Description
	if in.IsActive != nil {
		form.IsActive = *in.IsActive
	}
	if in.IsPublic != nil {
		form.IsPublic = *in.IsPublic
	}
	form.HasRateUs = in.PredefinedSection.HasRateUs
	form.HasCustomRating = in.PredefinedSection.HasCustomRating
	form.HasFeedback = in.PredefinedSection.HasFeedback

	form.CustomRatingItems = nil
	for i, item := range in.PredefinedSection.CustomRatingItems {
		active := true
		if item.IsActive != nil {
			active = *item.IsActive
		}
		order := item.Order
		if order == 0 {
			order = i
		}
		form.CustomRatingItems = append(form.CustomRatingItems, models.CustomRatingItem{
			Label:    strings.TrimSpace(item.Label),
			Order:    order,
			IsActive: active,
		})
	}

	form.CustomQuestions = nil
	for i, q := range in.CustomQuestions {
		options, _ := json.Marshal(q.Options)
		if len(q.Options) == 0 {
			options = nil
		}
		order := q.Order
		if order == 0 {
			order = i
		}
		form.CustomQuestions = append(form.CustomQuestions, models.FormQuestion{
			Question:   strings.TrimSpace(q.Question),
			Type:       q.Type,
			IsRequired: q.IsRequired,
			Options:    options,
			Order:      order,
		})
	}
}

// formResponse wraps a form with the builder hints the client renders:
// the plan-derived layout, capabilities, and the missing-rating warning.
func formResponse(form *models.FeedbackForm, plan string) iris.Map {
	warnings := []string{}
	if !services.HasRatingMechanism(form) {
		warnings = append(warnings, "form has no rating mechanism; dashboards will have no rating data")
	}
	return iris.Map{
		"form":         form,
		"capabilities": services.CapabilitiesFor(plan),
		"warnings":     warnings,
	}
}

// GET /hotel/forms
func HotelListForms(ctx iris.Context) {
	hotelID := utils.HotelIDFromContext(ctx)
	page := ctx.URLParamIntDefault("page", 1)
	perPage := ctx.URLParamIntDefault("per_page", 25)
	if perPage <= 0 || perPage > 100 {
		perPage = 25
	}

	q := storage.DB.Model(&models.FeedbackForm{}).Where("hotel_id = ?", hotelID)
	var total int64
	q.Count(&total)

	var forms []models.FeedbackForm
	if err := q.Preload("CustomRatingItems").Preload("CustomQuestions").
		Offset((page - 1) * perPage).Limit(perPage).Order("created_at DESC").
		Find(&forms).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	utils.JSONPage(ctx, forms, page, perPage, total)
}

// POST /hotel/forms
func HotelCreateForm(ctx iris.Context) {
	var input FormInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_payload", "invalid request body")
		return
	}
	if strings.TrimSpace(input.Title) == "" {
		utils.JSONError(ctx, http.StatusUnprocessableEntity, "invalid_form", "title is required")
		return
	}

	hotelID := utils.HotelIDFromContext(ctx)
	var hotel models.Hotel
	if err := storage.DB.First(&hotel, hotelID).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	form := models.FeedbackForm{HotelID: hotelID}
	input.apply(&form)
	// Layout follows the current plan tier, not a user choice.
	form.Layout = services.LayoutForPlan(hotel.Plan)
	form.ShareSlug = uuid.NewString()

	if err := services.ValidateForm(&form, hotel.Plan); err != nil {
		utils.JSONError(ctx, http.StatusUnprocessableEntity, "invalid_form", err.Error())
		return
	}

	if err := storage.DB.Create(&form).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	ctx.StatusCode(http.StatusCreated)
	ctx.JSON(iris.Map{"data": formResponse(&form, hotel.Plan)})
}

// GET /hotel/forms/:id
func HotelGetForm(ctx iris.Context) {
	hotelID := utils.HotelIDFromContext(ctx)
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var form models.FeedbackForm
	if err := storage.DB.Preload("CustomRatingItems").Preload("CustomQuestions").
		Where("hotel_id = ?", hotelID).First(&form, id).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	var hotel models.Hotel
	storage.DB.First(&hotel, hotelID)
	ctx.JSON(iris.Map{"data": formResponse(&form, hotel.Plan)})
}

// PUT /hotel/forms/:id
func HotelUpdateForm(ctx iris.Context) {
	var input FormInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_payload", "invalid request body")
		return
	}
	if strings.TrimSpace(input.Title) == "" {
		utils.JSONError(ctx, http.StatusUnprocessableEntity, "invalid_form", "title is required")
		return
	}

	hotelID := utils.HotelIDFromContext(ctx)
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var form models.FeedbackForm
	if err := storage.DB.Preload("CustomRatingItems").Preload("CustomQuestions").
		Where("hotel_id = ?", hotelID).First(&form, id).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	var hotel models.Hotel
	if err := storage.DB.First(&hotel, hotelID).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	// Children are replaced wholesale with the payload's lists.
	oldItems := form.CustomRatingItems
	oldQuestions := form.CustomQuestions
	input.apply(&form)
	form.Layout = services.LayoutForPlan(hotel.Plan)

	if err := services.ValidateForm(&form, hotel.Plan); err != nil {
		utils.JSONError(ctx, http.StatusUnprocessableEntity, "invalid_form", err.Error())
		return
	}

	err = storage.DB.Transaction(func(tx *gorm.DB) error {
		if len(oldItems) > 0 {
			if err := tx.Where("form_id = ?", form.ID).Delete(&models.CustomRatingItem{}).Error; err != nil {
				return err
			}
		}
		if len(oldQuestions) > 0 {
			if err := tx.Where("form_id = ?", form.ID).Delete(&models.FormQuestion{}).Error; err != nil {
				return err
			}
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(&form).Error
	})
	if err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	storage.CacheInvalidate(context.Background(), publicFormCacheKey(form.ShareSlug))
	ctx.JSON(iris.Map{"data": formResponse(&form, hotel.Plan)})
}

// DELETE /hotel/forms/:id
func HotelDeleteForm(ctx iris.Context) {
	hotelID := utils.HotelIDFromContext(ctx)
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var form models.FeedbackForm
	if err := storage.DB.Where("hotel_id = ?", hotelID).First(&form, id).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	if err := storage.DB.Select("CustomRatingItems", "CustomQuestions").Delete(&form).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	storage.CacheInvalidate(context.Background(), publicFormCacheKey(form.ShareSlug))
	ctx.JSON(iris.Map{"data": iris.Map{"deleted": true}})
}
