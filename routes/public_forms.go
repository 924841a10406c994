package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/Shahanees1998/HotelManagement-sub000/models"
	"github.com/Shahanees1998/HotelManagement-sub000/services"
	"github.com/Shahanees1998/HotelManagement-sub000/storage"
	"github.com/Shahanees1998/HotelManagement-sub000/utils"

	"github.com/kataras/iris/v12"
)

func publicFormCacheKey(slug string) string {
	return "public_form:" + slug
}

// publicForm is the guest-facing rendering of a form definition: rating
// items are resolved (default substitution applied) and internal flags are
// left out.
type publicForm struct {
	FormID          uint                      `json:"formID"`
	HotelName       string                    `json:"hotelName"`
	Title           string                    `json:"title"`
	Description     string                    `json:"description"`
	Layout          string                    `json:"layout"`
	HasRateUs       bool                      `json:"hasRateUs"`
	HasCustomRating bool                      `json:"hasCustomRating"`
	HasFeedback     bool                      `json:"hasFeedback"`
	RatingItems     []models.CustomRatingItem `json:"ratingItems,omitempty"`
	CustomQuestions []models.FormQuestion     `json:"customQuestions"`
}

// GET /public/forms/:slug — form definition for the guest renderer.
func PublicGetForm(ctx iris.Context) {
	slug := ctx.Params().GetString("slug")
	if slug == "" {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_slug", "invalid slug")
		return
	}

	bg := context.Background()
	if cached := storage.CacheGet(bg, publicFormCacheKey(slug)); cached != "" {
		ctx.ContentType("application/json")
		ctx.WriteString(cached)
		return
	}

	var form models.FeedbackForm
	if err := storage.DB.Preload("CustomRatingItems").Preload("CustomQuestions").Preload("Hotel").
		Where("share_slug = ? AND is_active = ? AND is_public = ?", slug, true, true).
		First(&form).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	resp := publicForm{
		FormID:          form.ID,
		HotelName:       form.Hotel.Name,
		Title:           form.Title,
		Description:     form.Description,
		Layout:          form.Layout,
		HasRateUs:       form.HasRateUs,
		HasCustomRating: form.HasCustomRating,
		HasFeedback:     form.HasFeedback,
		RatingItems:     services.EffectiveRatingItems(&form),
		CustomQuestions: form.CustomQuestions,
	}

	body := iris.Map{"data": resp, "meta": iris.Map{}, "links": iris.Map{}}
	if payload, err := json.Marshal(body); err == nil {
		storage.CacheSet(bg, publicFormCacheKey(slug), string(payload), 5*time.Minute)
	}
	ctx.JSON(body)
}

// AnswerInput is one discrete custom-question answer in a submission.
// Value stays raw JSON; it is decoded against the declared type below.
type AnswerInput struct {
	QuestionID uint            `json:"questionId"`
	Value      json.RawMessage `json:"answer"`
}

// SubmitReviewInput is a guest's filled-out response.
type SubmitReviewInput struct {
	GuestName         string                     `json:"guestName" validate:"required"`
	GuestEmail        string                     `json:"guestEmail" validate:"required,email"`
	GuestPhone        string                     `json:"guestPhone"`
	RoomNumber        string                     `json:"roomNumber"`
	OverallRating     int                        `json:"overallRating" validate:"required,min=1,max=5"`
	PredefinedAnswers map[string]json.RawMessage `json:"predefinedAnswers"`
	Answers           []AnswerInput              `json:"answers"`
}

// POST /public/forms/:slug/submit — create a review. Content is immutable
// after this point; only the workflow overlay mutates later.
func PublicSubmitReview(ctx iris.Context) {
	slug := ctx.Params().GetString("slug")

	var input SubmitReviewInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var form models.FeedbackForm
	if err := storage.DB.Preload("CustomQuestions").
		Where("share_slug = ? AND is_active = ?", slug, true).
		First(&form).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	questions := make(map[uint]*models.FormQuestion, len(form.CustomQuestions))
	for i := range form.CustomQuestions {
		questions[form.CustomQuestions[i].ID] = &form.CustomQuestions[i]
	}

	answered := make(map[uint]bool, len(input.Answers))
	answers := make([]models.ReviewAnswer, 0, len(input.Answers))
	for _, a := range input.Answers {
		q, ok := questions[a.QuestionID]
		if !ok {
			utils.JSONError(ctx, http.StatusUnprocessableEntity, "invalid_answer", "answer references an unknown question")
			return
		}
		// Boundary validation: the value must decode under the question's
		// declared type before anything is stored.
		if _, _, err := services.DecodeAnswerValue(q.Type, a.Value); err != nil {
			utils.JSONError(ctx, http.StatusUnprocessableEntity, "invalid_answer", err.Error())
			return
		}
		answered[a.QuestionID] = true
		answers = append(answers, models.ReviewAnswer{
			QuestionID: a.QuestionID,
			Type:       q.Type,
			Value:      []byte(a.Value),
		})
	}
	for _, q := range form.CustomQuestions {
		if q.IsRequired && !answered[q.ID] {
			utils.JSONError(ctx, http.StatusUnprocessableEntity, "missing_answer", "question \""+q.Question+"\" is required")
			return
		}
	}

	var predefined []byte
	if len(input.PredefinedAnswers) > 0 {
		predefined, _ = json.Marshal(input.PredefinedAnswers)
	}

	review := models.Review{
		FormID:            form.ID,
		HotelID:           form.HotelID,
		GuestName:         strings.TrimSpace(input.GuestName),
		GuestEmail:        strings.ToLower(strings.TrimSpace(input.GuestEmail)),
		GuestPhone:        utils.NormalizePhoneNumber(input.GuestPhone),
		RoomNumber:        strings.TrimSpace(input.RoomNumber),
		OverallRating:     input.OverallRating,
		PredefinedAnswers: predefined,
		Answers:           answers,
		SubmittedAt:       time.Now().UTC(),
		Status:            models.ReviewPending,
	}
	if err := storage.DB.Create(&review).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	services.NewNotificationService().NotifyReviewReceived(&review)

	ctx.StatusCode(http.StatusCreated)
	ctx.JSON(iris.Map{"data": iris.Map{"id": review.ID, "submittedAt": review.SubmittedAt}})
}
