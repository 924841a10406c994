package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Shahanees1998/HotelManagement-sub000/models"
)

// Default custom-rating section used when a hotel enables custom ratings
// without authoring its own items. Order is fixed.
var defaultRatingLabels = []string{
	"Room Experience",
	"Staff Service",
	"Amenities",
	"Ambiance",
	"Food",
	"Value for Money",
}

// DefaultRatingItems returns the fixed six-item custom rating set.
func DefaultRatingItems() []models.CustomRatingItem {
	items := make([]models.CustomRatingItem, 0, len(defaultRatingLabels))
	for i, label := range defaultRatingLabels {
		items = append(items, models.CustomRatingItem{Label: label, Order: i, IsActive: true})
	}
	return items
}

// EffectiveRatingItems resolves the rating items a guest actually sees:
// the authored list, or the default set when custom rating is enabled and
// no items were supplied.
func EffectiveRatingItems(form *models.FeedbackForm) []models.CustomRatingItem {
	if !form.HasCustomRating {
		return nil
	}
	if len(form.CustomRatingItems) == 0 {
		return DefaultRatingItems()
	}
	return form.CustomRatingItems
}

// ValidateQuestion rejects a custom question before it reaches the form:
// empty text, or a choice type with fewer than two options.
func ValidateQuestion(q *models.FormQuestion) error {
	if strings.TrimSpace(q.Question) == "" {
		return errors.New("question text is required")
	}
	switch q.Type {
	case models.QuestionShortText, models.QuestionLongText, models.QuestionStarRating,
		models.QuestionChoiceSingle, models.QuestionChoiceMultiple, models.QuestionYesNo:
	default:
		return fmt.Errorf("unknown question type %q", q.Type)
	}
	if models.IsChoiceType(q.Type) {
		var options []string
		if len(q.Options) > 0 {
			if err := json.Unmarshal(q.Options, &options); err != nil {
				return errors.New("options must be a list of strings")
			}
		}
		if len(options) < 2 {
			return errors.New("choice questions need at least 2 options")
		}
	}
	return nil
}

// ValidateForm checks a full save payload against the owning hotel's plan.
// Failures here block the save; nothing is written.
func ValidateForm(form *models.FeedbackForm, plan string) error {
	if strings.TrimSpace(form.Title) == "" {
		return errors.New("title is required")
	}

	predefined := 0
	if form.HasRateUs {
		predefined++
	}
	if form.HasCustomRating {
		predefined++
	}
	if form.HasFeedback {
		predefined++
	}
	if predefined+len(form.CustomQuestions) == 0 {
		return errors.New("form needs at least one question")
	}

	caps := CapabilitiesFor(plan)
	if form.HasCustomRating && !caps.CustomRating {
		return fmt.Errorf("custom rating is not available on the %s plan", plan)
	}
	if len(form.CustomQuestions) > caps.MaxCustomQuestions {
		return fmt.Errorf("plan allows at most %d custom questions", caps.MaxCustomQuestions)
	}
	if form.Layout != "" && !LayoutAllowed(plan, form.Layout) {
		return fmt.Errorf("layout %q is not available on the %s plan", form.Layout, plan)
	}

	for i := range form.CustomQuestions {
		if err := ValidateQuestion(&form.CustomQuestions[i]); err != nil {
			return fmt.Errorf("question %d: %w", i+1, err)
		}
		if !QuestionTypeAllowed(plan, form.CustomQuestions[i].Type) {
			return fmt.Errorf("question %d: type %s is not available on the %s plan", i+1, form.CustomQuestions[i].Type, plan)
		}
	}
	return nil
}

// HasRatingMechanism reports whether the form carries at least one rating
// section. Forms without one still save; aggregation just has less to show,
// so callers surface this as a warning only.
func HasRatingMechanism(form *models.FeedbackForm) bool {
	return form.HasRateUs || form.HasCustomRating
}
