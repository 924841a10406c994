package services

import (
	"testing"

	"github.com/Shahanees1998/HotelManagement-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFormRequiresTitle(t *testing.T) {
	form := &models.FeedbackForm{HasRateUs: true}
	err := ValidateForm(form, models.PlanBasic)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title")
}

func TestValidateFormRequiresAQuestion(t *testing.T) {
	form := &models.FeedbackForm{Title: "Stay feedback"}
	err := ValidateForm(form, models.PlanBasic)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one question")

	form.HasFeedback = true
	assert.NoError(t, ValidateForm(form, models.PlanBasic))
}

func TestValidateQuestionChoiceOptions(t *testing.T) {
	q := &models.FormQuestion{
		Question: "Which amenities did you use?",
		Type:     models.QuestionChoiceMultiple,
		Options:  []byte(`["Pool"]`),
	}
	err := ValidateQuestion(q)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 2 options")

	q.Options = []byte(`["Pool","Gym"]`)
	assert.NoError(t, ValidateQuestion(q))

	q.Question = "   "
	assert.Error(t, ValidateQuestion(q))
}

func TestValidateFormPlanGating(t *testing.T) {
	form := &models.FeedbackForm{
		Title:           "Stay feedback",
		HasCustomRating: true,
	}
	// Custom rating is not part of the basic tier.
	assert.Error(t, ValidateForm(form, models.PlanBasic))
	assert.NoError(t, ValidateForm(form, models.PlanProfessional))

	form.CustomQuestions = []models.FormQuestion{{
		Question: "Anything else?",
		Type:     models.QuestionChoiceMultiple,
		Options:  []byte(`["Yes","No","Maybe"]`),
	}}
	// Multi-select questions are enterprise only.
	assert.Error(t, ValidateForm(form, models.PlanProfessional))
	assert.NoError(t, ValidateForm(form, models.PlanEnterprise))
}

func TestEffectiveRatingItemsDefaultSet(t *testing.T) {
	form := &models.FeedbackForm{Title: "t", HasCustomRating: true}
	items := EffectiveRatingItems(form)
	require.Len(t, items, 6)

	labels := make([]string, len(items))
	for i, it := range items {
		labels[i] = it.Label
		assert.Equal(t, i, it.Order)
		assert.True(t, it.IsActive)
	}
	assert.Equal(t, []string{
		"Room Experience", "Staff Service", "Amenities",
		"Ambiance", "Food", "Value for Money",
	}, labels)

	// Authored items win over the default set.
	form.CustomRatingItems = []models.CustomRatingItem{{Label: "Spa"}}
	items = EffectiveRatingItems(form)
	require.Len(t, items, 1)
	assert.Equal(t, "Spa", items[0].Label)

	// No custom rating section, no items.
	form.HasCustomRating = false
	assert.Nil(t, EffectiveRatingItems(form))
}

func TestLayoutForPlan(t *testing.T) {
	assert.Equal(t, models.LayoutBasic, LayoutForPlan(models.PlanBasic))
	assert.Equal(t, models.LayoutGood, LayoutForPlan(models.PlanProfessional))
	assert.Equal(t, models.LayoutExcellent, LayoutForPlan(models.PlanEnterprise))
	assert.Equal(t, models.LayoutBasic, LayoutForPlan("unknown"))
}

func TestLayoutAllowed(t *testing.T) {
	assert.True(t, LayoutAllowed(models.PlanBasic, models.LayoutBasic))
	assert.False(t, LayoutAllowed(models.PlanBasic, models.LayoutGood))
	assert.True(t, LayoutAllowed(models.PlanProfessional, models.LayoutGood))
	assert.False(t, LayoutAllowed(models.PlanProfessional, models.LayoutExcellent))
	assert.True(t, LayoutAllowed(models.PlanEnterprise, models.LayoutExcellent))
}
