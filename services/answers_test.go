package services

import (
	"encoding/json"
	"testing"

	"github.com/Shahanees1998/HotelManagement-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAnswerValueMultiChoice(t *testing.T) {
	display, _, err := DecodeAnswerValue(models.QuestionChoiceMultiple, json.RawMessage(`["Pool","Gym"]`))
	require.NoError(t, err)
	assert.Equal(t, "Pool, Gym", display)

	// Double-encoded array from older clients.
	display, _, err = DecodeAnswerValue(models.QuestionChoiceMultiple, json.RawMessage(`"[\"Pool\",\"Gym\"]"`))
	require.NoError(t, err)
	assert.Equal(t, "Pool, Gym", display)

	_, _, err = DecodeAnswerValue(models.QuestionChoiceMultiple, json.RawMessage(`42`))
	assert.Error(t, err)
}

func TestDecodeAnswerValueStarRating(t *testing.T) {
	display, rating, err := DecodeAnswerValue(models.QuestionStarRating, json.RawMessage(`4`))
	require.NoError(t, err)
	assert.Equal(t, "★★★★", display)
	assert.Equal(t, 4, rating)

	// Ratings also arrive as strings.
	display, rating, err = DecodeAnswerValue(models.QuestionStarRating, json.RawMessage(`"3"`))
	require.NoError(t, err)
	assert.Equal(t, "★★★", display)
	assert.Equal(t, 3, rating)

	_, _, err = DecodeAnswerValue(models.QuestionStarRating, json.RawMessage(`"lots"`))
	assert.Error(t, err)
}

func TestDecodeAnswerValueYesNo(t *testing.T) {
	display, _, err := DecodeAnswerValue(models.QuestionYesNo, json.RawMessage(`true`))
	require.NoError(t, err)
	assert.Equal(t, "Yes", display)

	display, _, err = DecodeAnswerValue(models.QuestionYesNo, json.RawMessage(`"no"`))
	require.NoError(t, err)
	assert.Equal(t, "No", display)

	display, _, err = DecodeAnswerValue(models.QuestionYesNo, json.RawMessage(`"Yes"`))
	require.NoError(t, err)
	assert.Equal(t, "Yes", display)
}

func TestDecodeAnswerValueText(t *testing.T) {
	display, _, err := DecodeAnswerValue(models.QuestionShortText, json.RawMessage(`"Great stay"`))
	require.NoError(t, err)
	assert.Equal(t, "Great stay", display)

	// Legacy boilerplate prefix is stripped.
	display, _, err = DecodeAnswerValue(models.QuestionLongText, json.RawMessage(`"Feedback: Lovely pool"`))
	require.NoError(t, err)
	assert.Equal(t, "Lovely pool", display)

	_, _, err = DecodeAnswerValue("MYSTERY_TYPE", json.RawMessage(`"x"`))
	assert.Error(t, err)
}

func TestResolvePredefinedAnswers(t *testing.T) {
	form := &models.FeedbackForm{
		Title:           "Stay feedback",
		HasRateUs:       true,
		HasCustomRating: true,
		HasFeedback:     true,
	}
	blob := []byte(`{
		"rate-us": 5,
		"custom-rating-101": 4,
		"custom-rating-102": 2,
		"feedback": "Feedback: Wonderful weekend"
	}`)

	got := ResolvePredefinedAnswers(form, blob)
	require.Len(t, got, 4)

	assert.Equal(t, "rate-us", got[0].Key)
	assert.Equal(t, 5, got[0].Rating)
	assert.Equal(t, "★★★★★", got[0].Display)

	// No authored items: the default set is in effect, and the unmatched
	// ids fall back to positional labels.
	assert.Equal(t, "Room Experience", got[1].Question)
	assert.Equal(t, 4, got[1].Rating)
	assert.Equal(t, "Staff Service", got[2].Question)
	assert.Equal(t, 2, got[2].Rating)

	assert.Equal(t, "feedback", got[3].Key)
	assert.Equal(t, "Wonderful weekend", got[3].Display)
}

func TestResolvePredefinedAnswersByItemID(t *testing.T) {
	form := &models.FeedbackForm{
		Title:           "Stay feedback",
		HasCustomRating: true,
	}
	spa := models.CustomRatingItem{Label: "Spa"}
	spa.ID = 7
	pool := models.CustomRatingItem{Label: "Pool"}
	pool.ID = 9
	form.CustomRatingItems = []models.CustomRatingItem{spa, pool}

	got := ResolvePredefinedAnswers(form, []byte(`{"custom-rating-9": 3}`))
	require.Len(t, got, 1)
	assert.Equal(t, "Pool", got[0].Question)
	assert.Equal(t, 3, got[0].Rating)
}

func TestResolveReviewAnswers(t *testing.T) {
	form := &models.FeedbackForm{Title: "Stay feedback"}
	q := models.FormQuestion{
		Question: "Which amenities did you use?",
		Type:     models.QuestionChoiceMultiple,
		Options:  []byte(`["Pool","Gym","Spa"]`),
	}
	q.ID = 11
	form.CustomQuestions = []models.FormQuestion{q}

	review := &models.Review{
		OverallRating: 4,
		Answers: []models.ReviewAnswer{
			{QuestionID: 11, Type: models.QuestionChoiceMultiple, Value: []byte(`["Pool","Gym"]`)},
		},
	}

	got := ResolveReviewAnswers(review, form)
	require.Len(t, got, 1)
	assert.Equal(t, "Which amenities did you use?", got[0].Question)
	assert.Equal(t, "Pool, Gym", got[0].Display)
}
