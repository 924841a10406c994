package services

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/Shahanees1998/HotelManagement-sub000/models"
)

// Older web clients prefixed the free-text feedback answer with this
// boilerplate before submitting; strip it when rendering.
const legacyFeedbackPrefix = "Feedback: "

// DisplayAnswer is one display-ready line of a resolved review: the
// question label, the declared type and a rendered string value. Rating
// kinds also carry the numeric value.
type DisplayAnswer struct {
	Key      string `json:"key"`
	Question string `json:"question"`
	Type     string `json:"type"`
	Display  string `json:"display"`
	Rating   int    `json:"rating,omitempty"`
}

// DecodeAnswerValue renders a stored answer per its declared question
// type. Values are an explicit tagged union: the type field decides how
// the JSON payload is read, and anything that does not match is reported
// instead of guessed at.
func DecodeAnswerValue(questionType string, raw json.RawMessage) (string, int, error) {
	switch questionType {
	case models.QuestionStarRating:
		n, err := decodeRating(raw)
		if err != nil {
			return "", 0, err
		}
		return strings.Repeat("★", n), n, nil

	case models.QuestionChoiceMultiple:
		var selections []string
		if err := json.Unmarshal(raw, &selections); err != nil {
			// Some clients double-encode the array as a JSON string.
			var s string
			if err2 := json.Unmarshal(raw, &s); err2 != nil {
				return "", 0, fmt.Errorf("multi-choice answer is not a list: %w", err)
			}
			if err2 := json.Unmarshal([]byte(s), &selections); err2 != nil {
				return "", 0, fmt.Errorf("multi-choice answer is not a list: %w", err2)
			}
		}
		return strings.Join(selections, ", "), 0, nil

	case models.QuestionYesNo:
		var b bool
		if err := json.Unmarshal(raw, &b); err == nil {
			if b {
				return "Yes", 0, nil
			}
			return "No", 0, nil
		}
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", 0, fmt.Errorf("yes/no answer is not a bool or string")
		}
		if strings.EqualFold(s, "yes") || s == "true" {
			return "Yes", 0, nil
		}
		return "No", 0, nil

	case models.QuestionChoiceSingle, models.QuestionShortText, models.QuestionLongText:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			// Raw unencoded string from a legacy payload.
			s = strings.Trim(string(raw), `"`)
		}
		return strings.TrimPrefix(s, legacyFeedbackPrefix), 0, nil

	default:
		return "", 0, fmt.Errorf("unknown question type %q", questionType)
	}
}

func decodeRating(raw json.RawMessage) (int, error) {
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		if n < 0 {
			return 0, fmt.Errorf("rating %d out of range", n)
		}
		if n > 5 {
			n = 5
		}
		return n, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, fmt.Errorf("rating is not a number")
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("rating %q is not a number", s)
	}
	if n > 5 {
		n = 5
	}
	return n, nil
}

// ResolvePredefinedAnswers matches the keyed predefined-answer blob against
// the form's predefined configuration and returns display-ready lines in
// section order: rate-us, custom rating items, feedback.
//
// Custom-rating keys are "custom-rating-<itemID>". An id that no longer
// matches an item falls back to positional matching against the effective
// item list; submissions made before an item was deleted keep a label that
// way, at the cost of possible misalignment.
func ResolvePredefinedAnswers(form *models.FeedbackForm, blob []byte) []DisplayAnswer {
	var raw map[string]json.RawMessage
	if len(blob) > 0 {
		if err := json.Unmarshal(blob, &raw); err != nil {
			raw = nil
		}
	}
	if raw == nil {
		return nil
	}

	var out []DisplayAnswer

	if v, ok := raw["rate-us"]; ok {
		if n, err := decodeRating(v); err == nil {
			out = append(out, DisplayAnswer{
				Key:      "rate-us",
				Question: "Rate Us",
				Type:     models.QuestionStarRating,
				Display:  strings.Repeat("★", n),
				Rating:   n,
			})
		}
	}

	items := EffectiveRatingItems(form)
	var ratingKeys []string
	for key := range raw {
		if strings.HasPrefix(key, "custom-rating-") {
			ratingKeys = append(ratingKeys, key)
		}
	}
	// Submission order is not preserved in the blob; sort by the numeric id
	// part so the positional fallback stays deterministic.
	sort.Slice(ratingKeys, func(i, j int) bool {
		a, _ := strconv.Atoi(strings.TrimPrefix(ratingKeys[i], "custom-rating-"))
		b, _ := strconv.Atoi(strings.TrimPrefix(ratingKeys[j], "custom-rating-"))
		if a != b {
			return a < b
		}
		return ratingKeys[i] < ratingKeys[j]
	})
	for position, key := range ratingKeys {
		n, err := decodeRating(raw[key])
		if err != nil {
			continue
		}
		label := ratingItemLabel(items, strings.TrimPrefix(key, "custom-rating-"), position)
		out = append(out, DisplayAnswer{
			Key:      key,
			Question: label,
			Type:     models.QuestionStarRating,
			Display:  strings.Repeat("★", n),
			Rating:   n,
		})
	}

	if v, ok := raw["feedback"]; ok {
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			s = strings.Trim(string(v), `"`)
		}
		out = append(out, DisplayAnswer{
			Key:      "feedback",
			Question: "Feedback",
			Type:     models.QuestionLongText,
			Display:  strings.TrimPrefix(s, legacyFeedbackPrefix),
		})
	}

	return out
}

func ratingItemLabel(items []models.CustomRatingItem, idPart string, position int) string {
	if id, err := strconv.ParseUint(idPart, 10, 64); err == nil {
		for _, item := range items {
			if item.ID == uint(id) {
				return item.Label
			}
		}
	}
	if position >= 0 && position < len(items) {
		return items[position].Label
	}
	return "Rating " + idPart
}

// ResolveReviewAnswers renders the custom-question answers of a review
// against its form definition. Answers whose question no longer exists are
// kept with a generic label rather than dropped.
func ResolveReviewAnswers(review *models.Review, form *models.FeedbackForm) []DisplayAnswer {
	questions := make(map[uint]*models.FormQuestion, len(form.CustomQuestions))
	for i := range form.CustomQuestions {
		questions[form.CustomQuestions[i].ID] = &form.CustomQuestions[i]
	}

	out := ResolvePredefinedAnswers(form, review.PredefinedAnswers)
	for _, ans := range review.Answers {
		label := fmt.Sprintf("Question %d", ans.QuestionID)
		qType := ans.Type
		if q, ok := questions[ans.QuestionID]; ok {
			label = q.Question
			if qType == "" {
				qType = q.Type
			}
		}
		display, rating, err := DecodeAnswerValue(qType, json.RawMessage(ans.Value))
		if err != nil {
			display = strings.Trim(string(ans.Value), `"`)
		}
		out = append(out, DisplayAnswer{
			Key:      strconv.FormatUint(uint64(ans.QuestionID), 10),
			Question: label,
			Type:     qType,
			Display:  display,
			Rating:   rating,
		})
	}
	return out
}
