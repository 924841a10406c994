package services

import "github.com/Shahanees1998/HotelManagement-sub000/models"

// PlanCapabilities is the single capability-lookup table entry for a plan
// tier. All plan gating in the builder goes through this table instead of
// per-feature conditionals.
type PlanCapabilities struct {
	Layouts            []string `json:"layouts"`
	MaxCustomQuestions int      `json:"maxCustomQuestions"`
	QuestionTypes      []string `json:"questionTypes"`
	CustomRating       bool     `json:"customRating"`
}

var planCapabilities = map[string]PlanCapabilities{
	models.PlanBasic: {
		Layouts:            []string{models.LayoutBasic},
		MaxCustomQuestions: 5,
		QuestionTypes: []string{
			models.QuestionShortText,
			models.QuestionStarRating,
			models.QuestionYesNo,
		},
		CustomRating: false,
	},
	models.PlanProfessional: {
		Layouts:            []string{models.LayoutBasic, models.LayoutGood},
		MaxCustomQuestions: 15,
		QuestionTypes: []string{
			models.QuestionShortText,
			models.QuestionLongText,
			models.QuestionStarRating,
			models.QuestionChoiceSingle,
			models.QuestionYesNo,
		},
		CustomRating: true,
	},
	models.PlanEnterprise: {
		Layouts:            []string{models.LayoutBasic, models.LayoutGood, models.LayoutExcellent},
		MaxCustomQuestions: 50,
		QuestionTypes: []string{
			models.QuestionShortText,
			models.QuestionLongText,
			models.QuestionStarRating,
			models.QuestionChoiceSingle,
			models.QuestionChoiceMultiple,
			models.QuestionYesNo,
		},
		CustomRating: true,
	},
}

// CapabilitiesFor returns the capability set for a plan, defaulting to
// basic for unknown tiers.
func CapabilitiesFor(plan string) PlanCapabilities {
	if caps, ok := planCapabilities[plan]; ok {
		return caps
	}
	return planCapabilities[models.PlanBasic]
}

// LayoutForPlan derives the builder layout from the hotel's current plan.
// The layout is not an independent user choice; it follows the tier.
func LayoutForPlan(plan string) string {
	switch plan {
	case models.PlanEnterprise:
		return models.LayoutExcellent
	case models.PlanProfessional:
		return models.LayoutGood
	default:
		return models.LayoutBasic
	}
}

// LayoutAllowed reports whether a plan may publish forms with a layout.
func LayoutAllowed(plan, layout string) bool {
	for _, l := range CapabilitiesFor(plan).Layouts {
		if l == layout {
			return true
		}
	}
	return false
}

// QuestionTypeAllowed reports whether a plan may author a question type.
func QuestionTypeAllowed(plan, questionType string) bool {
	for _, t := range CapabilitiesFor(plan).QuestionTypes {
		if t == questionType {
			return true
		}
	}
	return false
}
