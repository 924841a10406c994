package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Form layouts, gated by the owning hotel's plan.
const (
	LayoutBasic     = "basic"
	LayoutGood      = "good"
	LayoutExcellent = "excellent"
)

// Custom question types.
const (
	QuestionShortText      = "SHORT_TEXT"
	QuestionLongText       = "LONG_TEXT"
	QuestionStarRating     = "STAR_RATING"
	QuestionChoiceSingle   = "MULTIPLE_CHOICE_SINGLE"
	QuestionChoiceMultiple = "MULTIPLE_CHOICE_MULTIPLE"
	QuestionYesNo          = "YES_NO"
)

// FeedbackForm is the hotel-authored schema a guest submits against.
// The predefined section (rate-us / custom rating / feedback) is toggled,
// custom questions are freely authored and ordered.
type FeedbackForm struct {
	gorm.Model
	HotelID uint  `json:"hotelID" gorm:"not null;index"`
	Hotel   Hotel `json:"hotel" gorm:"foreignKey:HotelID"`

	Title       string `json:"title" gorm:"not null;size:200"`
	Description string `json:"description" gorm:"type:text"`
	Layout      string `json:"layout" gorm:"type:varchar(20);default:basic"` // basic, good, excellent
	IsActive    bool   `json:"isActive" gorm:"default:true"`
	IsPublic    bool   `json:"isPublic" gorm:"default:false"`
	ShareSlug   string `json:"shareSlug" gorm:"uniqueIndex;size:64"` // uuid used in the public QR link

	// Predefined section toggles. RateUs and CustomRating are mutually
	// exclusive in the builder UI but not enforced here.
	HasRateUs       bool `json:"hasRateUs" gorm:"default:false"`
	HasCustomRating bool `json:"hasCustomRating" gorm:"default:false"`
	HasFeedback     bool `json:"hasFeedback" gorm:"default:false"`

	CustomRatingItems []CustomRatingItem `json:"customRatingItems" gorm:"foreignKey:FormID;constraint:OnDelete:CASCADE"`
	CustomQuestions   []FormQuestion     `json:"customQuestions" gorm:"foreignKey:FormID;constraint:OnDelete:CASCADE"`
}

// CustomRatingItem is one labeled 1-5 rating row inside the custom rating
// section (e.g. "Room Experience").
type CustomRatingItem struct {
	gorm.Model
	FormID   uint   `json:"formID" gorm:"not null;index"`
	Label    string `json:"label" gorm:"not null;size:120"`
	Order    int    `json:"order" gorm:"column:item_order"`
	IsActive bool   `json:"isActive" gorm:"default:true"`
}

// FormQuestion is a freely authored question beyond the predefined set.
// Options is a JSON array of strings, present only for choice types.
type FormQuestion struct {
	gorm.Model
	FormID     uint           `json:"formID" gorm:"not null;index"`
	Question   string         `json:"question" gorm:"not null;size:500"`
	Type       string         `json:"type" gorm:"type:varchar(32);not null"` // SHORT_TEXT, LONG_TEXT, STAR_RATING, MULTIPLE_CHOICE_SINGLE, MULTIPLE_CHOICE_MULTIPLE, YES_NO
	IsRequired bool           `json:"isRequired" gorm:"default:false"`
	Options    datatypes.JSON `json:"options"`
	Order      int            `json:"order" gorm:"column:question_order"`
}

// IsChoiceType reports whether the question type carries an options list.
func IsChoiceType(t string) bool {
	return t == QuestionChoiceSingle || t == QuestionChoiceMultiple
}
