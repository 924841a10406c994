package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	ReviewPending  = "pending"
	ReviewApproved = "approved"
	ReviewRejected = "rejected"
)

// Review is one guest submission against a FeedbackForm. The submitted
// content is immutable after creation; only the workflow overlay fields
// (status, flags, replies) mutate.
type Review struct {
	gorm.Model
	FormID  uint         `json:"formID" gorm:"not null;index"`
	Form    FeedbackForm `json:"form" gorm:"foreignKey:FormID"`
	HotelID uint         `json:"hotelID" gorm:"not null;index"`
	Hotel   Hotel        `json:"hotel" gorm:"foreignKey:HotelID"`

	GuestName  string `json:"guestName" gorm:"size:120"`
	GuestEmail string `json:"guestEmail" gorm:"size:200;index"`
	GuestPhone string `json:"guestPhone" gorm:"size:40"`
	RoomNumber string `json:"roomNumber" gorm:"size:20"`

	OverallRating int `json:"overallRating" gorm:"not null;check:overall_rating >= 1 AND overall_rating <= 5"`

	// PredefinedAnswers is a blob keyed by synthetic identifiers:
	// "rate-us", "feedback", "custom-rating-<itemID>".
	PredefinedAnswers datatypes.JSON `json:"predefinedAnswers"`
	Answers           []ReviewAnswer `json:"answers" gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE"`

	SubmittedAt time.Time  `json:"submittedAt" gorm:"not null;index"`
	PublishedAt *time.Time `json:"publishedAt"`

	// Workflow overlay.
	Status    string `json:"status" gorm:"type:varchar(20);default:pending;index"` // pending, approved, rejected
	IsChecked bool   `json:"isChecked" gorm:"default:false"`
	IsUrgent  bool   `json:"isUrgent" gorm:"default:false;index"`
	IsReplied bool   `json:"isReplied" gorm:"default:false"`
	IsDeleted bool   `json:"isDeleted" gorm:"default:false;index"`
	IsPublic  bool   `json:"isPublic" gorm:"default:false"`
	IsShared  bool   `json:"isShared" gorm:"default:false"`

	Responses []ReviewReply `json:"responses" gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE"`
}

// ReviewAnswer is one discrete answer to a custom question. Value is JSON:
// a string, a number or an array of strings depending on the question type.
type ReviewAnswer struct {
	gorm.Model
	ReviewID   uint           `json:"reviewID" gorm:"not null;index"`
	QuestionID uint           `json:"questionID" gorm:"not null;index"`
	Type       string         `json:"type" gorm:"type:varchar(32)"`
	Value      datatypes.JSON `json:"value"`
}

// ReviewReply is one staff response sent for a review. The log is
// append-only; replies are never edited or removed.
type ReviewReply struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ReviewID  uint      `json:"reviewID" gorm:"not null;index"`
	ReplyText string    `json:"replyText" gorm:"type:text;not null"`
	SentTo    string    `json:"sentTo" gorm:"size:200"`
	SentAt    time.Time `json:"sentAt"`
	CreatedAt time.Time `json:"createdAt"`
}
