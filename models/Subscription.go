package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	SubscriptionActive   = "active"
	SubscriptionExpired  = "expired"
	SubscriptionCanceled = "canceled"
)

// Subscription records a hotel's paid plan period. Billing itself happens
// outside this service; we only track the resulting plan window.
type Subscription struct {
	gorm.Model
	HotelID uint  `json:"hotelID" gorm:"not null;index"`
	Hotel   Hotel `json:"hotel" gorm:"foreignKey:HotelID"`

	Plan   string `json:"plan" gorm:"type:varchar(20);not null"`              // basic, professional, enterprise
	Status string `json:"status" gorm:"type:varchar(20);default:active;index"` // active, expired, canceled

	StartDate time.Time `json:"startDate" gorm:"not null"`
	EndDate   time.Time `json:"endDate" gorm:"not null;index"`
	Price     float64   `json:"price"`

	CanceledAt *time.Time `json:"canceledAt"`
}
