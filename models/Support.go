package models

import (
	"time"

	"gorm.io/gorm"
)

// Ticket workflow states shared by support requests and escalations.
const (
	TicketOpen       = "open"
	TicketInProgress = "in_progress"
	TicketResolved   = "resolved"
	TicketClosed     = "closed"
	TicketEscalated  = "escalated"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// SupportRequest is a ticket raised by hotel staff towards platform admins,
// optionally pointing at the review that triggered it.
type SupportRequest struct {
	gorm.Model
	UserID  uint   `json:"userID" gorm:"not null;index"`
	User    User   `json:"user" gorm:"foreignKey:UserID"`
	HotelID *uint  `json:"hotelID" gorm:"index"`
	Hotel   *Hotel `json:"hotel,omitempty" gorm:"foreignKey:HotelID"`

	ReviewID *uint   `json:"reviewID" gorm:"index"`
	Review   *Review `json:"review,omitempty" gorm:"foreignKey:ReviewID"`

	Subject  string `json:"subject" gorm:"not null;size:200"`
	Message  string `json:"message" gorm:"type:text;not null"`
	Status   string `json:"status" gorm:"type:varchar(20);default:open;index"`      // open, in_progress, resolved, closed, escalated
	Priority string `json:"priority" gorm:"type:varchar(20);default:medium;index"` // low, medium, high, urgent

	AdminResponse string     `json:"adminResponse" gorm:"type:text"`
	ResolvedAt    *time.Time `json:"resolvedAt"`
}

// Escalation is a SupportRequest promoted to higher-priority admin
// attention. Promotion is one-way; there is no de-escalation path.
type Escalation struct {
	gorm.Model
	SourceRequestID uint           `json:"sourceRequestID" gorm:"not null;index"`
	SourceRequest   SupportRequest `json:"sourceRequest" gorm:"foreignKey:SourceRequestID"`

	UserID  uint   `json:"userID" gorm:"not null;index"`
	User    User   `json:"user" gorm:"foreignKey:UserID"`
	HotelID *uint  `json:"hotelID" gorm:"index"`
	Hotel   *Hotel `json:"hotel,omitempty" gorm:"foreignKey:HotelID"`

	Subject  string `json:"subject" gorm:"not null;size:200"`
	Message  string `json:"message" gorm:"type:text;not null"`
	Status   string `json:"status" gorm:"type:varchar(20);default:open;index"`
	Priority string `json:"priority" gorm:"type:varchar(20);default:high;index"`

	AdminResponse string     `json:"adminResponse" gorm:"type:text"`
	ResolvedAt    *time.Time `json:"resolvedAt"`
}
