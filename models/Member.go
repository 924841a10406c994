package models

import "gorm.io/gorm"

const (
	MemberPending  = "PENDING"
	MemberActive   = "ACTIVE"
	MemberInactive = "INACTIVE"
)

// Member is a hotel loyalty-program member, typically bulk-loaded from a
// CSV export of the hotel's existing membership list.
type Member struct {
	gorm.Model
	HotelID uint  `json:"hotelID" gorm:"not null;index"`
	Hotel   Hotel `json:"hotel" gorm:"foreignKey:HotelID"`

	FirstName        string `json:"firstName" gorm:"not null;size:100"`
	LastName         string `json:"lastName" gorm:"not null;size:100"`
	Email            string `json:"email" gorm:"not null;size:200;index"`
	Phone            string `json:"phone" gorm:"size:40"`
	Status           string `json:"status" gorm:"type:varchar(20);default:PENDING"` // PENDING, ACTIVE, INACTIVE
	MembershipNumber string `json:"membershipNumber" gorm:"size:60"`
	JoinDate         string `json:"joinDate" gorm:"size:20"`
	PaidDate         string `json:"paidDate" gorm:"size:20"`
}
