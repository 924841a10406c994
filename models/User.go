package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	FirstName           string `json:"firstName"`
	LastName            string `json:"lastName"`
	Email               string `json:"email" gorm:"uniqueIndex"`
	Password            string `json:"-"`
	PhoneNumber         string `json:"phoneNumber"`
	AvatarURL           string `json:"avatarURL"`
	HotelID             *uint  `json:"hotelID" gorm:"index"`
	Hotel               *Hotel `json:"hotel,omitempty" gorm:"foreignKey:HotelID"`
	Role                string `json:"role" gorm:"type:varchar(20);default:staff;index"` // staff, hotel_admin, admin, super_admin
	IsActive            bool   `json:"isActive" gorm:"default:true"`
	AllowsNotifications *bool  `json:"allowsNotifications"`
}

// IsPlatformAdmin reports whether the user belongs to the platform side
// (no tenant hotel, cross-hotel visibility).
func (u *User) IsPlatformAdmin() bool {
	return u.Role == "admin" || u.Role == "super_admin"
}
