package models

import "gorm.io/gorm"

// Plan tiers, ordered by capability.
const (
	PlanBasic        = "basic"
	PlanProfessional = "professional"
	PlanEnterprise   = "enterprise"
)

// Hotel is a tenant of the platform. Every form, review and member row
// belongs to exactly one hotel.
type Hotel struct {
	gorm.Model
	Name        string `json:"name" gorm:"not null"`
	Slug        string `json:"slug" gorm:"uniqueIndex;size:80"`
	Description string `json:"description"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Country     string `json:"country"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	LogoURL     string `json:"logoURL"`

	Plan     string `json:"plan" gorm:"type:varchar(20);default:basic;index"` // basic, professional, enterprise
	IsActive bool   `json:"isActive" gorm:"default:true"`

	OwnerID uint `json:"ownerID" gorm:"not null;index"`
	Owner   User `json:"owner" gorm:"foreignKey:OwnerID"`

	TotalReviews int64 `json:"totalReviews" gorm:"-"` // computed for listings, not persisted
}
