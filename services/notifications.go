package services

import (
	"fmt"
	"log"

	"github.com/Shahanees1998/HotelManagement-sub000/models"
	"github.com/Shahanees1998/HotelManagement-sub000/storage"
)

// NotificationService writes in-app notification rows. Email and push
// delivery are handled by external collaborators; this service only feeds
// the in-app feed consumed by /notifications.
type NotificationService struct{}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

// NotifyUser creates a single notification row.
func (ns *NotificationService) NotifyUser(userID uint, ntype, title, message, refType string, refID uint) error {
	n := models.Notification{
		UserID:  userID,
		Type:    ntype,
		Title:   title,
		Message: message,
		RefType: refType,
		RefID:   refID,
	}
	if err := storage.DB.Create(&n).Error; err != nil {
		log.Printf("notification create failed for user %d: %v", userID, err)
		return err
	}
	return nil
}

// NotifyHotelStaff fans a notification out to every active staff account
// of a hotel. Users who disabled notifications are skipped.
func (ns *NotificationService) NotifyHotelStaff(hotelID uint, ntype, title, message, refType string, refID uint) {
	var staff []models.User
	if err := storage.DB.Where("hotel_id = ? AND is_active = ?", hotelID, true).Find(&staff).Error; err != nil {
		log.Printf("staff lookup failed for hotel %d: %v", hotelID, err)
		return
	}
	for _, u := range staff {
		if u.AllowsNotifications != nil && !*u.AllowsNotifications {
			continue
		}
		ns.NotifyUser(u.ID, ntype, title, message, refType, refID)
	}
}

// NotifyAdmins fans a notification out to all platform admins.
func (ns *NotificationService) NotifyAdmins(ntype, title, message, refType string, refID uint) {
	var admins []models.User
	if err := storage.DB.Where("role IN ? AND is_active = ?", []string{"admin", "super_admin"}, true).Find(&admins).Error; err != nil {
		log.Printf("admin lookup failed: %v", err)
		return
	}
	for _, u := range admins {
		ns.NotifyUser(u.ID, ntype, title, message, refType, refID)
	}
}

// NotifyReviewReceived tells hotel staff about a fresh submission and
// flags low ratings as urgent attention.
func (ns *NotificationService) NotifyReviewReceived(review *models.Review) {
	title := "New guest review"
	ntype := "review_received"
	if review.OverallRating <= 2 {
		title = "Low-rated guest review"
		ntype = "review_urgent"
	}
	message := fmt.Sprintf("%s left a %d-star review", guestDisplayName(review), review.OverallRating)
	ns.NotifyHotelStaff(review.HotelID, ntype, title, message, "review", review.ID)
}

func guestDisplayName(review *models.Review) string {
	if review.GuestName != "" {
		return review.GuestName
	}
	return "A guest"
}
