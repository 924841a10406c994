package services

import (
	"log"
	"time"

	"github.com/Shahanees1998/HotelManagement-sub000/models"
	"github.com/Shahanees1998/HotelManagement-sub000/storage"

	"github.com/robfig/cron/v3"
)

// ExpireOverdueSubscriptions marks active subscriptions whose period ended
// before now as expired and downgrades the affected hotels to the basic
// plan. Returns the number of subscriptions expired.
func ExpireOverdueSubscriptions(now time.Time) (int64, error) {
	var overdue []models.Subscription
	if err := storage.DB.
		Where("status = ? AND end_date < ?", models.SubscriptionActive, now).
		Find(&overdue).Error; err != nil {
		return 0, err
	}
	if len(overdue) == 0 {
		return 0, nil
	}

	ids := make([]uint, 0, len(overdue))
	hotelIDs := make([]uint, 0, len(overdue))
	for _, s := range overdue {
		ids = append(ids, s.ID)
		hotelIDs = append(hotelIDs, s.HotelID)
	}

	res := storage.DB.Model(&models.Subscription{}).
		Where("id IN ?", ids).
		Update("status", models.SubscriptionExpired)
	if res.Error != nil {
		return 0, res.Error
	}

	if err := storage.DB.Model(&models.Hotel{}).
		Where("id IN ?", hotelIDs).
		Update("plan", models.PlanBasic).Error; err != nil {
		return res.RowsAffected, err
	}

	ns := NewNotificationService()
	for _, s := range overdue {
		ns.NotifyHotelStaff(s.HotelID, "subscription_expired", "Subscription expired",
			"Your "+s.Plan+" plan has expired. The account was moved to the basic plan.",
			"subscription", s.ID)
	}
	return res.RowsAffected, nil
}

// StartSubscriptionSweep schedules the daily expiry sweep. The returned
// cron is already running; callers stop it on shutdown.
func StartSubscriptionSweep() *cron.Cron {
	c := cron.New()
	c.AddFunc("0 3 * * *", func() {
		n, err := ExpireOverdueSubscriptions(time.Now().UTC())
		if err != nil {
			log.Printf("subscription sweep failed: %v", err)
			return
		}
		if n > 0 {
			log.Printf("subscription sweep: expired %d subscriptions", n)
		}
	})
	c.Start()
	return c
}
