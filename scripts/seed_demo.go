package main

import (
	"fmt"
	"log"
	"time"

	"github.com/Shahanees1998/HotelManagement-sub000/models"
	"github.com/Shahanees1998/HotelManagement-sub000/services"
	"github.com/Shahanees1998/HotelManagement-sub000/storage"
	"github.com/Shahanees1998/HotelManagement-sub000/utils"

	"github.com/google/uuid"
)

// Seeds a demo hotel, staff account, platform admin and a published form,
// then prints access tokens for poking the API locally.
func main() {
	storage.InitializeDB()

	owner := models.User{
		FirstName: "Demo",
		LastName:  "Owner",
		Email:     "owner@demo-hotel.test",
		Role:      "hotel_admin",
	}
	if err := storage.DB.Where(models.User{Email: owner.Email}).FirstOrCreate(&owner).Error; err != nil {
		log.Fatalf("seed owner: %v", err)
	}

	hotel := models.Hotel{
		Name:    "Demo Grand Hotel",
		Slug:    "demo-grand-hotel",
		City:    "Lisbon",
		Country: "PT",
		Plan:    models.PlanProfessional,
		OwnerID: owner.ID,
	}
	if err := storage.DB.Where(models.Hotel{Slug: hotel.Slug}).FirstOrCreate(&hotel).Error; err != nil {
		log.Fatalf("seed hotel: %v", err)
	}
	storage.DB.Model(&owner).Update("hotel_id", hotel.ID)
	owner.HotelID = &hotel.ID

	admin := models.User{
		FirstName: "Platform",
		LastName:  "Admin",
		Email:     "admin@platform.test",
		Role:      "super_admin",
	}
	if err := storage.DB.Where(models.User{Email: admin.Email}).FirstOrCreate(&admin).Error; err != nil {
		log.Fatalf("seed admin: %v", err)
	}

	sub := models.Subscription{
		HotelID:   hotel.ID,
		Plan:      models.PlanProfessional,
		Status:    models.SubscriptionActive,
		StartDate: time.Now().UTC(),
		EndDate:   time.Now().UTC().AddDate(1, 0, 0),
		Price:     49,
	}
	storage.DB.Where(models.Subscription{HotelID: hotel.ID, Status: models.SubscriptionActive}).FirstOrCreate(&sub)

	var existing models.FeedbackForm
	if err := storage.DB.Where("hotel_id = ?", hotel.ID).First(&existing).Error; err != nil {
		form := models.FeedbackForm{
			HotelID:           hotel.ID,
			Title:             "How was your stay?",
			Description:       "Tell us about your visit so we can improve.",
			Layout:            services.LayoutForPlan(hotel.Plan),
			IsActive:          true,
			IsPublic:          true,
			ShareSlug:         uuid.NewString(),
			HasRateUs:         false,
			HasCustomRating:   true,
			HasFeedback:       true,
			CustomRatingItems: services.DefaultRatingItems(),
		}
		if err := storage.DB.Create(&form).Error; err != nil {
			log.Fatalf("seed form: %v", err)
		}
		fmt.Println("public form slug:", form.ShareSlug)
	}

	staffToken, err := utils.CreateAccessToken(owner.ID, owner.Role, owner.HotelID)
	if err != nil {
		log.Fatalf("sign staff token: %v", err)
	}
	adminToken, err := utils.CreateAccessToken(admin.ID, admin.Role, nil)
	if err != nil {
		log.Fatalf("sign admin token: %v", err)
	}

	fmt.Println("hotel staff token:", staffToken)
	fmt.Println("platform admin token:", adminToken)
}
