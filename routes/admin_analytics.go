package routes

import (
	"net/http"
	"time"

	"github.com/Shahanees1998/HotelManagement-sub000/models"
	"github.com/Shahanees1998/HotelManagement-sub000/services"
	"github.com/Shahanees1998/HotelManagement-sub000/storage"
	"github.com/Shahanees1998/HotelManagement-sub000/utils"

	"github.com/kataras/iris/v12"
)

// GET /admin/analytics?days=30 — platform-wide stats: totals, top hotels,
// plan distribution and the cross-tenant review series.
func AdminAnalytics(ctx iris.Context) {
	days := ctx.URLParamIntDefault("days", 30)
	if days <= 0 || days > 365 {
		days = 30
	}

	var totalHotels, activeHotels int64
	storage.DB.Model(&models.Hotel{}).Count(&totalHotels)
	storage.DB.Model(&models.Hotel{}).Where("is_active = ?", true).Count(&activeHotels)

	var totalReviews int64
	storage.DB.Model(&models.Review{}).Where("is_deleted = ?", false).Count(&totalReviews)

	var avgRating float64
	storage.DB.Model(&models.Review{}).Where("is_deleted = ?", false).
		Select("COALESCE(avg(overall_rating), 0)").Scan(&avgRating)

	var openSupport int64
	storage.DB.Model(&models.SupportRequest{}).
		Where("status IN ?", []string{models.TicketOpen, models.TicketInProgress}).
		Count(&openSupport)

	var openEscalations int64
	storage.DB.Model(&models.Escalation{}).
		Where("status IN ?", []string{models.TicketOpen, models.TicketInProgress}).
		Count(&openEscalations)

	// Review counts per hotel, ranked. Ordering by created_at keeps the
	// tie-break stable for the top-5 cut.
	var rankings []services.HotelRanking
	storage.DB.Model(&models.Hotel{}).
		Select(`hotels.id AS hotel_id, hotels.name, hotels.plan,
			COALESCE(count(reviews.id), 0) AS total_reviews,
			COALESCE(avg(reviews.overall_rating), 0) AS average_rating`).
		Joins("LEFT JOIN reviews ON reviews.hotel_id = hotels.id AND reviews.is_deleted = false").
		Group("hotels.id").
		Order("hotels.created_at").
		Scan(&rankings)
	topHotels := services.TopHotels(rankings, 5)

	planCounts := map[string]int64{}
	type planRow struct {
		Plan  string
		Total int64
	}
	var planRows []planRow
	storage.DB.Model(&models.Hotel{}).
		Select("plan, count(*) AS total").Group("plan").Scan(&planRows)
	for _, r := range planRows {
		planCounts[r.Plan] = r.Total
	}

	now := time.Now().UTC()
	from := now.AddDate(0, 0, -(days - 1))
	prevFrom := from.AddDate(0, 0, -days)

	var currentPeriod, previousPeriod int64
	storage.DB.Model(&models.Review{}).
		Where("is_deleted = ? AND submitted_at >= ?", false, from).Count(&currentPeriod)
	storage.DB.Model(&models.Review{}).
		Where("is_deleted = ? AND submitted_at >= ? AND submitted_at < ?", false, prevFrom, from).
		Count(&previousPeriod)

	series, err := services.ReviewTimeSeries(storage.DB, 0, from, now)
	if err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	ctx.JSON(iris.Map{
		"data": iris.Map{
			"total_hotels":      totalHotels,
			"active_hotels":     activeHotels,
			"total_reviews":     totalReviews,
			"average_rating":    avgRating,
			"open_support":      openSupport,
			"open_escalations":  openEscalations,
			"top_hotels":        topHotels,
			"plan_distribution": services.PercentDistribution(planCounts),
			"period_change":     services.PercentageChange(float64(currentPeriod), float64(previousPeriod)),
			"series":            series,
		},
		"meta":  iris.Map{"days": days},
		"links": iris.Map{},
	})
}
