package routes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Shahanees1998/HotelManagement-sub000/models"
	"github.com/Shahanees1998/HotelManagement-sub000/services"
	"github.com/Shahanees1998/HotelManagement-sub000/storage"
	"github.com/Shahanees1998/HotelManagement-sub000/utils"

	"github.com/kataras/iris/v12"
	"gorm.io/gorm"
)

const dashboardCacheTTL = 60 * time.Second

// GET /hotel/dashboard?days=30 — stats cards plus a real day-bucketed
// review series for the chart.
func HotelDashboard(ctx iris.Context) {
	hotelID := utils.HotelIDFromContext(ctx)
	days := ctx.URLParamIntDefault("days", 30)
	if days <= 0 || days > 365 {
		days = 30
	}

	bg := context.Background()
	cacheKey := fmt.Sprintf("dashboard:%d:%d", hotelID, days)
	if cached := storage.CacheGet(bg, cacheKey); cached != "" {
		ctx.ContentType("application/json")
		ctx.WriteString(cached)
		return
	}

	now := time.Now().UTC()
	from := now.AddDate(0, 0, -(days - 1))
	prevFrom := from.AddDate(0, 0, -days)

	reviews := func() *gorm.DB {
		return storage.DB.Model(&models.Review{}).
			Where("hotel_id = ? AND is_deleted = ?", hotelID, false)
	}

	var totalReviews int64
	reviews().Count(&totalReviews)

	var avgRating float64
	reviews().Select("COALESCE(avg(overall_rating), 0)").Scan(&avgRating)

	var urgentCount int64
	reviews().Where("is_urgent = ?", true).Count(&urgentCount)

	var repliedCount int64
	reviews().Where("is_replied = ?", true).Count(&repliedCount)

	var currentPeriod, previousPeriod int64
	reviews().Where("submitted_at >= ?", from).Count(&currentPeriod)
	reviews().Where("submitted_at >= ? AND submitted_at < ?", prevFrom, from).Count(&previousPeriod)

	series, err := services.ReviewTimeSeries(storage.DB, hotelID, from, now)
	if err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	ratingCounts, err := services.RatingDistribution(storage.DB, hotelID)
	if err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	body := iris.Map{
		"data": iris.Map{
			"total_reviews":       totalReviews,
			"average_rating":      avgRating,
			"urgent_reviews":      urgentCount,
			"replied_percent":     services.PercentOf(repliedCount, totalReviews),
			"reviews_this_period": currentPeriod,
			"period_change":       services.PercentageChange(float64(currentPeriod), float64(previousPeriod)),
			"rating_distribution": services.PercentDistribution(ratingCounts),
			"series":              series,
		},
		"meta":  iris.Map{"days": days},
		"links": iris.Map{},
	}

	if payload, err := json.Marshal(body); err == nil {
		storage.CacheSet(bg, cacheKey, string(payload), dashboardCacheTTL)
	}
	ctx.JSON(body)
}

// GET /hotel/dashboard/export?days=30 — the chart series as CSV.
func HotelDashboardExport(ctx iris.Context) {
	hotelID := utils.HotelIDFromContext(ctx)
	days := ctx.URLParamIntDefault("days", 30)
	if days <= 0 || days > 365 {
		days = 30
	}

	now := time.Now().UTC()
	from := now.AddDate(0, 0, -(days - 1))

	series, err := services.ReviewTimeSeries(storage.DB, hotelID, from, now)
	if err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	rows := make([]utils.TimeSeriesCSVRow, 0, len(series))
	for _, b := range series {
		rows = append(rows, utils.TimeSeriesCSVRow{
			Date:          b.Date.Format("2006-01-02"),
			TotalReviews:  b.TotalReviews,
			AverageRating: b.AverageRating,
		})
	}

	ctx.Header("Content-Disposition", `attachment; filename="reviews_`+now.Format("20060102")+`.csv"`)
	ctx.ContentType("text/csv")
	ctx.WriteString(utils.BuildTimeSeriesCSV(rows))
}
