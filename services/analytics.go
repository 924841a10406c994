package services

import (
	"math"
	"sort"
	"time"

	"github.com/Shahanees1998/HotelManagement-sub000/models"

	"gorm.io/gorm"
)

// HotelRanking is one row of a top-hotels listing.
type HotelRanking struct {
	HotelID       uint    `json:"hotelID"`
	Name          string  `json:"name"`
	Plan          string  `json:"plan"`
	TotalReviews  int64   `json:"totalReviews"`
	AverageRating float64 `json:"averageRating"`
}

// TopHotels returns the top n hotels by review count, descending. The sort
// is stable: ties keep their input order.
func TopHotels(rankings []HotelRanking, n int) []HotelRanking {
	out := make([]HotelRanking, len(rankings))
	copy(out, rankings)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalReviews > out[j].TotalReviews
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// PercentDistribution converts per-category counts into rounded integer
// percentages. Every entry is round(count/total*100); all zeros when the
// total is zero. The rounded values may not sum to exactly 100.
func PercentDistribution(counts map[string]int64) map[string]int {
	var total int64
	for _, c := range counts {
		total += c
	}
	out := make(map[string]int, len(counts))
	for k, c := range counts {
		if total == 0 {
			out[k] = 0
			continue
		}
		out[k] = int(math.Round(float64(c) / float64(total) * 100))
	}
	return out
}

// PercentOf returns part/total as a rounded integer percentage, 0 when the
// total is zero.
func PercentOf(part, total int64) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// ChangeIndicator is a dashboard delta between two periods.
type ChangeIndicator struct {
	Value      float64 `json:"value"`
	IsPositive bool    `json:"isPositive"`
}

// PercentageChange compares a current and previous period. It returns nil
// (no indicator) when the previous value is zero or the change is below
// 0.1%, and caps the reported magnitude at 100%.
func PercentageChange(current, previous float64) *ChangeIndicator {
	if previous == 0 {
		return nil
	}
	change := (current - previous) / previous * 100
	if math.Abs(change) < 0.1 {
		return nil
	}
	return &ChangeIndicator{
		Value:      math.Min(math.Abs(change), 100),
		IsPositive: change >= 0,
	}
}

// TimeBucket is one day of review activity.
type TimeBucket struct {
	Date          time.Time `json:"date"`
	TotalReviews  int64     `json:"totalReviews"`
	AverageRating float64   `json:"averageRating"`
}

type bucketRow struct {
	Day    time.Time
	Total  int64
	Rating float64
}

// ReviewTimeSeries aggregates reviews into per-day buckets between from
// and to (inclusive), scoped to a hotel when hotelID > 0. Days with no
// reviews appear as zero buckets so charts keep a continuous axis.
func ReviewTimeSeries(db *gorm.DB, hotelID uint, from, to time.Time) ([]TimeBucket, error) {
	q := db.Model(&models.Review{}).
		Select("date_trunc('day', submitted_at) AS day, count(*) AS total, avg(overall_rating) AS rating").
		Where("is_deleted = ?", false).
		Where("submitted_at >= ? AND submitted_at < ?", from, to.AddDate(0, 0, 1)).
		Group("day").
		Order("day")
	if hotelID > 0 {
		q = q.Where("hotel_id = ?", hotelID)
	}

	var rows []bucketRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}

	byDay := make(map[string]bucketRow, len(rows))
	for _, r := range rows {
		byDay[r.Day.UTC().Format("2006-01-02")] = r
	}

	var out []TimeBucket
	for d := from.UTC().Truncate(24 * time.Hour); !d.After(to.UTC()); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		bucket := TimeBucket{Date: d}
		if r, ok := byDay[key]; ok {
			bucket.TotalReviews = r.Total
			bucket.AverageRating = math.Round(r.Rating*100) / 100
		}
		out = append(out, bucket)
	}
	return out, nil
}

// RatingDistribution counts reviews per star value (1..5).
func RatingDistribution(db *gorm.DB, hotelID uint) (map[string]int64, error) {
	type row struct {
		Rating int
		Total  int64
	}
	q := db.Model(&models.Review{}).
		Select("overall_rating AS rating, count(*) AS total").
		Where("is_deleted = ?", false).
		Group("overall_rating")
	if hotelID > 0 {
		q = q.Where("hotel_id = ?", hotelID)
	}
	var rows []row
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := map[string]int64{"1": 0, "2": 0, "3": 0, "4": 0, "5": 0}
	for _, r := range rows {
		if r.Rating >= 1 && r.Rating <= 5 {
			out[string(rune('0'+r.Rating))] = r.Total
		}
	}
	return out, nil
}
