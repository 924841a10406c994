package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentageChange(t *testing.T) {
	// No previous period means no indicator at all.
	assert.Nil(t, PercentageChange(42, 0))

	// Changes under 0.1% are noise, not an indicator.
	assert.Nil(t, PercentageChange(100.05, 100))
	assert.Nil(t, PercentageChange(100, 100))

	up := PercentageChange(150, 100)
	require.NotNil(t, up)
	assert.Equal(t, 50.0, up.Value)
	assert.True(t, up.IsPositive)

	down := PercentageChange(50, 100)
	require.NotNil(t, down)
	assert.Equal(t, 50.0, down.Value)
	assert.False(t, down.IsPositive)

	// Magnitude is capped at 100%.
	capped := PercentageChange(300, 100)
	require.NotNil(t, capped)
	assert.Equal(t, 100.0, capped.Value)
	assert.True(t, capped.IsPositive)
}

func TestPercentOf(t *testing.T) {
	assert.Equal(t, 0, PercentOf(0, 0))
	assert.Equal(t, 0, PercentOf(5, 0))
	assert.Equal(t, 50, PercentOf(1, 2))
	// Rounds instead of truncating.
	assert.Equal(t, 67, PercentOf(2, 3))
	assert.Equal(t, 33, PercentOf(1, 3))
}

func TestPercentDistribution(t *testing.T) {
	got := PercentDistribution(map[string]int64{"a": 1, "b": 1, "c": 1})
	assert.Equal(t, 33, got["a"])
	assert.Equal(t, 33, got["b"])
	assert.Equal(t, 33, got["c"])

	got = PercentDistribution(map[string]int64{"low": 1, "high": 3})
	assert.Equal(t, 25, got["low"])
	assert.Equal(t, 75, got["high"])

	// Zero total: every entry is 0, no division.
	got = PercentDistribution(map[string]int64{"a": 0, "b": 0})
	assert.Equal(t, 0, got["a"])
	assert.Equal(t, 0, got["b"])
}

func TestTopHotelsOrdering(t *testing.T) {
	in := []HotelRanking{
		{HotelID: 1, TotalReviews: 10},
		{HotelID: 2, TotalReviews: 5},
		{HotelID: 3, TotalReviews: 20},
		{HotelID: 4, TotalReviews: 0},
		{HotelID: 5, TotalReviews: 15},
	}
	got := TopHotels(in, 5)
	counts := make([]int64, len(got))
	for i, r := range got {
		counts[i] = r.TotalReviews
	}
	assert.Equal(t, []int64{20, 15, 10, 5, 0}, counts)

	// Input order is untouched.
	assert.Equal(t, int64(10), in[0].TotalReviews)
}

func TestTopHotelsStableTies(t *testing.T) {
	in := []HotelRanking{
		{HotelID: 1, TotalReviews: 7},
		{HotelID: 2, TotalReviews: 7},
		{HotelID: 3, TotalReviews: 9},
		{HotelID: 4, TotalReviews: 7},
	}
	got := TopHotels(in, 3)
	require.Len(t, got, 3)
	assert.Equal(t, uint(3), got[0].HotelID)
	// Tied hotels keep input order.
	assert.Equal(t, uint(1), got[1].HotelID)
	assert.Equal(t, uint(2), got[2].HotelID)
}
