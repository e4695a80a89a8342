package expiry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"foodkeeper/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datedItem(expiry time.Time) model.FoodItem {
	e := model.NewDate(expiry)
	return model.FoodItem{
		Name:             "test",
		ExpiryDate:       &e,
		RegistrationDate: model.NewDate(date(2025, 1, 1)),
	}
}

func TestEvaluateDatedItems(t *testing.T) {
	today := date(2025, 1, 8)

	tests := []struct {
		name      string
		expiry    time.Time
		wantLabel string
		wantTag   Tag
		wantDays  int
	}{
		{"expired five days ago", date(2025, 1, 3), "期限切れ (5日経過)", TagExpired, -5},
		{"expired yesterday", date(2025, 1, 7), "期限切れ (1日経過)", TagExpired, -1},
		{"due today", date(2025, 1, 8), "本日まで", TagDueToday, 0},
		{"tomorrow is near expiry", date(2025, 1, 9), "あと1日", TagNearExpiry, 1},
		{"two days remaining", date(2025, 1, 10), "あと2日", TagNearExpiry, 2},
		{"three days is still near", date(2025, 1, 11), "あと3日", TagNearExpiry, 3},
		{"four days is normal", date(2025, 1, 12), "あと4日", TagNormal, 4},
		{"far future", date(2025, 6, 1), "あと144日", TagNormal, 144},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(today, datedItem(tt.expiry))
			assert.Equal(t, tt.wantLabel, got.Label)
			assert.Equal(t, tt.wantTag, got.Tag)
			assert.Equal(t, tt.wantDays, got.Days)
		})
	}
}

func TestEvaluateStripsTimeOfDay(t *testing.T) {
	// 23:59 on the expiry day is still "due today", not expired.
	today := time.Date(2025, 1, 8, 23, 59, 0, 0, time.UTC)
	got := Evaluate(today, datedItem(time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, TagDueToday, got.Tag)

	// An expiry stored with a late time-of-day still flips at midnight.
	got = Evaluate(date(2025, 1, 9), datedItem(time.Date(2025, 1, 8, 23, 0, 0, 0, time.UTC)))
	assert.Equal(t, TagExpired, got.Tag)
}

func TestEvaluateNoExpiryItems(t *testing.T) {
	today := date(2025, 1, 8)

	tests := []struct {
		name         string
		registration time.Time
		wantLabel    string
		wantDays     int
	}{
		{"registered today", date(2025, 1, 8), "本日登録", 0},
		{"registered a week ago", date(2025, 1, 1), "登録から7日経過", 7},
		{"future registration clamps to zero", date(2025, 1, 20), "本日登録", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := model.FoodItem{
				Name:             "test",
				HasNoExpiry:      true,
				RegistrationDate: model.NewDate(tt.registration),
			}
			got := Evaluate(today, item)
			assert.Equal(t, tt.wantLabel, got.Label)
			assert.Equal(t, TagNormal, got.Tag)
			assert.Equal(t, tt.wantDays, got.Days)
		})
	}
}

func TestEvaluateAcrossTimeZones(t *testing.T) {
	// Stored dates are UTC instants; a caller's clock east of UTC must not
	// shift the count. Expiry 2025-01-10 seen from JST mornings:
	jst := time.FixedZone("JST", 9*60*60)
	expiry := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	got := Evaluate(time.Date(2025, 1, 8, 10, 0, 0, 0, jst), datedItem(expiry))
	assert.Equal(t, 2, got.Days)
	assert.Equal(t, "あと2日", got.Label)
	assert.Equal(t, TagNearExpiry, got.Tag)

	got = Evaluate(time.Date(2025, 1, 10, 10, 0, 0, 0, jst), datedItem(expiry))
	assert.Equal(t, TagDueToday, got.Tag)

	got = Evaluate(time.Date(2025, 1, 11, 0, 30, 0, 0, jst), datedItem(expiry))
	assert.Equal(t, TagExpired, got.Tag)

	// Westward offsets too: late evening in Honolulu is still the same
	// calendar day there.
	hst := time.FixedZone("HST", -10*60*60)
	got = Evaluate(time.Date(2025, 1, 8, 23, 0, 0, 0, hst), datedItem(expiry))
	assert.Equal(t, 2, got.Days)

	// No-expiry items count elapsed calendar days the same way.
	item := model.FoodItem{
		Name:             "test",
		HasNoExpiry:      true,
		RegistrationDate: model.NewDate(date(2025, 1, 1)),
	}
	got = Evaluate(time.Date(2025, 1, 8, 10, 0, 0, 0, jst), item)
	assert.Equal(t, 7, got.Days)
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 0, DaysBetween(date(2025, 1, 8), date(2025, 1, 8)))
	assert.Equal(t, 2, DaysBetween(date(2025, 1, 8), date(2025, 1, 10)))
	assert.Equal(t, -3, DaysBetween(date(2025, 1, 8), date(2025, 1, 5)))
	// Month boundary.
	assert.Equal(t, 4, DaysBetween(date(2025, 1, 30), date(2025, 2, 3)))
}
