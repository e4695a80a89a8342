// Package expiry computes display status for food items from their dates.
//
// All functions are pure: the reference date ("today") is an explicit
// parameter, never read from the wall clock, so callers decide when a new
// day has started and tests can pin the date.
package expiry

import (
	"fmt"
	"time"

	"foodkeeper/internal/model"
)

// Tag classifies an item for styling purposes, independent of the label text.
type Tag string

const (
	TagExpired    Tag = "expired"
	TagDueToday   Tag = "due-today"
	TagNearExpiry Tag = "near-expiry"
	TagNormal     Tag = "normal"
)

// NearExpiryDays is the window, in days, within which an item counts as near expiry.
const NearExpiryDays = 3

// Status is the result of evaluating an item against a reference date.
// Days is the signed day difference to the expiry date, or the elapsed days
// since registration for items without an expiry.
type Status struct {
	Label string
	Tag   Tag
	Days  int
}

// dateOnly reads the calendar date of t in its own location and rebuilds it
// at midnight UTC. Comparing the rebuilt dates counts calendar days, so a
// caller's zone offset can never shift the result: a JST "today" against a
// UTC-marshalled expiry still differs by exact whole days.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the calendar-day difference from `from` to `to`.
// Time-of-day and location are discarded first, so status flips exactly at
// the caller's local midnight and DST transitions cannot skew the count.
func DaysBetween(from, to time.Time) int {
	return int(dateOnly(to).Sub(dateOnly(from)) / (24 * time.Hour))
}

// Evaluate classifies an item relative to the reference date.
//
// Items without an expiry are reported by elapsed days since registration,
// clamped at zero, and always carry the normal tag. Dated items are reported
// by remaining days: negative means expired, zero means due today.
func Evaluate(ref time.Time, item model.FoodItem) Status {
	if item.HasNoExpiry || item.ExpiryDate == nil {
		elapsed := DaysBetween(item.RegistrationDate.Time, ref)
		if elapsed <= 0 {
			return Status{Label: "本日登録", Tag: TagNormal, Days: 0}
		}
		return Status{
			Label: fmt.Sprintf("登録から%d日経過", elapsed),
			Tag:   TagNormal,
			Days:  elapsed,
		}
	}

	days := DaysBetween(ref, item.ExpiryDate.Time)
	switch {
	case days < 0:
		return Status{
			Label: fmt.Sprintf("期限切れ (%d日経過)", -days),
			Tag:   TagExpired,
			Days:  days,
		}
	case days == 0:
		return Status{Label: "本日まで", Tag: TagDueToday, Days: 0}
	case days <= NearExpiryDays:
		return Status{
			Label: fmt.Sprintf("あと%d日", days),
			Tag:   TagNearExpiry,
			Days:  days,
		}
	default:
		return Status{
			Label: fmt.Sprintf("あと%d日", days),
			Tag:   TagNormal,
			Days:  days,
		}
	}
}
