// Package expiry classifies foods by how close they are to their expiry date.
//
// All calculations work on calendar days in the location of the supplied
// "now": both the current instant and the expiry date are normalized to
// local midnight before they are compared, so a food never flips status in
// the middle of a day.
package expiry

import (
	"SaveBite/domain"
	"errors"
	"fmt"
	"strings"
	"time"
)

// WarningDays is the last day count (inclusive) that still classifies as
// Warning. Zero days left is Warning, negative is Expired.
const WarningDays = 3

const (
	MessageExpired = "Kadaluwarsa"

	ColorExpired = "#d32f2f"
	ColorWarning = "#f57c00"
	ColorFresh   = "#388e3c"
)

var errEmptyDate = errors.New("empty date")

// layouts without a zone are read in the caller's location
var layouts = []struct {
	layout string
	zoned  bool
}{
	{"2006-01-02", false},
	{time.RFC3339Nano, true},
	{"2006-01-02T15:04:05", false},
	{"2006-01-02 15:04:05", false},
	{"2006-01-02 15:04:05Z07:00", true},
}

// ParseError reports an expiry date that could not be read. It matches
// domain.ErrInvalidExpiryDate with errors.Is.
type ParseError struct {
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("expiry: cannot parse date %q: %v", e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool {
	return target == domain.ErrInvalidExpiryDate
}

// ParseDate reads an ISO-8601 date or date-time and returns local midnight of
// that calendar day in loc.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	v := strings.TrimSpace(value)
	if v == "" {
		return time.Time{}, &ParseError{Value: value, Err: errEmptyDate}
	}

	var lastErr error
	for _, l := range layouts {
		var (
			t   time.Time
			err error
		)
		if l.zoned {
			t, err = time.Parse(l.layout, v)
		} else {
			t, err = time.ParseInLocation(l.layout, v, loc)
		}
		if err != nil {
			lastErr = err
			continue
		}
		return midnight(t.In(loc)), nil
	}
	return time.Time{}, &ParseError{Value: value, Err: lastErr}
}

// Classify returns the expiry status of a food expiring on expiryDate as seen
// at now. It fails with *ParseError when the date cannot be read.
func Classify(expiryDate string, now time.Time) (domain.ExpiryStatus, error) {
	expiry, err := ParseDate(expiryDate, now.Location())
	if err != nil {
		return domain.ExpiryStatus{}, err
	}
	return StatusFor(DaysBetween(now, expiry)), nil
}

// StatusFor maps a remaining day count to its status.
func StatusFor(daysRemaining int) domain.ExpiryStatus {
	switch {
	case daysRemaining < 0:
		return domain.ExpiryStatus{
			Tag:           domain.ExpiryExpired,
			DaysRemaining: daysRemaining,
			Message:       MessageExpired,
			Color:         ColorExpired,
		}
	case daysRemaining <= WarningDays:
		return domain.ExpiryStatus{
			Tag:           domain.ExpiryWarning,
			DaysRemaining: daysRemaining,
			Message:       fmt.Sprintf("Segera kadaluwarsa (%d hari)", daysRemaining),
			Color:         ColorWarning,
		}
	default:
		return domain.ExpiryStatus{
			Tag:           domain.ExpiryFresh,
			DaysRemaining: daysRemaining,
			Message:       fmt.Sprintf("%d hari lagi", daysRemaining),
			Color:         ColorFresh,
		}
	}
}

// DaysBetween counts calendar days from the day of "from" to the day of "to",
// both read in the location of "from". The result is negative when "to" lies
// in the past.
func DaysBetween(from, to time.Time) int {
	to = to.In(from.Location())
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

// GroupByStatus partitions foods into expired, warning and fresh buckets,
// keeping input order inside each bucket. Foods with a missing or unreadable
// expiry date are treated as fresh.
func GroupByStatus(foods []domain.FoodRecord, now time.Time) domain.ExpiryGroups {
	groups := domain.ExpiryGroups{
		Expired: make([]domain.FoodRecord, 0),
		Warning: make([]domain.FoodRecord, 0),
		Fresh:   make([]domain.FoodRecord, 0),
	}

	for _, food := range foods {
		status, err := Classify(food.ExpiryDate, now)
		if err != nil {
			groups.Fresh = append(groups.Fresh, food)
			continue
		}
		switch status.Tag {
		case domain.ExpiryExpired:
			groups.Expired = append(groups.Expired, food)
		case domain.ExpiryWarning:
			groups.Warning = append(groups.Warning, food)
		default:
			groups.Fresh = append(groups.Fresh, food)
		}
	}
	return groups
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
