package reminder

import (
	"SaveBite/domain"
	"SaveBite/pkg/expiry"
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	// ReminderHour is the local hour a reminder fires on the day before expiry.
	ReminderHour = 9

	ReminderTitle = "⏰ Reminder Makanan"

	defaultConcurrency = 8
)

type (
	// Handle identifies a reminder accepted by a Notifier.
	Handle string

	// Notifier is the delivery side of reminders. Implementations own
	// storage and delivery; the scheduler only cancels and submits.
	Notifier interface {
		CancelAll(ctx context.Context) error
		ScheduleAt(ctx context.Context, title, body string, fireAt time.Time) (Handle, error)
	}

	// NotifierError is returned when the notifier cannot clear previously
	// scheduled reminders. Per-reminder failures are never returned.
	NotifierError struct {
		Op  string
		Err error
	}

	Scheduler struct {
		logger      *zap.Logger
		concurrency int
	}
)

func (e *NotifierError) Error() string {
	return fmt.Sprintf("notifier %s: %v", e.Op, e.Err)
}

func (e *NotifierError) Unwrap() error { return e.Err }

func NewScheduler(logger *zap.Logger, concurrency int) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	return &Scheduler{
		logger:      logger,
		concurrency: concurrency,
	}
}

// ReminderBody is the notification text for a food expiring tomorrow.
func ReminderBody(foodName string) string {
	return fmt.Sprintf("%s akan kadaluarsa besok!", foodName)
}

// FireTime returns 09:00 local time on the day before the expiry date, in the
// location of now.
func FireTime(expiryDate string, now time.Time) (time.Time, error) {
	day, err := expiry.ParseDate(expiryDate, now.Location())
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day()-1, ReminderHour, 0, 0, 0, day.Location()), nil
}

// ComputeReminderTimes returns one entry per food whose reminder still lies
// in the future. Foods whose reminder time has passed or whose expiry date
// cannot be read are left out. Names are not deduplicated.
func ComputeReminderTimes(foods []domain.ReminderFood, now time.Time) []domain.ReminderTime {
	times := make([]domain.ReminderTime, 0, len(foods))
	for _, food := range foods {
		fireAt, err := FireTime(food.ExpiryDate, now)
		if err != nil {
			continue
		}
		if !fireAt.After(now) {
			continue
		}
		times = append(times, domain.ReminderTime{Name: food.Name, FireAt: fireAt})
	}
	return times
}

// RescheduleAll replaces every reminder held by notifier with the set computed
// from foods. Cancellation completes before any reminder is submitted. A
// reminder the notifier rejects is dropped without retry and does not fail
// the call; only a failed cancellation is returned, as *NotifierError.
func (s *Scheduler) RescheduleAll(ctx context.Context, foods []domain.ReminderFood, notifier Notifier, now time.Time) (domain.RescheduleResult, error) {
	if err := notifier.CancelAll(ctx); err != nil {
		return domain.RescheduleResult{}, &NotifierError{Op: "cancel", Err: err}
	}

	times := ComputeReminderTimes(foods, now)

	var scheduled, failed atomic.Int64
	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for _, rt := range times {
		rt := rt
		g.Go(func() error {
			if _, err := notifier.ScheduleAt(ctx, ReminderTitle, ReminderBody(rt.Name), rt.FireAt); err != nil {
				failed.Add(1)
				s.logger.Debug("reminder dropped",
					zap.String("food", rt.Name),
					zap.Time("fire_at", rt.FireAt),
					zap.Error(err),
				)
				return nil
			}
			scheduled.Add(1)
			return nil
		})
	}
	_ = g.Wait()

	return domain.RescheduleResult{
		Scheduled: int(scheduled.Load()),
		Failed:    int(failed.Load()),
		Skipped:   len(foods) - len(times),
	}, nil
}
