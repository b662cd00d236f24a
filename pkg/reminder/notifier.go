package reminder

import (
	"SaveBite/domain"
	"SaveBite/entities"
	"context"
	"time"

	"github.com/google/uuid"
)

// StoreNotifier keeps one user's reminders in the scheduled_reminders table,
// from where the Dispatcher delivers them.
type StoreNotifier struct {
	repo      ReminderRepository
	userID    uint
	permitted bool
	cutoff    time.Time
}

var _ Notifier = (*StoreNotifier)(nil)

// NewStoreNotifier binds a notifier to userID. Reminders due at or before now
// are left to the dispatcher when the schedule is cancelled.
func NewStoreNotifier(repo ReminderRepository, userID uint, permitted bool, now time.Time) *StoreNotifier {
	return &StoreNotifier{
		repo:      repo,
		userID:    userID,
		permitted: permitted,
		cutoff:    now,
	}
}

// CancelAll removes the user's reminders that have not fired yet.
func (n *StoreNotifier) CancelAll(ctx context.Context) error {
	return n.repo.DeletePendingByUser(ctx, n.userID, n.cutoff)
}

func (n *StoreNotifier) ScheduleAt(ctx context.Context, title, body string, fireAt time.Time) (Handle, error) {
	if !n.permitted {
		return "", domain.ErrNotificationPermissionDenied
	}

	reminder := &entities.ScheduledReminder{
		ID:     uuid.New(),
		UserID: n.userID,
		Title:  title,
		Body:   body,
		FireAt: fireAt,
		Status: entities.ReminderStatusPending,
	}
	if err := n.repo.CreateReminder(ctx, reminder); err != nil {
		return "", err
	}
	return Handle(reminder.ID.String()), nil
}
