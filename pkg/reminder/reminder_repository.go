package reminder

import (
	"SaveBite/entities"
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ReminderRepository interface {
		CreateReminder(ctx context.Context, reminder *entities.ScheduledReminder) error
		DeletePendingByUser(ctx context.Context, userID uint, after time.Time) error
		GetPendingByUser(ctx context.Context, userID uint) ([]*entities.ScheduledReminder, error)
		GetDueReminders(ctx context.Context, now time.Time, limit int) ([]*entities.ScheduledReminder, error)
		ClaimForDelivery(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
		MarkFailed(ctx context.Context, id uuid.UUID) error
	}

	reminderRepository struct {
		db *gorm.DB
	}
)

func NewReminderRepository(db *gorm.DB) ReminderRepository {
	return &reminderRepository{db: db}
}

func (r *reminderRepository) CreateReminder(ctx context.Context, reminder *entities.ScheduledReminder) error {
	return r.db.WithContext(ctx).Create(reminder).Error
}

// DeletePendingByUser drops the user's pending reminders that fire after the
// given instant. Rows already due stay for the dispatcher.
func (r *reminderRepository) DeletePendingByUser(ctx context.Context, userID uint, after time.Time) error {
	return r.db.WithContext(ctx).
		Unscoped().
		Where("user_id = ? AND status = ? AND fire_at > ?", userID, entities.ReminderStatusPending, after).
		Delete(&entities.ScheduledReminder{}).Error
}

func (r *reminderRepository) GetPendingByUser(ctx context.Context, userID uint) ([]*entities.ScheduledReminder, error) {
	var reminders []*entities.ScheduledReminder
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, entities.ReminderStatusPending).
		Order("fire_at asc").
		Find(&reminders).Error; err != nil {
		return nil, err
	}
	return reminders, nil
}

func (r *reminderRepository) GetDueReminders(ctx context.Context, now time.Time, limit int) ([]*entities.ScheduledReminder, error) {
	var reminders []*entities.ScheduledReminder
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("status = ? AND fire_at <= ?", entities.ReminderStatusPending, now).
		Order("fire_at asc").
		Limit(limit).
		Find(&reminders).Error; err != nil {
		return nil, err
	}
	return reminders, nil
}

// ClaimForDelivery moves a pending reminder to Sent and reports whether this
// caller won it. A false result means the row was cancelled or claimed already.
func (r *reminderRepository) ClaimForDelivery(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).Model(&entities.ScheduledReminder{}).
		Where("id = ? AND status = ?", id, entities.ReminderStatusPending).
		Updates(map[string]interface{}{
			"status":       entities.ReminderStatusSent,
			"delivered_at": at,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *reminderRepository) MarkFailed(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&entities.ScheduledReminder{}).
		Where("id = ? AND status = ?", id, entities.ReminderStatusSent).
		Update("status", entities.ReminderStatusFailed).Error
}
