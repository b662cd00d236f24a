package reminder

import (
	"SaveBite/domain"
	"SaveBite/entities"
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type (
	// FoodSource lists the foods a user currently owns.
	FoodSource interface {
		GetFoodItemsByUser(ctx context.Context, userID uint) ([]*entities.FoodItem, error)
	}

	// PermissionStore reads and records whether a user allows notifications.
	PermissionStore interface {
		GetUserByID(ctx context.Context, id uint) (*entities.User, error)
		UpdateNotificationPermission(ctx context.Context, id uint, granted bool) error
	}

	ReminderService interface {
		RescheduleForUser(ctx context.Context, auth domain.AuthContext) (domain.RescheduleResult, error)
		GetPendingReminders(ctx context.Context, auth domain.AuthContext) ([]domain.ReminderResponse, error)
		SetNotificationPermission(ctx context.Context, auth domain.AuthContext, granted bool) (domain.NotificationPermissionResponse, error)
	}

	reminderService struct {
		reminderRepository ReminderRepository
		foods              FoodSource
		permissions        PermissionStore
		scheduler          *Scheduler
		now                func() time.Time
		logger             *zap.Logger

		// userLocks holds one *sync.Mutex per user id
		userLocks sync.Map
	}
)

func NewReminderService(
	reminderRepository ReminderRepository,
	foods FoodSource,
	permissions PermissionStore,
	scheduler *Scheduler,
	clock func() time.Time,
	logger *zap.Logger,
) ReminderService {
	if clock == nil {
		clock = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &reminderService{
		reminderRepository: reminderRepository,
		foods:              foods,
		permissions:        permissions,
		scheduler:          scheduler,
		now:                clock,
		logger:             logger,
	}
}

// RescheduleForUser rebuilds the user's reminder set. Calls for the same user
// run one at a time so a cancel never interleaves with another call's inserts.
func (s *reminderService) RescheduleForUser(ctx context.Context, auth domain.AuthContext) (domain.RescheduleResult, error) {
	unlock := s.lockUser(auth.UserID)
	defer unlock()

	user, err := s.permissions.GetUserByID(ctx, auth.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RescheduleResult{}, domain.ErrUserNotFound
		}
		return domain.RescheduleResult{}, err
	}

	items, err := s.foods.GetFoodItemsByUser(ctx, auth.UserID)
	if err != nil {
		return domain.RescheduleResult{}, err
	}

	foods := make([]domain.ReminderFood, 0, len(items))
	for _, item := range items {
		foods = append(foods, domain.ReminderFood{Name: item.Name, ExpiryDate: item.ExpiryDate})
	}

	now := s.now()
	notifier := NewStoreNotifier(s.reminderRepository, auth.UserID, user.NotificationsEnabled, now)
	result, err := s.scheduler.RescheduleAll(ctx, foods, notifier, now)
	if err != nil {
		return domain.RescheduleResult{}, err
	}

	s.logger.Debug("reminders rescheduled",
		zap.Uint("user_id", auth.UserID),
		zap.Int("scheduled", result.Scheduled),
		zap.Int("failed", result.Failed),
		zap.Int("skipped", result.Skipped),
	)
	return result, nil
}

func (s *reminderService) lockUser(userID uint) func() {
	v, _ := s.userLocks.LoadOrStore(userID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func (s *reminderService) GetPendingReminders(ctx context.Context, auth domain.AuthContext) ([]domain.ReminderResponse, error) {
	reminders, err := s.reminderRepository.GetPendingByUser(ctx, auth.UserID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.ReminderResponse, 0, len(reminders))
	for _, r := range reminders {
		response = append(response, domain.ReminderResponse{
			ID:     r.ID.String(),
			Title:  r.Title,
			Body:   r.Body,
			FireAt: r.FireAt,
			Status: r.Status,
		})
	}
	return response, nil
}

func (s *reminderService) SetNotificationPermission(ctx context.Context, auth domain.AuthContext, granted bool) (domain.NotificationPermissionResponse, error) {
	if err := s.permissions.UpdateNotificationPermission(ctx, auth.UserID, granted); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NotificationPermissionResponse{}, domain.ErrUserNotFound
		}
		return domain.NotificationPermissionResponse{}, err
	}

	// rebuild the schedule so a fresh grant takes effect immediately and a
	// revocation drops whatever was pending
	if _, err := s.RescheduleForUser(ctx, auth); err != nil {
		s.logger.Warn("reschedule after permission change failed",
			zap.Uint("user_id", auth.UserID),
			zap.Error(err),
		)
	}

	response := domain.NotificationPermissionResponse{Granted: granted}
	if !granted {
		response.Message = domain.MessageNotificationDenied
	}
	return response, nil
}
