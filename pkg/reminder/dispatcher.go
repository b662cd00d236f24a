package reminder

import (
	"SaveBite/entities"
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

const defaultBatchSize = 100

var errNoRecipient = errors.New("reminder owner has no e-mail address")

// Sender delivers a fired reminder to its owner.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Dispatcher periodically hands due reminders to a Sender. Each reminder is
// delivered at most once; a failed delivery is recorded and not retried.
type Dispatcher struct {
	repo      ReminderRepository
	sender    Sender
	interval  time.Duration
	batchSize int
	now       func() time.Time
	logger    *zap.Logger
}

func NewDispatcher(repo ReminderRepository, sender Sender, interval time.Duration, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	if interval <= 0 {
		interval = time.Minute
	}
	return &Dispatcher{
		repo:      repo,
		sender:    sender,
		interval:  interval,
		batchSize: defaultBatchSize,
		now:       time.Now,
		logger:    logger,
	}
}

// Start runs the dispatch loop until ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) error {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, err := d.dispatch(ctx); err != nil {
				d.logger.Error("reminder dispatch failed", zap.Error(err))
			}
		}
	}
}

// dispatch delivers one batch of due reminders and returns how many were sent.
func (d *Dispatcher) dispatch(ctx context.Context) (int, error) {
	now := d.now()
	due, err := d.repo.GetDueReminders(ctx, now, d.batchSize)
	if err != nil {
		return 0, fmt.Errorf("load due reminders: %w", err)
	}

	sent := 0
	for _, r := range due {
		// claim before sending so a failed write never leads to a second e-mail
		claimed, err := d.repo.ClaimForDelivery(ctx, r.ID, now)
		if err != nil {
			d.logger.Error("claim reminder failed",
				zap.String("reminder_id", r.ID.String()),
				zap.Error(err),
			)
			continue
		}
		if !claimed {
			continue
		}

		if err := d.deliver(ctx, r); err != nil {
			d.logger.Warn("reminder delivery failed",
				zap.String("reminder_id", r.ID.String()),
				zap.Uint("user_id", r.UserID),
				zap.Error(err),
			)
			if err := d.repo.MarkFailed(ctx, r.ID); err != nil {
				d.logger.Error("mark reminder failed",
					zap.String("reminder_id", r.ID.String()),
					zap.Error(err),
				)
			}
			continue
		}
		sent++
	}

	if len(due) > 0 {
		d.logger.Info("reminders dispatched", zap.Int("due", len(due)), zap.Int("sent", sent))
	}
	return sent, nil
}

func (d *Dispatcher) deliver(ctx context.Context, r *entities.ScheduledReminder) error {
	if r.User == nil || r.User.Email == "" {
		return errNoRecipient
	}
	return d.sender.Send(ctx, r.User.Email, r.Title, r.Body)
}
