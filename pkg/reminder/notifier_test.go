package reminder

import (
	"SaveBite/domain"
	"SaveBite/entities"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreNotifier_ScheduleAndCancel(t *testing.T) {
	repo := newMemoryRepository()
	ctx := context.Background()
	fireAt := time.Date(2025, time.March, 11, 9, 0, 0, 0, wib)

	n := NewStoreNotifier(repo, 7, true, fireAt.Add(-24*time.Hour))
	handle, err := n.ScheduleAt(ctx, ReminderTitle, ReminderBody("Milk"), fireAt)
	require.NoError(t, err)
	_, err = uuid.Parse(string(handle))
	assert.NoError(t, err)

	pending, err := repo.GetPendingByUser(ctx, 7)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, entities.ReminderStatusPending, pending[0].Status)
	assert.True(t, fireAt.Equal(pending[0].FireAt))

	require.NoError(t, n.CancelAll(ctx))
	pending, err = repo.GetPendingByUser(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestStoreNotifier_CancelKeepsOtherUsersAndDelivered(t *testing.T) {
	repo := newMemoryRepository()
	ctx := context.Background()
	fireAt := time.Date(2025, time.March, 11, 9, 0, 0, 0, wib)

	now := fireAt.Add(-time.Hour)
	mine := NewStoreNotifier(repo, 1, true, now)
	theirs := NewStoreNotifier(repo, 2, true, now)
	_, err := mine.ScheduleAt(ctx, ReminderTitle, "a", fireAt)
	require.NoError(t, err)
	_, err = theirs.ScheduleAt(ctx, ReminderTitle, "b", fireAt)
	require.NoError(t, err)

	delivered := uuid.New()
	require.NoError(t, repo.CreateReminder(ctx, &entities.ScheduledReminder{
		ID: delivered, UserID: 1, Status: entities.ReminderStatusSent, FireAt: fireAt,
	}))

	require.NoError(t, mine.CancelAll(ctx))

	assert.Empty(t, repo.pendingBodies(1))
	assert.Equal(t, []string{"b"}, repo.pendingBodies(2))
	assert.Contains(t, repo.reminders, delivered)
}

func TestStoreNotifier_WithoutPermission(t *testing.T) {
	repo := newMemoryRepository()

	n := NewStoreNotifier(repo, 1, false, time.Now())
	_, err := n.ScheduleAt(context.Background(), ReminderTitle, "x", time.Now().Add(time.Hour))

	assert.ErrorIs(t, err, domain.ErrNotificationPermissionDenied)
	assert.Empty(t, repo.reminders)
}

func TestStoreNotifier_CancelKeepsDueReminders(t *testing.T) {
	repo := newMemoryRepository()
	ctx := context.Background()
	nineAM := time.Date(2026, time.October, 28, 9, 0, 0, 0, wib)
	due := seedReminder(t, repo, 1, nineAM, "Milk akan kadaluarsa besok!")
	future := seedReminder(t, repo, 1, nineAM.Add(24*time.Hour), "Rice akan kadaluarsa besok!")

	n := NewStoreNotifier(repo, 1, true, nineAM.Add(30*time.Second))
	require.NoError(t, n.CancelAll(ctx))

	assert.Contains(t, repo.reminders, due)
	assert.NotContains(t, repo.reminders, future)
}
