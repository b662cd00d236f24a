package reminder

import (
	"SaveBite/domain"
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wib = time.FixedZone("WIB", 7*60*60)

func day(offset int, now time.Time) string {
	return now.AddDate(0, 0, offset).Format("2006-01-02")
}

// recordingNotifier tracks call order and the reminders it currently holds.
type recordingNotifier struct {
	mu        sync.Mutex
	calls     []string
	active    []string
	cancelled bool

	cancelErr   error
	scheduleErr func(body string) error
}

func (n *recordingNotifier) CancelAll(context.Context) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, "cancel")
	if n.cancelErr != nil {
		return n.cancelErr
	}
	n.active = nil
	n.cancelled = true
	return nil
}

func (n *recordingNotifier) ScheduleAt(_ context.Context, title, body string, fireAt time.Time) (Handle, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if !n.cancelled {
		return "", errors.New("scheduled before cancel completed")
	}
	n.calls = append(n.calls, "schedule")
	if n.scheduleErr != nil {
		if err := n.scheduleErr(body); err != nil {
			return "", err
		}
	}
	n.active = append(n.active, fmt.Sprintf("%s|%s|%s", title, body, fireAt.Format(time.RFC3339)))
	return Handle(body), nil
}

func TestFireTime_DayBeforeAtNine(t *testing.T) {
	now := time.Date(2025, time.March, 10, 7, 0, 0, 0, wib)

	fireAt, err := FireTime("2025-03-15", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.March, 14, 9, 0, 0, 0, wib), fireAt)

	fireAt, err = FireTime("2025-04-01T23:00:00+07:00", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.March, 31, 9, 0, 0, 0, wib), fireAt)
}

func TestComputeReminderTimes_FiltersPast(t *testing.T) {
	now := time.Date(2025, time.March, 10, 10, 0, 0, 0, wib)

	times := ComputeReminderTimes([]domain.ReminderFood{
		{Name: "Milk", ExpiryDate: day(1, now)},
	}, now)

	// the reminder would fire today at 09:00, which is already past
	assert.Empty(t, times)
}

func TestComputeReminderTimes_BeforeNineStillScheduled(t *testing.T) {
	now := time.Date(2025, time.March, 10, 8, 59, 0, 0, wib)

	times := ComputeReminderTimes([]domain.ReminderFood{
		{Name: "Milk", ExpiryDate: day(1, now)},
	}, now)

	require.Len(t, times, 1)
	assert.Equal(t, time.Date(2025, time.March, 10, 9, 0, 0, 0, wib), times[0].FireAt)
}

func TestComputeReminderTimes_ExactlyNowIsDropped(t *testing.T) {
	now := time.Date(2025, time.March, 10, 9, 0, 0, 0, wib)

	times := ComputeReminderTimes([]domain.ReminderFood{{Name: "Milk", ExpiryDate: day(1, now)}}, now)
	assert.Empty(t, times)
}

func TestComputeReminderTimes_NeverInPast(t *testing.T) {
	now := time.Date(2025, time.March, 10, 15, 30, 0, 0, wib)
	var foods []domain.ReminderFood
	for off := -5; off <= 10; off++ {
		foods = append(foods, domain.ReminderFood{Name: fmt.Sprintf("f%d", off), ExpiryDate: day(off, now)})
	}
	foods = append(foods, domain.ReminderFood{Name: "bad", ExpiryDate: "N/A"})

	times := ComputeReminderTimes(foods, now)

	require.Len(t, times, 9) // expiries from +2 to +10
	for _, rt := range times {
		assert.True(t, rt.FireAt.After(now), rt.Name)
	}
}

func TestComputeReminderTimes_KeepsDuplicateNames(t *testing.T) {
	now := time.Date(2025, time.March, 10, 8, 0, 0, 0, wib)

	times := ComputeReminderTimes([]domain.ReminderFood{
		{Name: "Tofu", ExpiryDate: day(3, now)},
		{Name: "Tofu", ExpiryDate: day(3, now)},
	}, now)

	assert.Len(t, times, 2)
}

func TestRescheduleAll_CancelsThenSchedules(t *testing.T) {
	now := time.Date(2025, time.March, 10, 8, 0, 0, 0, wib)
	notifier := &recordingNotifier{}
	scheduler := NewScheduler(nil, 2)

	result, err := scheduler.RescheduleAll(context.Background(), []domain.ReminderFood{
		{Name: "Milk", ExpiryDate: day(2, now)},
		{Name: "Rice", ExpiryDate: day(10, now)},
		{Name: "Bread", ExpiryDate: day(-1, now)},
	}, notifier, now)

	require.NoError(t, err)
	assert.Equal(t, domain.RescheduleResult{Scheduled: 2, Failed: 0, Skipped: 1}, result)
	require.Len(t, notifier.calls, 3)
	assert.Equal(t, "cancel", notifier.calls[0])
	assert.ElementsMatch(t, []string{
		"⏰ Reminder Makanan|Milk akan kadaluarsa besok!|2025-03-11T09:00:00+07:00",
		"⏰ Reminder Makanan|Rice akan kadaluarsa besok!|2025-03-19T09:00:00+07:00",
	}, notifier.active)
}

func TestRescheduleAll_Idempotent(t *testing.T) {
	now := time.Date(2025, time.March, 10, 8, 0, 0, 0, wib)
	foods := []domain.ReminderFood{
		{Name: "Milk", ExpiryDate: day(2, now)},
		{Name: "Rice", ExpiryDate: day(10, now)},
	}
	notifier := &recordingNotifier{}
	scheduler := NewScheduler(nil, 0)

	_, err := scheduler.RescheduleAll(context.Background(), foods, notifier, now)
	require.NoError(t, err)
	once := append([]string(nil), notifier.active...)

	_, err = scheduler.RescheduleAll(context.Background(), foods, notifier, now)
	require.NoError(t, err)

	assert.ElementsMatch(t, once, notifier.active)
	assert.Len(t, notifier.active, 2)
}

func TestRescheduleAll_ItemFailureIsDropped(t *testing.T) {
	now := time.Date(2025, time.March, 10, 8, 0, 0, 0, wib)
	notifier := &recordingNotifier{
		scheduleErr: func(body string) error {
			if body == ReminderBody("Milk") {
				return domain.ErrNotificationPermissionDenied
			}
			return nil
		},
	}

	result, err := NewScheduler(nil, 1).RescheduleAll(context.Background(), []domain.ReminderFood{
		{Name: "Milk", ExpiryDate: day(2, now)},
		{Name: "Rice", ExpiryDate: day(5, now)},
	}, notifier, now)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Scheduled)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, notifier.active, 1)
	assert.Contains(t, notifier.active[0], "Rice")
}

func TestRescheduleAll_CancelFailure(t *testing.T) {
	now := time.Date(2025, time.March, 10, 8, 0, 0, 0, wib)
	cause := errors.New("store unavailable")
	notifier := &recordingNotifier{cancelErr: cause}

	_, err := NewScheduler(nil, 1).RescheduleAll(context.Background(), []domain.ReminderFood{
		{Name: "Milk", ExpiryDate: day(2, now)},
	}, notifier, now)

	var notifierErr *NotifierError
	require.ErrorAs(t, err, &notifierErr)
	assert.Equal(t, "cancel", notifierErr.Op)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, []string{"cancel"}, notifier.calls)
}

func TestRescheduleAll_EmptyListClearsReminders(t *testing.T) {
	now := time.Date(2025, time.March, 10, 8, 0, 0, 0, wib)
	notifier := &recordingNotifier{cancelled: true, active: []string{"stale"}}

	result, err := NewScheduler(nil, 1).RescheduleAll(context.Background(), nil, notifier, now)

	require.NoError(t, err)
	assert.Equal(t, domain.RescheduleResult{}, result)
	assert.Empty(t, notifier.active)
}
