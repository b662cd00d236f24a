package reminder

import (
	"SaveBite/entities"
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// memoryRepository is an in-memory ReminderRepository.
type memoryRepository struct {
	mu        sync.Mutex
	reminders map[uuid.UUID]*entities.ScheduledReminder
	users     map[uint]*entities.User

	createErr error
	deleteErr error
	claimErr  error
	failErr   error
}

var _ ReminderRepository = (*memoryRepository)(nil)

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		reminders: map[uuid.UUID]*entities.ScheduledReminder{},
		users:     map[uint]*entities.User{},
	}
}

func (m *memoryRepository) CreateReminder(_ context.Context, r *entities.ScheduledReminder) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	copied := *r
	m.reminders[r.ID] = &copied
	return nil
}

func (m *memoryRepository) DeletePendingByUser(_ context.Context, userID uint, after time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deleteErr != nil {
		return m.deleteErr
	}
	for id, r := range m.reminders {
		if r.UserID == userID && r.Status == entities.ReminderStatusPending && r.FireAt.After(after) {
			delete(m.reminders, id)
		}
	}
	return nil
}

func (m *memoryRepository) GetPendingByUser(_ context.Context, userID uint) ([]*entities.ScheduledReminder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entities.ScheduledReminder
	for _, r := range m.reminders {
		if r.UserID == userID && r.Status == entities.ReminderStatusPending {
			copied := *r
			out = append(out, &copied)
		}
	}
	sortByFireAt(out)
	return out, nil
}

func (m *memoryRepository) GetDueReminders(_ context.Context, now time.Time, limit int) ([]*entities.ScheduledReminder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entities.ScheduledReminder
	for _, r := range m.reminders {
		if r.Status == entities.ReminderStatusPending && !r.FireAt.After(now) {
			copied := *r
			copied.User = m.users[r.UserID]
			out = append(out, &copied)
		}
	}
	sortByFireAt(out)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memoryRepository) ClaimForDelivery(_ context.Context, id uuid.UUID, at time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.claimErr != nil {
		return false, m.claimErr
	}
	r, ok := m.reminders[id]
	if !ok || r.Status != entities.ReminderStatusPending {
		return false, nil
	}
	r.Status = entities.ReminderStatusSent
	r.DeliveredAt = &at
	return true, nil
}

func (m *memoryRepository) MarkFailed(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return m.failErr
	}
	if r, ok := m.reminders[id]; ok && r.Status == entities.ReminderStatusSent {
		r.Status = entities.ReminderStatusFailed
	}
	return nil
}

func (m *memoryRepository) pendingBodies(userID uint) []string {
	pending, _ := m.GetPendingByUser(context.Background(), userID)
	out := make([]string, 0, len(pending))
	for _, r := range pending {
		out = append(out, r.Body)
	}
	sort.Strings(out)
	return out
}

func sortByFireAt(rs []*entities.ScheduledReminder) {
	sort.SliceStable(rs, func(i, j int) bool { return rs[i].FireAt.Before(rs[j].FireAt) })
}
