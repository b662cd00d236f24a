package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessReschedule        = "reminders rescheduled successfully"
	MessageSuccessGetReminders      = "reminders retrieved successfully"
	MessageSuccessUpdatePermission  = "notification permission updated"
	MessageFailedReschedule         = "failed to reschedule reminders"
	MessageFailedGetReminders       = "failed to retrieve reminders"
	MessageFailedUpdatePermission   = "failed to update notification permission"
	MessageNotificationDenied       = "Aplikasi tidak bisa mengirim notifikasi"
	ErrNotificationPermissionDenied = errors.New("notification permission not granted")
)

type (
	NotificationPermissionRequest struct {
		Granted *bool `json:"granted" validate:"required"`
	}

	NotificationPermissionResponse struct {
		Granted bool   `json:"granted"`
		Message string `json:"message,omitempty"`
	}

	RescheduleResult struct {
		Scheduled int `json:"scheduled"`
		Failed    int `json:"failed"`
		// foods whose reminder time had already passed or whose expiry
		// date could not be read
		Skipped int `json:"skipped"`
	}

	ReminderResponse struct {
		ID     string    `json:"id"`
		Title  string    `json:"title"`
		Body   string    `json:"body"`
		FireAt time.Time `json:"fire_at"`
		Status string    `json:"status"`
	}
)
