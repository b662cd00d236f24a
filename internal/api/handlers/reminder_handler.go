package handlers

import (
	"SaveBite/domain"
	"SaveBite/internal/api/presenters"
	"SaveBite/pkg/reminder"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ReminderHandler interface {
		SetNotificationPermission(c *fiber.Ctx) error
		Reschedule(c *fiber.Ctx) error
		GetReminders(c *fiber.Ctx) error
	}

	reminderHandler struct {
		reminderService reminder.ReminderService
		validator       *validator.Validate
	}
)

func NewReminderHandler(reminderService reminder.ReminderService, validator *validator.Validate) ReminderHandler {
	return &reminderHandler{
		reminderService: reminderService,
		validator:       validator,
	}
}

func (h *reminderHandler) SetNotificationPermission(c *fiber.Ctx) error {
	auth, err := authContext(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, err)
	}

	req := new(domain.NotificationPermissionRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdatePermission, err)
	}

	res, err := h.reminderService.SetNotificationPermission(c.UserContext(), auth, *req.Granted)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err), domain.MessageFailedUpdatePermission, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdatePermission)
}

func (h *reminderHandler) Reschedule(c *fiber.Ctx) error {
	auth, err := authContext(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, err)
	}

	res, err := h.reminderService.RescheduleForUser(c.UserContext(), auth)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err), domain.MessageFailedReschedule, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessReschedule)
}

func (h *reminderHandler) GetReminders(c *fiber.Ctx) error {
	auth, err := authContext(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, err)
	}

	reminders, err := h.reminderService.GetPendingReminders(c.UserContext(), auth)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err), domain.MessageFailedGetReminders, err)
	}

	return presenters.SuccessResponse(c, reminders, fiber.StatusOK, domain.MessageSuccessGetReminders)
}
