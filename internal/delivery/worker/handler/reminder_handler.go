package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// ReminderSummary is the reply to a reminder run.
type ReminderSummary struct {
	Day           string `json:"day"`
	Sent          int    `json:"sent"`
	Failed        int    `json:"failed"`
	InvalidTokens int    `json:"invalid_tokens"`
}

// HandleReminders sends the day-before reminders. It is meant for a daily
// scheduler job authenticated like push deliveries. The optional date query
// (YYYY-MM-DD) overrides the default of tomorrow in UTC.
func (h *PushHandler) HandleReminders(c echo.Context) error {
	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid scheduler token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	day := h.now().UTC().AddDate(0, 0, 1)
	if value := c.QueryParam("date"); value != "" {
		parsed, err := time.Parse(time.DateOnly, value)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "date must be YYYY-MM-DD"})
		}
		day = parsed
	}

	result, err := h.notificationUC.SendDueReminders(c.Request().Context(), day)
	if err != nil {
		h.logger.Error("[Worker] Failed to send reminders", slog.String("day", day.Format(time.DateOnly)), slog.Any("error", err))

		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.JSON(http.StatusOK, ReminderSummary{
		Day:           day.Format(time.DateOnly),
		Sent:          result.Sent,
		Failed:        result.Failed,
		InvalidTokens: result.InvalidTokens,
	})
}
