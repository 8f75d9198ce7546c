package job

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"perkpal-backend/internal/domains/lead/model"
	"perkpal-backend/internal/infrastructure/email"
	"perkpal-backend/pkg/logger"
)

// NotifyHandler emails the sales inbox about a freshly captured lead.
type NotifyHandler struct {
	email email.EmailService
	inbox string
}

func NewNotifyHandler(emailSvc email.EmailService, inbox string) *NotifyHandler {
	return &NotifyHandler{email: emailSvc, inbox: inbox}
}

func (h *NotifyHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload model.NotifyTaskPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		// A malformed payload never becomes valid; skip retries.
		return fmt.Errorf("failed to decode lead notify payload: %v: %w", err, asynq.SkipRetry)
	}

	err := h.email.SendLeadNotification(ctx, email.LeadNotificationData{
		To:        h.inbox,
		PerkTitle: payload.PerkTitle,
		Vendor:    payload.PerkVendor,
		Email:     payload.Email,
		CreatedAt: payload.CreatedAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("failed to send lead notification: %w", err)
	}

	logger.Info("lead notification sent", map[string]interface{}{
		"lead_id": payload.LeadID.String(),
	})
	return nil
}
