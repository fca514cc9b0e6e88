// Package notification contains email notification use cases.
package notification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gym-manager/backend/internal/application/adapter"
	"github.com/gym-manager/backend/internal/domain/entity"
)

// DefaultReminderWindow is how far ahead expiry reminders look.
const DefaultReminderWindow = 7 * 24 * time.Hour

// QueueExpiryRemindersInput represents the input for the reminder scan.
// A zero Window falls back to DefaultReminderWindow.
type QueueExpiryRemindersInput struct {
	Window time.Duration
}

// QueueExpiryRemindersOutput represents the output of the reminder scan.
type QueueExpiryRemindersOutput struct {
	Queued  int
	Skipped int
}

// QueueExpiryRemindersUseCase scans memberships expiring within the window
// and enqueues one reminder email per member. Members already holding a
// pending reminder are skipped, so repeated scans stay idempotent.
type QueueExpiryRemindersUseCase struct {
	memberRepo adapter.MemberRepository
	emailQueue adapter.EmailQueueRepository
	now        func() time.Time
}

// NewQueueExpiryRemindersUseCase creates a new QueueExpiryRemindersUseCase instance.
func NewQueueExpiryRemindersUseCase(
	memberRepo adapter.MemberRepository,
	emailQueue adapter.EmailQueueRepository,
) *QueueExpiryRemindersUseCase {
	return &QueueExpiryRemindersUseCase{
		memberRepo: memberRepo,
		emailQueue: emailQueue,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Execute performs the reminder scan.
func (uc *QueueExpiryRemindersUseCase) Execute(ctx context.Context, input QueueExpiryRemindersInput) (*QueueExpiryRemindersOutput, error) {
	window := input.Window
	if window <= 0 {
		window = DefaultReminderWindow
	}

	now := uc.now()
	members, err := uc.memberRepo.FindExpiringBetween(ctx, now, now.Add(window))
	if err != nil {
		return nil, fmt.Errorf("failed to find expiring memberships: %w", err)
	}

	out := &QueueExpiryRemindersOutput{}
	for _, m := range members {
		if m.Email == "" {
			out.Skipped++
			continue
		}

		pending, err := uc.emailQueue.HasPendingForRecipient(ctx, entity.TemplateExpiryReminder, m.Email)
		if err != nil {
			slog.Warn("failed to check pending reminders, skipping member",
				"member_id", m.ID,
				"error", err,
			)
			out.Skipped++
			continue
		}
		if pending {
			out.Skipped++
			continue
		}

		job := entity.NewEmailJob(
			entity.TemplateExpiryReminder,
			m.Email,
			m.Name,
			"Your membership is expiring soon",
			map[string]interface{}{
				"member_name": m.Name,
				"expires_at":  m.MembershipEndDate.Format("2006-01-02"),
			},
		)
		if err := uc.emailQueue.Enqueue(ctx, job); err != nil {
			slog.Warn("failed to enqueue expiry reminder",
				"member_id", m.ID,
				"error", err,
			)
			out.Skipped++
			continue
		}
		out.Queued++
	}

	slog.Info("expiry reminder scan complete",
		"queued", out.Queued,
		"skipped", out.Skipped,
	)

	return out, nil
}
