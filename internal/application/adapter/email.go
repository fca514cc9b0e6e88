// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/gym-manager/backend/internal/domain/entity"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ProviderID string
}

// EmailSender defines the interface for transactional email delivery.
type EmailSender interface {
	// Send sends a single email.
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// EmailQueueRepository defines the interface for the outbound email queue.
type EmailQueueRepository interface {
	// Enqueue adds a job to the queue.
	Enqueue(ctx context.Context, job *entity.EmailJob) error

	// DequeueBatch fetches up to limit pending jobs that are due and marks
	// them as processing.
	DequeueBatch(ctx context.Context, limit int) ([]*entity.EmailJob, error)

	// Update persists the state of a job after a delivery attempt.
	Update(ctx context.Context, job *entity.EmailJob) error

	// HasPendingForRecipient reports whether a job of the template type is
	// already queued for the recipient. Used to avoid duplicate reminders.
	HasPendingForRecipient(ctx context.Context, templateType entity.EmailTemplateType, recipientEmail string) (bool, error)

	// DeleteProcessedBefore prunes sent/failed jobs older than the cutoff.
	DeleteProcessedBefore(ctx context.Context, cutoff time.Time) error
}
