// Package email provides email delivery via Resend and the queue worker.
package email

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gym-manager/backend/internal/application/adapter"
	"github.com/gym-manager/backend/internal/application/usecase/notification"
	"github.com/gym-manager/backend/internal/domain/entity"
	domainerror "github.com/gym-manager/backend/internal/domain/error"
	"github.com/gym-manager/backend/internal/integration/email/templates"
)

// Worker drains the email queue and drives the periodic reminder scan.
type Worker struct {
	queue            adapter.EmailQueueRepository
	sender           adapter.EmailSender
	renderer         *templates.Renderer
	reminders        *notification.QueueExpiryRemindersUseCase
	pollInterval     time.Duration
	batchSize        int
	reminderInterval time.Duration
	retention        time.Duration
}

// WorkerConfig holds configuration for the email worker.
type WorkerConfig struct {
	PollInterval     time.Duration
	BatchSize        int
	ReminderInterval time.Duration
	Retention        time.Duration
}

// DefaultWorkerConfig returns the default worker configuration.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		PollInterval:     5 * time.Second,
		BatchSize:        10,
		ReminderInterval: 1 * time.Hour,
		Retention:        30 * 24 * time.Hour,
	}
}

// NewWorker creates a new email worker.
func NewWorker(
	queue adapter.EmailQueueRepository,
	sender adapter.EmailSender,
	renderer *templates.Renderer,
	reminders *notification.QueueExpiryRemindersUseCase,
	config WorkerConfig,
) *Worker {
	return &Worker{
		queue:            queue,
		sender:           sender,
		renderer:         renderer,
		reminders:        reminders,
		pollInterval:     config.PollInterval,
		batchSize:        config.BatchSize,
		reminderInterval: config.ReminderInterval,
		retention:        config.Retention,
	}
}

// Start begins the worker loop. It blocks until the context is cancelled.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("email worker started",
		"poll_interval", w.pollInterval,
		"batch_size", w.batchSize,
		"reminder_interval", w.reminderInterval,
	)

	pollTicker := time.NewTicker(w.pollInterval)
	defer pollTicker.Stop()

	reminderTicker := time.NewTicker(w.reminderInterval)
	defer reminderTicker.Stop()

	// Process immediately on start, then on ticker
	w.runReminderScan(ctx)
	w.processBatch(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("email worker shutting down")
			return
		case <-pollTicker.C:
			w.processBatch(ctx)
		case <-reminderTicker.C:
			w.runReminderScan(ctx)
			w.pruneProcessed(ctx)
		}
	}
}

// processBatch fetches and processes a batch of due emails. Jobs come back
// already marked as processing.
func (w *Worker) processBatch(ctx context.Context) {
	jobs, err := w.queue.DequeueBatch(ctx, w.batchSize)
	if err != nil {
		slog.Error("failed to dequeue email jobs", "error", err)
		return
	}

	if len(jobs) == 0 {
		return
	}

	slog.Debug("processing email batch", "count", len(jobs))

	for _, job := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
			w.processJob(ctx, job)
		}
	}
}

// processJob renders and sends a single email job.
func (w *Worker) processJob(ctx context.Context, job *entity.EmailJob) {
	logger := slog.With(
		"job_id", job.ID,
		"template", job.TemplateType,
		"recipient", job.RecipientEmail,
	)

	html, text, err := w.renderTemplate(job)
	if err != nil {
		logger.Error("failed to render email template", "error", err)
		w.handleFailure(ctx, job, err, true) // Template errors are permanent
		return
	}

	result, err := w.sender.Send(ctx, adapter.SendEmailInput{
		To:      job.RecipientEmail,
		Subject: job.Subject,
		HTML:    html,
		Text:    text,
	})
	if err != nil {
		logger.Error("failed to send email", "error", err)

		var emailErr *domainerror.EmailError
		isPermanent := errors.As(err, &emailErr) && emailErr.IsPermanent()

		w.handleFailure(ctx, job, err, isPermanent)
		return
	}

	job.MarkSent(result.ProviderID)
	if err := w.queue.Update(ctx, job); err != nil {
		logger.Error("failed to mark job as sent", "error", err)
		return
	}

	logger.Info("email sent", "provider_id", result.ProviderID)
}

// renderTemplate renders the appropriate template for the job.
func (w *Worker) renderTemplate(job *entity.EmailJob) (html string, text string, err error) {
	templateName := string(job.TemplateType)

	var data interface{}
	switch job.TemplateType {
	case entity.TemplateMemberWelcome:
		data = templates.MemberWelcomeData{
			MemberName: getString(job.TemplateData, "member_name"),
		}
	case entity.TemplateExpiryReminder:
		data = templates.ExpiryReminderData{
			MemberName: getString(job.TemplateData, "member_name"),
			ExpiresAt:  getString(job.TemplateData, "expires_at"),
		}
	default:
		return "", "", domainerror.NewEmailError(
			domainerror.ErrCodePermanentEmailFailure,
			"unknown template type",
			errors.New(templateName),
		)
	}

	return w.renderer.Render(templateName, data)
}

// handleFailure records a failed delivery attempt.
func (w *Worker) handleFailure(ctx context.Context, job *entity.EmailJob, err error, permanent bool) {
	job.MarkFailed(err, permanent)

	if updateErr := w.queue.Update(ctx, job); updateErr != nil {
		slog.Error("failed to update job after failure",
			"job_id", job.ID,
			"error", updateErr,
		)
	}

	if job.Status == entity.EmailStatusFailed {
		slog.Warn("email job permanently failed",
			"job_id", job.ID,
			"attempts", job.Attempts,
			"last_error", job.LastError,
		)
	} else {
		slog.Info("email job scheduled for retry",
			"job_id", job.ID,
			"attempts", job.Attempts,
			"scheduled_at", job.ScheduledAt,
		)
	}
}

// runReminderScan enqueues expiry reminder emails for soon-to-lapse members.
func (w *Worker) runReminderScan(ctx context.Context) {
	if w.reminders == nil {
		return
	}
	if _, err := w.reminders.Execute(ctx, notification.QueueExpiryRemindersInput{}); err != nil {
		slog.Error("expiry reminder scan failed", "error", err)
	}
}

// pruneProcessed deletes sent and failed jobs older than the retention window.
func (w *Worker) pruneProcessed(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-w.retention)
	if err := w.queue.DeleteProcessedBefore(ctx, cutoff); err != nil {
		slog.Error("failed to prune processed email jobs", "error", err)
	}
}

// getString safely extracts a string from a map.
func getString(data map[string]interface{}, key string) string {
	if v, ok := data[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// ProcessNow processes one batch of pending emails immediately (useful for testing).
func (w *Worker) ProcessNow(ctx context.Context) {
	w.processBatch(ctx)
}
