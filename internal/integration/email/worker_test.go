// Package email provides email delivery via Resend and the queue worker.
package email

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gym-manager/backend/internal/domain/entity"
	"github.com/gym-manager/backend/internal/integration/email/templates"
)

// fakeEmailQueue is an in-memory EmailQueueRepository for worker tests.
type fakeEmailQueue struct {
	jobs       []*entity.EmailJob
	dequeueErr error
	prunedAt   *time.Time
}

func (q *fakeEmailQueue) Enqueue(ctx context.Context, job *entity.EmailJob) error {
	q.jobs = append(q.jobs, job)
	return nil
}

func (q *fakeEmailQueue) DequeueBatch(ctx context.Context, limit int) ([]*entity.EmailJob, error) {
	if q.dequeueErr != nil {
		return nil, q.dequeueErr
	}

	var batch []*entity.EmailJob
	for _, job := range q.jobs {
		if len(batch) >= limit {
			break
		}
		if job.IsReadyToProcess() {
			job.MarkProcessing()
			batch = append(batch, job)
		}
	}
	return batch, nil
}

func (q *fakeEmailQueue) Update(ctx context.Context, job *entity.EmailJob) error {
	for i, existing := range q.jobs {
		if existing.ID == job.ID {
			q.jobs[i] = job
			return nil
		}
	}
	return errors.New("job not found")
}

func (q *fakeEmailQueue) HasPendingForRecipient(ctx context.Context, templateType entity.EmailTemplateType, recipientEmail string) (bool, error) {
	for _, job := range q.jobs {
		if job.TemplateType == templateType && job.RecipientEmail == recipientEmail && job.Status == entity.EmailStatusPending {
			return true, nil
		}
	}
	return false, nil
}

func (q *fakeEmailQueue) DeleteProcessedBefore(ctx context.Context, cutoff time.Time) error {
	q.prunedAt = &cutoff
	return nil
}

func newTestWorker(t *testing.T, queue *fakeEmailQueue, sender *MockEmailSender) *Worker {
	t.Helper()

	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("failed to create renderer: %v", err)
	}

	return NewWorker(queue, sender, renderer, nil, DefaultWorkerConfig())
}

func welcomeJob(email, name string) *entity.EmailJob {
	return entity.NewEmailJob(
		entity.TemplateMemberWelcome,
		email,
		name,
		"Welcome to the gym",
		map[string]interface{}{"member_name": name},
	)
}

func TestWorker_ProcessNow(t *testing.T) {
	ctx := context.Background()

	t.Run("sends pending jobs and marks them sent", func(t *testing.T) {
		queue := &fakeEmailQueue{}
		sender := NewMockEmailSender()
		worker := newTestWorker(t, queue, sender)

		job := welcomeJob("alice@example.com", "Alice")
		_ = queue.Enqueue(ctx, job)

		worker.ProcessNow(ctx)

		if len(sender.SentEmails) != 1 {
			t.Fatalf("expected 1 sent email, got %d", len(sender.SentEmails))
		}
		sent := sender.SentEmails[0]
		if sent.To != "alice@example.com" {
			t.Errorf("expected recipient alice@example.com, got %s", sent.To)
		}
		if !strings.Contains(sent.HTML, "Alice") {
			t.Error("expected rendered HTML to contain the member name")
		}
		if sent.Text == "" {
			t.Error("expected a plain text body")
		}

		if job.Status != entity.EmailStatusSent {
			t.Errorf("expected status sent, got %s", job.Status)
		}
		if job.ProviderID == "" {
			t.Error("expected provider ID after send")
		}
	})

	t.Run("renders expiry reminder template", func(t *testing.T) {
		queue := &fakeEmailQueue{}
		sender := NewMockEmailSender()
		worker := newTestWorker(t, queue, sender)

		job := entity.NewEmailJob(
			entity.TemplateExpiryReminder,
			"bob@example.com",
			"Bob",
			"Your membership is expiring soon",
			map[string]interface{}{
				"member_name": "Bob",
				"expires_at":  "2026-09-15",
			},
		)
		_ = queue.Enqueue(ctx, job)

		worker.ProcessNow(ctx)

		if len(sender.SentEmails) != 1 {
			t.Fatalf("expected 1 sent email, got %d", len(sender.SentEmails))
		}
		if !strings.Contains(sender.SentEmails[0].HTML, "2026-09-15") {
			t.Error("expected rendered HTML to contain the expiry date")
		}
	})

	t.Run("temporary failure schedules a retry", func(t *testing.T) {
		queue := &fakeEmailQueue{}
		sender := NewMockEmailSender()
		sender.SetFailure(errors.New("503 service unavailable"), false)
		worker := newTestWorker(t, queue, sender)

		job := welcomeJob("carol@example.com", "Carol")
		_ = queue.Enqueue(ctx, job)

		worker.ProcessNow(ctx)

		if job.Status != entity.EmailStatusPending {
			t.Errorf("expected status pending for retry, got %s", job.Status)
		}
		if job.Attempts != 1 {
			t.Errorf("expected 1 attempt, got %d", job.Attempts)
		}
	})

	t.Run("permanent failure does not retry", func(t *testing.T) {
		queue := &fakeEmailQueue{}
		sender := NewMockEmailSender()
		sender.SetFailure(errors.New("422 validation error"), true)
		worker := newTestWorker(t, queue, sender)

		job := welcomeJob("dave@example.com", "Dave")
		_ = queue.Enqueue(ctx, job)

		worker.ProcessNow(ctx)

		if job.Status != entity.EmailStatusFailed {
			t.Errorf("expected status failed, got %s", job.Status)
		}
		if job.Attempts != 1 {
			t.Errorf("expected 1 attempt, got %d", job.Attempts)
		}
	})

	t.Run("exhausted attempts fail the job", func(t *testing.T) {
		queue := &fakeEmailQueue{}
		sender := NewMockEmailSender()
		sender.SetFailure(errors.New("503 service unavailable"), false)
		worker := newTestWorker(t, queue, sender)

		job := welcomeJob("erin@example.com", "Erin")
		job.Attempts = job.MaxAttempts - 1
		_ = queue.Enqueue(ctx, job)

		worker.ProcessNow(ctx)

		if job.Status != entity.EmailStatusFailed {
			t.Errorf("expected status failed after max attempts, got %s", job.Status)
		}
	})

	t.Run("unknown template type fails permanently", func(t *testing.T) {
		queue := &fakeEmailQueue{}
		sender := NewMockEmailSender()
		worker := newTestWorker(t, queue, sender)

		job := entity.NewEmailJob("nonexistent_template", "frank@example.com", "Frank", "Subject", nil)
		_ = queue.Enqueue(ctx, job)

		worker.ProcessNow(ctx)

		if len(sender.SentEmails) != 0 {
			t.Errorf("expected no sends, got %d", len(sender.SentEmails))
		}
		if job.Status != entity.EmailStatusFailed {
			t.Errorf("expected status failed, got %s", job.Status)
		}
	})

	t.Run("jobs scheduled in the future are left alone", func(t *testing.T) {
		queue := &fakeEmailQueue{}
		sender := NewMockEmailSender()
		worker := newTestWorker(t, queue, sender)

		job := welcomeJob("grace@example.com", "Grace")
		job.ScheduledAt = time.Now().UTC().Add(time.Hour)
		_ = queue.Enqueue(ctx, job)

		worker.ProcessNow(ctx)

		if len(sender.SentEmails) != 0 {
			t.Errorf("expected no sends for future job, got %d", len(sender.SentEmails))
		}
		if job.Status != entity.EmailStatusPending {
			t.Errorf("expected status pending, got %s", job.Status)
		}
	})
}

func TestIsPermanentError(t *testing.T) {
	cases := []struct {
		name      string
		err       error
		permanent bool
	}{
		{"unauthorized", errors.New("401 unauthorized"), true},
		{"forbidden", errors.New("403 forbidden"), true},
		{"validation", errors.New("422 validation failed"), true},
		{"rate limited", errors.New("429 too many requests"), false},
		{"server error", errors.New("500 internal server error"), false},
		{"network", errors.New("connection refused"), false},
		{"nil", nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := isPermanentError(tc.err); got != tc.permanent {
				t.Errorf("isPermanentError(%v) = %v, want %v", tc.err, got, tc.permanent)
			}
		})
	}
}
