// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gym-manager/backend/internal/domain/entity"
)

func pendingJob(email string) *entity.EmailJob {
	job := entity.NewEmailJob(
		entity.TemplateMemberWelcome,
		email,
		"Test Member",
		"Welcome to the gym",
		map[string]interface{}{"member_name": "Test Member"},
	)
	// Push scheduling into the past so the job is immediately due
	job.ScheduledAt = time.Now().UTC().Add(-time.Minute)
	return job
}

func TestEmailQueueRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("enqueue and dequeue round-trips the job", func(t *testing.T) {
		repo := NewEmailQueueRepository(newTestDB(t))

		job := pendingJob("alice@example.com")
		if err := repo.Enqueue(ctx, job); err != nil {
			t.Fatalf("failed to enqueue job: %v", err)
		}

		jobs, err := repo.DequeueBatch(ctx, 10)
		if err != nil {
			t.Fatalf("failed to dequeue: %v", err)
		}
		if len(jobs) != 1 {
			t.Fatalf("expected 1 job, got %d", len(jobs))
		}

		got := jobs[0]
		if got.ID != job.ID {
			t.Errorf("expected job %s, got %s", job.ID, got.ID)
		}
		if got.Status != entity.EmailStatusProcessing {
			t.Errorf("expected status processing, got %s", got.Status)
		}
		if got.TemplateData["member_name"] != "Test Member" {
			t.Errorf("expected template data to round-trip, got %v", got.TemplateData)
		}
	})

	t.Run("dequeued jobs are not returned twice", func(t *testing.T) {
		repo := NewEmailQueueRepository(newTestDB(t))

		if err := repo.Enqueue(ctx, pendingJob("alice@example.com")); err != nil {
			t.Fatalf("failed to enqueue job: %v", err)
		}

		first, err := repo.DequeueBatch(ctx, 10)
		if err != nil {
			t.Fatalf("failed to dequeue: %v", err)
		}
		if len(first) != 1 {
			t.Fatalf("expected 1 job on first dequeue, got %d", len(first))
		}

		second, err := repo.DequeueBatch(ctx, 10)
		if err != nil {
			t.Fatalf("failed to dequeue: %v", err)
		}
		if len(second) != 0 {
			t.Errorf("expected 0 jobs on second dequeue, got %d", len(second))
		}
	})

	t.Run("dequeue respects the batch limit and due time", func(t *testing.T) {
		repo := NewEmailQueueRepository(newTestDB(t))

		for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
			if err := repo.Enqueue(ctx, pendingJob(email)); err != nil {
				t.Fatalf("failed to enqueue job: %v", err)
			}
		}

		future := pendingJob("future@example.com")
		future.ScheduledAt = time.Now().UTC().Add(time.Hour)
		if err := repo.Enqueue(ctx, future); err != nil {
			t.Fatalf("failed to enqueue job: %v", err)
		}

		jobs, err := repo.DequeueBatch(ctx, 2)
		if err != nil {
			t.Fatalf("failed to dequeue: %v", err)
		}
		if len(jobs) != 2 {
			t.Errorf("expected batch of 2, got %d", len(jobs))
		}
		for _, job := range jobs {
			if job.RecipientEmail == "future@example.com" {
				t.Error("expected future job to stay queued")
			}
		}
	})

	t.Run("update persists delivery state", func(t *testing.T) {
		repo := NewEmailQueueRepository(newTestDB(t))

		job := pendingJob("alice@example.com")
		if err := repo.Enqueue(ctx, job); err != nil {
			t.Fatalf("failed to enqueue job: %v", err)
		}

		jobs, err := repo.DequeueBatch(ctx, 1)
		if err != nil || len(jobs) != 1 {
			t.Fatalf("failed to dequeue: %v (%d jobs)", err, len(jobs))
		}

		jobs[0].MarkSent("resend-123")
		if err := repo.Update(ctx, jobs[0]); err != nil {
			t.Fatalf("failed to update job: %v", err)
		}

		remaining, err := repo.DequeueBatch(ctx, 10)
		if err != nil {
			t.Fatalf("failed to dequeue: %v", err)
		}
		if len(remaining) != 0 {
			t.Errorf("expected sent job to stay out of the queue, got %d", len(remaining))
		}
	})

	t.Run("retry failure puts the job back in the queue", func(t *testing.T) {
		repo := NewEmailQueueRepository(newTestDB(t))

		job := pendingJob("alice@example.com")
		if err := repo.Enqueue(ctx, job); err != nil {
			t.Fatalf("failed to enqueue job: %v", err)
		}

		jobs, err := repo.DequeueBatch(ctx, 1)
		if err != nil || len(jobs) != 1 {
			t.Fatalf("failed to dequeue: %v (%d jobs)", err, len(jobs))
		}

		jobs[0].MarkFailed(errors.New("503 service unavailable"), false)
		// First retry is immediate, so make it due now
		jobs[0].ScheduledAt = time.Now().UTC().Add(-time.Second)
		if err := repo.Update(ctx, jobs[0]); err != nil {
			t.Fatalf("failed to update job: %v", err)
		}

		retried, err := repo.DequeueBatch(ctx, 10)
		if err != nil {
			t.Fatalf("failed to dequeue: %v", err)
		}
		if len(retried) != 1 {
			t.Errorf("expected retried job back in the queue, got %d", len(retried))
		}
	})

	t.Run("has pending for recipient covers pending and processing", func(t *testing.T) {
		repo := NewEmailQueueRepository(newTestDB(t))

		reminder := pendingJob("alice@example.com")
		reminder.TemplateType = entity.TemplateExpiryReminder
		if err := repo.Enqueue(ctx, reminder); err != nil {
			t.Fatalf("failed to enqueue job: %v", err)
		}

		pending, err := repo.HasPendingForRecipient(ctx, entity.TemplateExpiryReminder, "alice@example.com")
		if err != nil {
			t.Fatalf("failed to check pending: %v", err)
		}
		if !pending {
			t.Error("expected pending reminder to be detected")
		}

		// Still counts while processing
		if _, err := repo.DequeueBatch(ctx, 1); err != nil {
			t.Fatalf("failed to dequeue: %v", err)
		}
		pending, err = repo.HasPendingForRecipient(ctx, entity.TemplateExpiryReminder, "alice@example.com")
		if err != nil {
			t.Fatalf("failed to check pending: %v", err)
		}
		if !pending {
			t.Error("expected processing reminder to still count as pending")
		}

		// Other template and other recipient do not count
		pending, err = repo.HasPendingForRecipient(ctx, entity.TemplateMemberWelcome, "alice@example.com")
		if err != nil {
			t.Fatalf("failed to check pending: %v", err)
		}
		if pending {
			t.Error("expected other template type to not count")
		}
	})

	t.Run("prune removes old processed jobs only", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewEmailQueueRepository(db)

		old := pendingJob("old@example.com")
		if err := repo.Enqueue(ctx, old); err != nil {
			t.Fatalf("failed to enqueue job: %v", err)
		}
		jobs, err := repo.DequeueBatch(ctx, 1)
		if err != nil || len(jobs) != 1 {
			t.Fatalf("failed to dequeue: %v (%d jobs)", err, len(jobs))
		}
		jobs[0].MarkSent("resend-old")
		past := time.Now().UTC().Add(-60 * 24 * time.Hour)
		jobs[0].ProcessedAt = &past
		if err := repo.Update(ctx, jobs[0]); err != nil {
			t.Fatalf("failed to update job: %v", err)
		}

		fresh := pendingJob("fresh@example.com")
		if err := repo.Enqueue(ctx, fresh); err != nil {
			t.Fatalf("failed to enqueue job: %v", err)
		}

		if err := repo.DeleteProcessedBefore(ctx, time.Now().UTC().Add(-30*24*time.Hour)); err != nil {
			t.Fatalf("failed to prune: %v", err)
		}

		var count int64
		if err := db.Table("email_queue").Count(&count).Error; err != nil {
			t.Fatalf("failed to count rows: %v", err)
		}
		if count != 1 {
			t.Errorf("expected 1 row after prune, got %d", count)
		}
	})
}
