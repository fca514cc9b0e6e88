// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/gym-manager/backend/internal/application/adapter"
	"github.com/gym-manager/backend/internal/domain/entity"
	"github.com/gym-manager/backend/internal/integration/persistence/model"
)

// emailQueueRepository implements the adapter.EmailQueueRepository interface.
type emailQueueRepository struct {
	db *gorm.DB
}

// NewEmailQueueRepository creates a new email queue repository instance.
func NewEmailQueueRepository(db *gorm.DB) adapter.EmailQueueRepository {
	return &emailQueueRepository{
		db: db,
	}
}

// Enqueue adds a job to the queue.
func (r *emailQueueRepository) Enqueue(ctx context.Context, job *entity.EmailJob) error {
	emailModel := model.EmailQueueFromEntity(job)
	result := r.db.WithContext(ctx).Create(emailModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// DequeueBatch fetches up to limit due pending jobs and marks them as
// processing inside one transaction, so concurrent workers never pick
// the same job twice.
func (r *emailQueueRepository) DequeueBatch(ctx context.Context, limit int) ([]*entity.EmailJob, error) {
	var models []model.EmailQueueModel

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.
			Where("status = ?", entity.EmailStatusPending).
			Where("scheduled_at <= ?", time.Now().UTC()).
			Order("scheduled_at ASC").
			Limit(limit).
			Find(&models)
		if result.Error != nil {
			return result.Error
		}
		if len(models) == 0 {
			return nil
		}

		ids := make([]interface{}, len(models))
		for i, m := range models {
			ids[i] = m.ID
		}
		return tx.Model(&model.EmailQueueModel{}).
			Where("id IN ?", ids).
			Update("status", entity.EmailStatusProcessing).Error
	})
	if err != nil {
		return nil, err
	}

	jobs := make([]*entity.EmailJob, len(models))
	for i, m := range models {
		job := m.ToEntity()
		job.MarkProcessing()
		jobs[i] = job
	}
	return jobs, nil
}

// Update persists the state of a job after a delivery attempt.
func (r *emailQueueRepository) Update(ctx context.Context, job *entity.EmailJob) error {
	emailModel := model.EmailQueueFromEntity(job)
	result := r.db.WithContext(ctx).Save(emailModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// HasPendingForRecipient reports whether a job of the template type is
// already queued for the recipient.
func (r *emailQueueRepository) HasPendingForRecipient(ctx context.Context, templateType entity.EmailTemplateType, recipientEmail string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.EmailQueueModel{}).
		Where("template_type = ? AND recipient_email = ?", string(templateType), recipientEmail).
		Where("status IN ?", []string{string(entity.EmailStatusPending), string(entity.EmailStatusProcessing)}).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// DeleteProcessedBefore prunes sent/failed jobs older than the cutoff.
func (r *emailQueueRepository) DeleteProcessedBefore(ctx context.Context, cutoff time.Time) error {
	result := r.db.WithContext(ctx).
		Where("status IN ?", []string{string(entity.EmailStatusSent), string(entity.EmailStatusFailed)}).
		Where("processed_at < ?", cutoff).
		Delete(&model.EmailQueueModel{})
	if result.Error != nil {
		return result.Error
	}
	return nil
}
