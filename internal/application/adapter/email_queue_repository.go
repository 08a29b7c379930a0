// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// EmailQueueRepository defines the interface for the persistent email queue.
type EmailQueueRepository interface {
	// Enqueue stores a new email job in the queue.
	Enqueue(ctx context.Context, job *entity.EmailJob) error

	// GetPendingJobs retrieves up to limit jobs ready for processing.
	GetPendingJobs(ctx context.Context, limit int) ([]*entity.EmailJob, error)

	// Update persists status changes of a job.
	Update(ctx context.Context, job *entity.EmailJob) error
}
