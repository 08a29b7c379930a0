package email

import (
	"context"
	"testing"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/email/templates"
)

type stubEmailQueue struct {
	jobs []*entity.EmailJob
}

func (s *stubEmailQueue) Enqueue(ctx context.Context, job *entity.EmailJob) error {
	s.jobs = append(s.jobs, job)
	return nil
}

func (s *stubEmailQueue) GetPendingJobs(ctx context.Context, limit int) ([]*entity.EmailJob, error) {
	var ready []*entity.EmailJob
	for _, job := range s.jobs {
		if job.Status == entity.EmailStatusPending && len(ready) < limit {
			ready = append(ready, job)
		}
	}
	return ready, nil
}

func (s *stubEmailQueue) Update(ctx context.Context, job *entity.EmailJob) error {
	return nil
}

type stubEmailSender struct {
	sendErr error
	sent    []adapter.SendEmailInput
}

func (s *stubEmailSender) Send(ctx context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	if s.sendErr != nil {
		return nil, s.sendErr
	}
	s.sent = append(s.sent, input)
	return &adapter.SendEmailResult{ProviderID: "provider-123"}, nil
}

func newLimitAlertJob() *entity.EmailJob {
	return entity.NewEmailJob(
		entity.TemplateLimitAlert,
		"alice@example.com",
		"Alice",
		"Monthly limit exceeded",
		map[string]interface{}{
			"UserName":     "Alice",
			"CategoryName": "Food",
			"LimitAmount":  "300",
			"SpentAmount":  "315.50",
			"Month":        "August 2026",
		},
	)
}

func newTestWorker(t *testing.T, queue *stubEmailQueue, sender *stubEmailSender) *Worker {
	t.Helper()
	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("failed to create renderer: %v", err)
	}
	return NewWorker(queue, sender, renderer, DefaultWorkerConfig())
}

func TestWorkerSendsPendingJob(t *testing.T) {
	queue := &stubEmailQueue{}
	sender := &stubEmailSender{}
	worker := newTestWorker(t, queue, sender)

	job := newLimitAlertJob()
	queue.jobs = append(queue.jobs, job)

	worker.ProcessNow(context.Background())

	if job.Status != entity.EmailStatusSent {
		t.Fatalf("expected status %s, got %s", entity.EmailStatusSent, job.Status)
	}
	if job.ProviderID != "provider-123" {
		t.Errorf("expected provider id to be recorded, got %q", job.ProviderID)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("expected 1 email sent, got %d", len(sender.sent))
	}
	if sender.sent[0].To != "alice@example.com" {
		t.Errorf("unexpected recipient: %s", sender.sent[0].To)
	}
	if sender.sent[0].HTML == "" {
		t.Error("expected rendered HTML body")
	}
}

func TestWorkerRetriesTransientFailure(t *testing.T) {
	queue := &stubEmailQueue{}
	sender := &stubEmailSender{
		sendErr: domainerror.NewEmailError(
			domainerror.ErrCodeTransientEmailFailure,
			"provider timeout",
			nil,
		),
	}
	worker := newTestWorker(t, queue, sender)

	job := newLimitAlertJob()
	queue.jobs = append(queue.jobs, job)

	worker.ProcessNow(context.Background())

	if job.Status != entity.EmailStatusPending {
		t.Fatalf("expected job to stay pending for retry, got %s", job.Status)
	}
	if job.Attempts != 1 {
		t.Errorf("expected 1 attempt, got %d", job.Attempts)
	}
	if job.LastError == "" {
		t.Error("expected last error to be recorded")
	}
}

func TestWorkerFailsPermanentlyOnProviderRejection(t *testing.T) {
	queue := &stubEmailQueue{}
	sender := &stubEmailSender{
		sendErr: domainerror.NewEmailError(
			domainerror.ErrCodePermanentEmailFailure,
			"invalid recipient",
			nil,
		),
	}
	worker := newTestWorker(t, queue, sender)

	job := newLimitAlertJob()
	queue.jobs = append(queue.jobs, job)

	worker.ProcessNow(context.Background())

	if job.Status != entity.EmailStatusFailed {
		t.Fatalf("expected status %s, got %s", entity.EmailStatusFailed, job.Status)
	}
}

func TestWorkerFailsUnknownTemplate(t *testing.T) {
	queue := &stubEmailQueue{}
	sender := &stubEmailSender{}
	worker := newTestWorker(t, queue, sender)

	job := entity.NewEmailJob(
		entity.EmailTemplateType("unknown"),
		"alice@example.com",
		"Alice",
		"Subject",
		nil,
	)
	queue.jobs = append(queue.jobs, job)

	worker.ProcessNow(context.Background())

	if job.Status != entity.EmailStatusFailed {
		t.Fatalf("expected unknown template to fail permanently, got %s", job.Status)
	}
	if len(sender.sent) != 0 {
		t.Errorf("expected no send attempt, got %d", len(sender.sent))
	}
}
