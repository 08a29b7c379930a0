package expense

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

type creatingExpenseRepository struct {
	adapter.ExpenseRepository

	created  []*entity.Expense
	monthSum decimal.Decimal
}

func (r *creatingExpenseRepository) Create(_ context.Context, expense *entity.Expense) error {
	r.created = append(r.created, expense)
	return nil
}

func (r *creatingExpenseRepository) SumForCategoryMonth(_ context.Context, _, _ uuid.UUID, _, _ time.Time) (decimal.Decimal, error) {
	return r.monthSum, nil
}

type stubCategoryRepository struct {
	adapter.CategoryRepository

	category *entity.Category
	err      error
}

func (r *stubCategoryRepository) FindByID(_ context.Context, _ uuid.UUID) (*entity.Category, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.category, nil
}

type stubLimitRepository struct {
	adapter.MonthlyLimitRepository

	limit *entity.MonthlyLimit
}

func (r *stubLimitRepository) FindByUserAndCategory(_ context.Context, _, _ uuid.UUID) (*entity.MonthlyLimit, error) {
	return r.limit, nil
}

type stubEmailQueue struct {
	adapter.EmailQueueRepository

	enqueued []*entity.EmailJob
}

func (q *stubEmailQueue) Enqueue(_ context.Context, job *entity.EmailJob) error {
	q.enqueued = append(q.enqueued, job)
	return nil
}

func newCreateFixture(monthSum decimal.Decimal, limit *entity.MonthlyLimit) (*CreateExpenseUseCase, *creatingExpenseRepository, *stubEmailQueue, *entity.Category) {
	category := entity.NewCategory("Groceries", "food and household")
	expenseRepo := &creatingExpenseRepository{monthSum: monthSum}
	queue := &stubEmailQueue{}
	uc := NewCreateExpenseUseCase(
		expenseRepo,
		&stubCategoryRepository{category: category},
		&stubLimitRepository{limit: limit},
		queue,
	)
	return uc, expenseRepo, queue, category
}

func TestCreateExpense_RejectsNegativeAmount(t *testing.T) {
	uc, _, _, category := newCreateFixture(decimal.Zero, nil)
	actor := &entity.User{ID: uuid.New(), Role: entity.RoleViewer}

	_, err := uc.Execute(context.Background(), actor, CreateExpenseInput{
		Date:        time.Now().UTC(),
		Description: "refund gone wrong",
		Amount:      decimal.NewFromInt(-5),
		CategoryID:  category.ID,
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var expenseErr *domainerror.ExpenseError
	if !errors.As(err, &expenseErr) || expenseErr.Code != domainerror.ErrCodeInvalidExpenseAmount {
		t.Errorf("expected invalid amount error, got %v", err)
	}
}

func TestCreateExpense_RejectsUnknownCategory(t *testing.T) {
	uc := NewCreateExpenseUseCase(
		&creatingExpenseRepository{},
		&stubCategoryRepository{err: domainerror.ErrCategoryNotFound},
		&stubLimitRepository{},
		&stubEmailQueue{},
	)
	actor := &entity.User{ID: uuid.New(), Role: entity.RoleViewer}

	_, err := uc.Execute(context.Background(), actor, CreateExpenseInput{
		Date:        time.Now().UTC(),
		Description: "mystery purchase",
		Amount:      decimal.NewFromInt(10),
		CategoryID:  uuid.New(),
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var expenseErr *domainerror.ExpenseError
	if !errors.As(err, &expenseErr) || expenseErr.Code != domainerror.ErrCodeExpCategoryNotFound {
		t.Errorf("expected category not found error, got %v", err)
	}
}

func TestCreateExpense_PersistsAndReturnsCategory(t *testing.T) {
	uc, repo, queue, category := newCreateFixture(decimal.NewFromInt(50), nil)
	actor := &entity.User{ID: uuid.New(), Role: entity.RoleViewer, Email: "ana@example.com", Name: "Ana"}

	out, err := uc.Execute(context.Background(), actor, CreateExpenseInput{
		Date:        time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		Description: "weekly groceries",
		Amount:      decimal.NewFromInt(50),
		CategoryID:  category.ID,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(repo.created) != 1 {
		t.Fatalf("expected 1 expense created, got %d", len(repo.created))
	}
	if repo.created[0].UserID != actor.ID {
		t.Errorf("expected expense owned by actor, got %s", repo.created[0].UserID)
	}
	if out.Category.ID != category.ID {
		t.Errorf("expected category %s in output, got %s", category.ID, out.Category.ID)
	}
	if len(queue.enqueued) != 0 {
		t.Errorf("expected no alert without a limit, got %d", len(queue.enqueued))
	}
}

func TestCreateExpense_LimitAlerts(t *testing.T) {
	actorID := uuid.New()

	tests := []struct {
		name      string
		monthSum  decimal.Decimal // sum including the new expense
		amount    decimal.Decimal
		alert     bool
		wantAlert bool
	}{
		{"crossing the limit alerts", decimal.NewFromInt(120), decimal.NewFromInt(30), true, true},
		{"staying under the limit stays silent", decimal.NewFromInt(90), decimal.NewFromInt(30), true, false},
		{"already exceeded month stays silent", decimal.NewFromInt(160), decimal.NewFromInt(30), true, false},
		{"alerting disabled stays silent", decimal.NewFromInt(120), decimal.NewFromInt(30), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit := entity.NewMonthlyLimit(actorID, uuid.New(), decimal.NewFromInt(100), tt.alert)
			uc, _, queue, category := newCreateFixture(tt.monthSum, limit)
			actor := &entity.User{ID: actorID, Role: entity.RoleViewer, Email: "ana@example.com", Name: "Ana"}

			_, err := uc.Execute(context.Background(), actor, CreateExpenseInput{
				Date:        time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC),
				Description: "dinner out",
				Amount:      tt.amount,
				CategoryID:  category.ID,
			})
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			gotAlert := len(queue.enqueued) == 1
			if gotAlert != tt.wantAlert {
				t.Fatalf("expected alert=%v, got %d queued emails", tt.wantAlert, len(queue.enqueued))
			}

			if gotAlert {
				job := queue.enqueued[0]
				if job.TemplateType != entity.TemplateLimitAlert {
					t.Errorf("expected limit alert template, got %s", job.TemplateType)
				}
				if job.RecipientEmail != actor.Email {
					t.Errorf("expected recipient %s, got %s", actor.Email, job.RecipientEmail)
				}
			}
		})
	}
}
