package expense

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// MaxDescriptionLength is the maximum allowed length for expense descriptions.
const MaxDescriptionLength = 255

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	CategoryID  uuid.UUID
	BillPhoto   *string
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense  *entity.Expense
	Category *entity.Category
}

// CreateExpenseUseCase handles expense creation logic.
type CreateExpenseUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	categoryRepo adapter.CategoryRepository
	limitRepo    adapter.MonthlyLimitRepository
	emailQueue   adapter.EmailQueueRepository
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	categoryRepo adapter.CategoryRepository,
	limitRepo adapter.MonthlyLimitRepository,
	emailQueue adapter.EmailQueueRepository,
) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
		limitRepo:    limitRepo,
		emailQueue:   emailQueue,
	}
}

// Execute performs the expense creation on behalf of the acting user.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, actor *entity.User, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	if input.Description == "" {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeMissingExpenseFields,
			"description is required",
			nil,
		)
	}

	if len(input.Description) > MaxDescriptionLength {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeMissingExpenseFields,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			nil,
		)
	}

	if input.Amount.IsNegative() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"amount must not be negative",
			domainerror.ErrInvalidExpenseAmount,
		)
	}

	if input.Date.IsZero() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseDate,
			"date is required",
			domainerror.ErrInvalidExpenseDate,
		)
	}

	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFoundForExpense,
		)
	}

	expense := entity.NewExpense(
		actor.ID,
		input.CategoryID,
		input.Date,
		input.Description,
		input.Amount,
		input.BillPhoto,
	)

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	// Limit alerting is best effort; a failure here never fails the creation.
	uc.checkMonthlyLimit(ctx, actor, expense, category)

	return &CreateExpenseOutput{
		Expense:  expense,
		Category: category,
	}, nil
}

// checkMonthlyLimit enqueues a limit alert email when this expense pushes
// the month's spending in its category past the configured limit. Only the
// crossing expense triggers an alert; later expenses in an already-exceeded
// month stay silent.
func (uc *CreateExpenseUseCase) checkMonthlyLimit(ctx context.Context, actor *entity.User, expense *entity.Expense, category *entity.Category) {
	limit, err := uc.limitRepo.FindByUserAndCategory(ctx, actor.ID, expense.CategoryID)
	if err != nil {
		slog.WarnContext(ctx, "failed to load monthly limit", "error", err, "user_id", actor.ID)
		return
	}
	if limit == nil || !limit.AlertOnExceed {
		return
	}

	monthStart := time.Date(expense.Date.Year(), expense.Date.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)

	spent, err := uc.expenseRepo.SumForCategoryMonth(ctx, actor.ID, expense.CategoryID, monthStart, monthEnd)
	if err != nil {
		slog.WarnContext(ctx, "failed to sum monthly spending", "error", err, "user_id", actor.ID)
		return
	}

	spentBefore := spent.Sub(expense.Amount)
	if spent.LessThanOrEqual(limit.LimitAmount) || spentBefore.GreaterThan(limit.LimitAmount) {
		return
	}

	job := entity.NewEmailJob(
		entity.TemplateLimitAlert,
		actor.Email,
		actor.Name,
		fmt.Sprintf("Monthly limit exceeded for %s", category.Name),
		map[string]interface{}{
			"UserName":     actor.Name,
			"CategoryName": category.Name,
			"LimitAmount":  limit.LimitAmount.StringFixed(2),
			"SpentAmount":  spent.StringFixed(2),
			"Month":        monthStart.Format("January 2006"),
		},
	)

	if err := uc.emailQueue.Enqueue(ctx, job); err != nil {
		slog.WarnContext(ctx, "failed to enqueue limit alert email", "error", err, "user_id", actor.ID)
	}
}
