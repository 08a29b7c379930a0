// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense represents a single recorded expense.
type Expense struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	CategoryID  uuid.UUID
	Date        time.Time
	Description string
	Amount      decimal.Decimal // Always >= 0
	BillPhoto   *string         // Optional receipt photo URL
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// NewExpense creates a new Expense entity.
func NewExpense(
	userID uuid.UUID,
	categoryID uuid.UUID,
	date time.Time,
	description string,
	amount decimal.Decimal,
	billPhoto *string,
) *Expense {
	now := time.Now().UTC()

	return &Expense{
		ID:          uuid.New(),
		UserID:      userID,
		CategoryID:  categoryID,
		Date:        date,
		Description: description,
		Amount:      amount,
		BillPhoto:   billPhoto,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// HasBillPhoto reports whether a receipt photo is attached.
func (e *Expense) HasBillPhoto() bool {
	return e.BillPhoto != nil && *e.BillPhoto != ""
}

// UserSummary is the restricted projection of a user attached to an expense.
type UserSummary struct {
	ID    uuid.UUID
	Name  string
	Email string
}

// ExpenseWithRelations represents an expense with its eager-loaded relations.
type ExpenseWithRelations struct {
	Expense  *Expense
	Category *Category
	User     *UserSummary
}
