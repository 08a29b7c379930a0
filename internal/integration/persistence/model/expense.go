package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ExpenseModel represents the expenses table in the database.
type ExpenseModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Date        time.Time       `gorm:"type:date;not null;index"`
	Description string          `gorm:"type:varchar(255);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	BillPhoto   *string         `gorm:"type:text"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
	DeletedAt   gorm.DeletedAt  `gorm:"index"`

	// Relationships (not loaded by default, use Preload)
	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
	User     *UserModel     `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Expense{
		ID:          m.ID,
		UserID:      m.UserID,
		CategoryID:  m.CategoryID,
		Date:        m.Date,
		Description: m.Description,
		Amount:      m.Amount,
		BillPhoto:   m.BillPhoto,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}

// ToEntityWithRelations converts an ExpenseModel with its preloaded
// relations to an ExpenseWithRelations entity.
func (m *ExpenseModel) ToEntityWithRelations() *entity.ExpenseWithRelations {
	result := &entity.ExpenseWithRelations{
		Expense: m.ToEntity(),
	}

	if m.Category != nil {
		result.Category = m.Category.ToEntity()
	}

	if m.User != nil {
		result.User = &entity.UserSummary{
			ID:    m.User.ID,
			Name:  m.User.Name,
			Email: m.User.Email,
		}
	}

	return result
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseFromEntity(expense *entity.Expense) *ExpenseModel {
	var deletedAt gorm.DeletedAt
	if expense.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *expense.DeletedAt, Valid: true}
	}

	// An empty photo URL means no photo; store NULL so the tri-state
	// filter stays a plain null check.
	billPhoto := expense.BillPhoto
	if billPhoto != nil && *billPhoto == "" {
		billPhoto = nil
	}

	return &ExpenseModel{
		ID:          expense.ID,
		UserID:      expense.UserID,
		CategoryID:  expense.CategoryID,
		Date:        expense.Date,
		Description: expense.Description,
		Amount:      expense.Amount,
		BillPhoto:   billPhoto,
		CreatedAt:   expense.CreatedAt,
		UpdatedAt:   expense.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}
