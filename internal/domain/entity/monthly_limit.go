// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MonthlyLimit represents a spending limit for a user and category,
// applied per calendar month.
type MonthlyLimit struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	CategoryID    uuid.UUID
	LimitAmount   decimal.Decimal
	AlertOnExceed bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewMonthlyLimit creates a new MonthlyLimit entity.
func NewMonthlyLimit(userID, categoryID uuid.UUID, limitAmount decimal.Decimal, alertOnExceed bool) *MonthlyLimit {
	now := time.Now().UTC()

	return &MonthlyLimit{
		ID:            uuid.New(),
		UserID:        userID,
		CategoryID:    categoryID,
		LimitAmount:   limitAmount,
		AlertOnExceed: alertOnExceed,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// MonthlyLimitWithProgress represents a limit with the spending accumulated
// in the current calendar month.
type MonthlyLimitWithProgress struct {
	Limit    *MonthlyLimit
	Category *Category
	Spent    decimal.Decimal
}
