package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// MonthlyLimitModel represents the monthly_limits table in the database.
// A user has at most one limit per category.
type MonthlyLimitModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_limit_user_category"`
	CategoryID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_limit_user_category"`
	LimitAmount   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	AlertOnExceed bool            `gorm:"default:true"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`

	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName returns the table name for the MonthlyLimitModel.
func (MonthlyLimitModel) TableName() string {
	return "monthly_limits"
}

// ToEntity converts a MonthlyLimitModel to a domain MonthlyLimit entity.
func (m *MonthlyLimitModel) ToEntity() *entity.MonthlyLimit {
	return &entity.MonthlyLimit{
		ID:            m.ID,
		UserID:        m.UserID,
		CategoryID:    m.CategoryID,
		LimitAmount:   m.LimitAmount,
		AlertOnExceed: m.AlertOnExceed,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// MonthlyLimitFromEntity creates a MonthlyLimitModel from a domain MonthlyLimit entity.
func MonthlyLimitFromEntity(limit *entity.MonthlyLimit) *MonthlyLimitModel {
	return &MonthlyLimitModel{
		ID:            limit.ID,
		UserID:        limit.UserID,
		CategoryID:    limit.CategoryID,
		LimitAmount:   limit.LimitAmount,
		AlertOnExceed: limit.AlertOnExceed,
		CreatedAt:     limit.CreatedAt,
		UpdatedAt:     limit.UpdatedAt,
	}
}
