// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gym-manager/backend/internal/domain/entity"
)

// BranchModel represents the branches table in the database.
type BranchModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	GymID       uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name        string         `gorm:"type:varchar(255);not null"`
	Address     string         `gorm:"type:varchar(500)"`
	Phone       string         `gorm:"type:varchar(50)"`
	ManagerName string         `gorm:"type:varchar(255)"`
	Status      string         `gorm:"type:varchar(20);not null;default:'active';index"`
	CreatedAt   time.Time      `gorm:"not null"`
	UpdatedAt   time.Time      `gorm:"not null"`
	DeletedAt   gorm.DeletedAt `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the BranchModel.
func (BranchModel) TableName() string {
	return "branches"
}

// ToEntity converts a BranchModel to a domain Branch entity.
func (m *BranchModel) ToEntity() *entity.Branch {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Branch{
		ID:          m.ID,
		GymID:       m.GymID,
		Name:        m.Name,
		Address:     m.Address,
		Phone:       m.Phone,
		ManagerName: m.ManagerName,
		Status:      entity.BranchStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}

// BranchFromEntity creates a BranchModel from a domain Branch entity.
func BranchFromEntity(branch *entity.Branch) *BranchModel {
	var deletedAt gorm.DeletedAt
	if branch.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *branch.DeletedAt, Valid: true}
	}

	return &BranchModel{
		ID:          branch.ID,
		GymID:       branch.GymID,
		Name:        branch.Name,
		Address:     branch.Address,
		Phone:       branch.Phone,
		ManagerName: branch.ManagerName,
		Status:      string(branch.Status),
		CreatedAt:   branch.CreatedAt,
		UpdatedAt:   branch.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}
