// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gym-manager/backend/internal/domain/entity"
)

// MemberModel represents the members table in the database. The branch
// assignment is nullable in SQL; the domain layer sees uuid.Nil instead.
type MemberModel struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primaryKey"`
	GymID               uuid.UUID      `gorm:"type:uuid;not null;index"`
	BranchID            *uuid.UUID     `gorm:"type:uuid;index"`
	PlanID              *uuid.UUID     `gorm:"type:uuid;index"`
	Name                string         `gorm:"type:varchar(255);not null"`
	Email               string         `gorm:"type:varchar(255);index"`
	Phone               string         `gorm:"type:varchar(50)"`
	MembershipStartDate *time.Time     `gorm:"type:timestamptz"`
	MembershipEndDate   *time.Time     `gorm:"type:timestamptz;index"`
	CreatedAt           time.Time      `gorm:"not null"`
	UpdatedAt           time.Time      `gorm:"not null"`
	DeletedAt           gorm.DeletedAt `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the MemberModel.
func (MemberModel) TableName() string {
	return "members"
}

// ToEntity converts a MemberModel to a domain Member entity.
func (m *MemberModel) ToEntity() *entity.Member {
	branchID := uuid.Nil
	if m.BranchID != nil {
		branchID = *m.BranchID
	}

	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Member{
		ID:                  m.ID,
		GymID:               m.GymID,
		BranchID:            branchID,
		PlanID:              m.PlanID,
		Name:                m.Name,
		Email:               m.Email,
		Phone:               m.Phone,
		MembershipStartDate: m.MembershipStartDate,
		MembershipEndDate:   m.MembershipEndDate,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
		DeletedAt:           deletedAt,
	}
}

// MemberFromEntity creates a MemberModel from a domain Member entity.
func MemberFromEntity(member *entity.Member) *MemberModel {
	var branchID *uuid.UUID
	if member.BranchID != uuid.Nil {
		id := member.BranchID
		branchID = &id
	}

	var deletedAt gorm.DeletedAt
	if member.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *member.DeletedAt, Valid: true}
	}

	return &MemberModel{
		ID:                  member.ID,
		GymID:               member.GymID,
		BranchID:            branchID,
		PlanID:              member.PlanID,
		Name:                member.Name,
		Email:               member.Email,
		Phone:               member.Phone,
		MembershipStartDate: member.MembershipStartDate,
		MembershipEndDate:   member.MembershipEndDate,
		CreatedAt:           member.CreatedAt,
		UpdatedAt:           member.UpdatedAt,
		DeletedAt:           deletedAt,
	}
}
