// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/gym-manager/backend/internal/domain/entity"
)

// EnquiryModel represents the enquiries table in the database.
type EnquiryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	GymID     uuid.UUID `gorm:"type:uuid;not null;index"`
	BranchID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Phone     string    `gorm:"type:varchar(50)"`
	Message   string    `gorm:"type:text"`
	Status    string    `gorm:"type:varchar(20);not null;default:'open';index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the EnquiryModel.
func (EnquiryModel) TableName() string {
	return "enquiries"
}

// ToEntity converts an EnquiryModel to a domain Enquiry entity.
func (m *EnquiryModel) ToEntity() *entity.Enquiry {
	return &entity.Enquiry{
		ID:        m.ID,
		GymID:     m.GymID,
		BranchID:  m.BranchID,
		Name:      m.Name,
		Phone:     m.Phone,
		Message:   m.Message,
		Status:    entity.EnquiryStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// EnquiryFromEntity creates an EnquiryModel from a domain Enquiry entity.
func EnquiryFromEntity(enquiry *entity.Enquiry) *EnquiryModel {
	return &EnquiryModel{
		ID:        enquiry.ID,
		GymID:     enquiry.GymID,
		BranchID:  enquiry.BranchID,
		Name:      enquiry.Name,
		Phone:     enquiry.Phone,
		Message:   enquiry.Message,
		Status:    string(enquiry.Status),
		CreatedAt: enquiry.CreatedAt,
		UpdatedAt: enquiry.UpdatedAt,
	}
}
