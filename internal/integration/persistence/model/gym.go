// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/gym-manager/backend/internal/domain/entity"
)

// GymModel represents the gyms table in the database.
type GymModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the GymModel.
func (GymModel) TableName() string {
	return "gyms"
}

// ToEntity converts a GymModel to a domain Gym entity.
func (m *GymModel) ToEntity() *entity.Gym {
	return &entity.Gym{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// GymFromEntity creates a GymModel from a domain Gym entity.
func GymFromEntity(gym *entity.Gym) *GymModel {
	return &GymModel{
		ID:        gym.ID,
		Name:      gym.Name,
		CreatedAt: gym.CreatedAt,
		UpdatedAt: gym.UpdatedAt,
	}
}
