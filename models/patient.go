package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Patient struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	CaregiverID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name string `gorm:"not null"`
	// Local 10-digit number, no country code; the dispatcher prefixes +91
	Phone    string `gorm:"not null;uniqueIndex"`
	Notes    string
	IsActive bool `gorm:"default:true"`

	Schedules []MedicationSchedule `gorm:"foreignKey:PatientID"`

	gorm.Model
}

func (p *Patient) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
