// models/schedule.go
package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Recurrence frequency values accepted on a schedule. Anything else is kept
// as-is in the database but never fires.
const (
	FrequencyDaily     = "Daily"
	FrequencyWeekly    = "Weekly"
	FrequencyMonthly   = "Monthly"
	FrequencyAlternate = "Alternate Days"
)

type MedicationSchedule struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	PatientID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name string `gorm:"not null"` // medication name, e.g. "Vitamin D"
	Dose string `gorm:"not null"` // display string, e.g. "1 tablet"

	Start     string `gorm:"type:varchar(10);not null"`        // YYYY-MM-DD
	End       string `gorm:"column:end_date;type:varchar(10)"` // YYYY-MM-DD, ignored when Ongoing
	Ongoing   bool   `gorm:"default:false"`
	Frequency string `gorm:"type:varchar(20);default:'Daily'"`

	// Times of day in 12-hour "H:MM AM" format
	Times StringList `gorm:"type:jsonb"`

	IsActive bool `gorm:"default:true"`

	gorm.Model
}

func (m *MedicationSchedule) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return
}
