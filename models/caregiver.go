package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"medbox-cloud-reminder/utils"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Caregiver struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	Email    string    `gorm:"uniqueIndex;not null"`
	Password string    `gorm:"not null"`
	Name     string    `gorm:"not null"`
	Phone    string

	Patients []Patient `gorm:"foreignKey:CaregiverID"`

	LastLogin *time.Time
	IsActive  bool `gorm:"default:true"`

	gorm.Model
}

// Initialize UUID and hash the password before creating
func (cg *Caregiver) BeforeCreate(tx *gorm.DB) (err error) {
	cg.ID = uuid.New()
	hashed, err := utils.HashPassword(cg.Password)
	if err != nil {
		return err
	}
	cg.Password = hashed
	return
}

// StringList is stored as a JSON array in a single column
type StringList []string

func (s StringList) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *StringList) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	}
	return errors.New("type assertion to []byte failed")
}
