// services/directory_service.go
package services

import (
	"medbox-cloud-reminder/models"

	"gorm.io/gorm"
)

// PatientEntry is one patient's slice of the directory snapshot, with
// schedules keyed by schedule ID.
type PatientEntry struct {
	Name      string
	Schedules map[string]models.MedicationSchedule
}

// DirectorySnapshot maps a local phone number to the patient's entry. It is
// rebuilt from scratch on every dispatch tick; the dispatcher never caches
// or mutates it.
type DirectorySnapshot map[string]PatientEntry

// Directory supplies the full set of patients and their schedules.
type Directory interface {
	GetAllPatients() (DirectorySnapshot, error)
}

type DirectoryService struct {
	db *gorm.DB
}

func NewDirectoryService(db *gorm.DB) *DirectoryService {
	return &DirectoryService{db: db}
}

// GetAllPatients loads every active patient with their active schedules.
func (s *DirectoryService) GetAllPatients() (DirectorySnapshot, error) {
	var patients []models.Patient
	if err := s.db.Preload("Schedules", "is_active = ?", true).
		Find(&patients, "is_active = ?", true).Error; err != nil {
		return nil, err
	}

	snapshot := make(DirectorySnapshot, len(patients))
	for _, p := range patients {
		entry := PatientEntry{
			Name:      p.Name,
			Schedules: make(map[string]models.MedicationSchedule, len(p.Schedules)),
		}
		for _, sch := range p.Schedules {
			entry.Schedules[sch.ID.String()] = sch
		}
		snapshot[p.Phone] = entry
	}
	return snapshot, nil
}
