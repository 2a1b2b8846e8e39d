// services/maintenance_service.go
package services

import (
	"log"
	"time"

	"medbox-cloud-reminder/models"
	"medbox-cloud-reminder/utils"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// MaintenanceService runs the store-owner housekeeping the dispatcher itself
// never does: it mutates schedule records, the dispatch core only reads them.
type MaintenanceService struct {
	db *gorm.DB
}

func NewMaintenanceService(db *gorm.DB) *MaintenanceService {
	return &MaintenanceService{db: db}
}

func (s *MaintenanceService) StartScheduler() {
	c := cron.New()

	// Nightly at 00:30
	c.AddFunc("30 0 * * *", s.SweepExpiredSchedules)

	c.Start()
	log.Println("Maintenance scheduler started")
}

// scheduleExpired reports whether the schedule's window closed before today.
// Ongoing schedules and schedules without an end date never expire; the end
// date itself is still an eligible day. A malformed end date is left for the
// dispatcher to report, not silently deactivated here.
func scheduleExpired(sch models.MedicationSchedule, today time.Time) bool {
	if sch.Ongoing || sch.End == "" {
		return false
	}
	end, err := utils.ParseDate(sch.End)
	if err != nil {
		return false
	}
	return dateOnly(today).After(dateOnly(end))
}

// SweepExpiredSchedules deactivates non-ongoing schedules whose end date has
// passed, so expired records stop showing up in directory snapshots.
func (s *MaintenanceService) SweepExpiredSchedules() {
	today := time.Now()

	var schedules []models.MedicationSchedule
	if err := s.db.Find(&schedules, "is_active = ? AND ongoing = ?", true, false).Error; err != nil {
		log.Printf("Failed to load schedules for sweep: %v", err)
		return
	}

	deactivated := 0
	for _, sch := range schedules {
		if !scheduleExpired(sch, today) {
			continue
		}
		if err := s.db.Model(&sch).Update("is_active", false).Error; err != nil {
			log.Printf("Failed to deactivate schedule %s: %v", sch.ID, err)
			continue
		}
		deactivated++
	}

	if deactivated > 0 {
		log.Printf("Deactivated %d expired schedules", deactivated)
	}
}
