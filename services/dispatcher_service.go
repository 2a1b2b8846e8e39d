// services/dispatcher_service.go
package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"medbox-cloud-reminder/models"
)

// DispatcherService polls the directory once per interval and sends a
// reminder for every schedule whose recurrence rule and time-of-day match
// the current minute. It holds no state between ticks.
type DispatcherService struct {
	directory Directory
	notifier  Notifier
	interval  time.Duration
}

func NewDispatcherService(directory Directory, notifier Notifier) *DispatcherService {
	interval := 60 * time.Second
	if env := os.Getenv("DISPATCH_INTERVAL_SECONDS"); env != "" {
		if secs, err := strconv.Atoi(env); err == nil && secs > 0 {
			interval = time.Duration(secs) * time.Second
		}
	}
	return &DispatcherService{
		directory: directory,
		notifier:  notifier,
		interval:  interval,
	}
}

// Run loops until ctx is canceled. The delay is fixed: the sleep starts
// after a tick finishes, so a slow tick drifts rather than piles up.
func (s *DispatcherService) Run(ctx context.Context) {
	log.Println("☁️ Reminder dispatcher started")

	for {
		s.tick(time.Now())

		select {
		case <-ctx.Done():
			log.Println("Reminder dispatcher stopping")
			return
		case <-time.After(s.interval):
		}
	}
}

// tick evaluates the whole directory against a single timestamp. Nothing a
// tick encounters is allowed to crash the loop.
func (s *DispatcherService) tick(now time.Time) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Dispatch tick panic: %v", r)
		}
	}()

	snapshot, err := s.directory.GetAllPatients()
	if err != nil {
		log.Printf("Failed to fetch directory: %v", err)
		return
	}

	for phone, patient := range snapshot {
		for scheduleID, sch := range patient.Schedules {
			s.processSchedule(now, phone, scheduleID, sch)
		}
	}
}

func (s *DispatcherService) processSchedule(now time.Time, phone, scheduleID string, sch models.MedicationSchedule) {
	due, err := FiresOn(sch, now)
	if err != nil {
		log.Printf("Schedule %s: skipped this tick: %v", scheduleID, err)
		return
	}
	if !due {
		return
	}

	for range MatchTimes(sch.Times, now) {
		msg := fmt.Sprintf("💊 Reminder: Take %s (%s)", sch.Name, sch.Dose)
		if err := s.notifier.Send("+91"+phone, msg); err != nil {
			log.Printf("Failed to send reminder to %s: %v", phone, err)
			continue
		}
		log.Printf("Reminder sent to %s (schedule %s)", phone, scheduleID)
	}
}
