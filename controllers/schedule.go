// controllers/schedule.go
package controllers

import (
	"errors"
	"net/http"

	"medbox-cloud-reminder/config"
	"medbox-cloud-reminder/models"
	"medbox-cloud-reminder/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateScheduleInput defines the expected JSON structure
type CreateScheduleInput struct {
	Name      string   `json:"name" binding:"required"`
	Dose      string   `json:"dose" binding:"required"`
	Start     string   `json:"start" binding:"required"`
	End       string   `json:"end"`
	Ongoing   bool     `json:"ongoing"`
	Frequency string   `json:"frequency"`
	Times     []string `json:"times" binding:"required,min=1"`
}

// UpdateScheduleInput defines the expected JSON structure
type UpdateScheduleInput struct {
	Name      *string   `json:"name"`
	Dose      *string   `json:"dose"`
	Start     *string   `json:"start"`
	End       *string   `json:"end"`
	Ongoing   *bool     `json:"ongoing"`
	Frequency *string   `json:"frequency"`
	Times     *[]string `json:"times"`
	IsActive  *bool     `json:"isActive"`
}

func validateScheduleFields(c *gin.Context, start, end, frequency string, times []string) bool {
	if _, err := utils.ParseDate(start); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Start must be a YYYY-MM-DD date")
		return false
	}
	if end != "" {
		if _, err := utils.ParseDate(end); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "End must be a YYYY-MM-DD date")
			return false
		}
	}
	if frequency != "" && !utils.ValidateFrequency(frequency) {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown frequency: "+frequency)
		return false
	}
	for _, t := range times {
		if _, err := utils.ParseClockTime(t); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Times must look like \"8:30 AM\", got: "+t)
			return false
		}
	}
	return true
}

// ownedPatient loads a patient by path param and checks caregiver ownership
func ownedPatient(c *gin.Context, param string) (*models.Patient, bool) {
	cgID, ok := caregiverUUID(c)
	if !ok {
		return nil, false
	}

	patientUUID, err := uuid.Parse(c.Param(param))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid patient ID format")
		return nil, false
	}

	var patient models.Patient
	if err := config.DB.Where("caregiver_id = ? AND id = ?", cgID, patientUUID).
		First(&patient).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Patient not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return nil, false
	}
	return &patient, true
}

// CreateSchedule creates a new medication schedule for a patient
func CreateSchedule(c *gin.Context) {
	patient, ok := ownedPatient(c, "id")
	if !ok {
		return
	}

	var input CreateScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !validateScheduleFields(c, input.Start, input.End, input.Frequency, input.Times) {
		return
	}

	frequency := input.Frequency
	if frequency == "" {
		frequency = models.FrequencyDaily
	}

	schedule := models.MedicationSchedule{
		ID:        uuid.New(),
		PatientID: patient.ID,
		Name:      input.Name,
		Dose:      input.Dose,
		Start:     input.Start,
		End:       input.End,
		Ongoing:   input.Ongoing,
		Frequency: frequency,
		Times:     models.StringList(input.Times),
		IsActive:  true,
	}

	if err := config.DB.Create(&schedule).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create schedule")
		return
	}

	c.JSON(http.StatusCreated, schedule)
}

// GetSchedules retrieves all schedules for a patient
func GetSchedules(c *gin.Context) {
	patient, ok := ownedPatient(c, "id")
	if !ok {
		return
	}

	var schedules []models.MedicationSchedule
	if err := config.DB.Where("patient_id = ?", patient.ID).Find(&schedules).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve schedules")
		return
	}

	c.JSON(http.StatusOK, schedules)
}

// ownedSchedule loads a schedule by ID and checks it belongs to one of the
// caregiver's patients
func ownedSchedule(c *gin.Context) (*models.MedicationSchedule, bool) {
	cgID, ok := caregiverUUID(c)
	if !ok {
		return nil, false
	}

	scheduleUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid schedule ID format")
		return nil, false
	}

	var schedule models.MedicationSchedule
	err = config.DB.
		Joins("JOIN patients ON patients.id = medication_schedules.patient_id").
		Where("medication_schedules.id = ? AND patients.caregiver_id = ?", scheduleUUID, cgID).
		First(&schedule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Schedule not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return nil, false
	}
	return &schedule, true
}

// GetSchedule retrieves a specific schedule by ID
func GetSchedule(c *gin.Context) {
	schedule, ok := ownedSchedule(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, schedule)
}

// UpdateSchedule updates a schedule's fields
func UpdateSchedule(c *gin.Context) {
	schedule, ok := ownedSchedule(c)
	if !ok {
		return
	}

	var input UpdateScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	start := schedule.Start
	if input.Start != nil {
		start = *input.Start
	}
	end := schedule.End
	if input.End != nil {
		end = *input.End
	}
	frequency := schedule.Frequency
	if input.Frequency != nil {
		frequency = *input.Frequency
	}
	times := []string(schedule.Times)
	if input.Times != nil {
		times = *input.Times
	}

	if !validateScheduleFields(c, start, end, frequency, times) {
		return
	}

	schedule.Start = start
	schedule.End = end
	schedule.Frequency = frequency
	schedule.Times = models.StringList(times)
	if input.Name != nil {
		schedule.Name = *input.Name
	}
	if input.Dose != nil {
		schedule.Dose = *input.Dose
	}
	if input.Ongoing != nil {
		schedule.Ongoing = *input.Ongoing
	}
	if input.IsActive != nil {
		schedule.IsActive = *input.IsActive
	}

	if err := config.DB.Save(schedule).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update schedule")
		return
	}

	c.JSON(http.StatusOK, schedule)
}

// DeleteSchedule removes a schedule
func DeleteSchedule(c *gin.Context) {
	schedule, ok := ownedSchedule(c)
	if !ok {
		return
	}

	if err := config.DB.Delete(schedule).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete schedule")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Schedule deleted"})
}
