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

// CreatePatientInput defines the expected JSON structure for creating a patient
type CreatePatientInput struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	Notes string `json:"notes"`
}

// UpdatePatientInput defines the expected JSON structure for updating a patient
type UpdatePatientInput struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Notes    *string `json:"notes"`
	IsActive *bool   `json:"isActive"`
}

func caregiverUUID(c *gin.Context) (uuid.UUID, bool) {
	caregiverID, exists := c.Get("caregiverId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Caregiver ID not found in context")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(caregiverID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid caregiver ID format")
		return uuid.Nil, false
	}
	return id, true
}

// CreatePatient creates a new patient for the caregiver
func CreatePatient(c *gin.Context) {
	cgID, ok := caregiverUUID(c)
	if !ok {
		return
	}

	var input CreatePatientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Validate phone format (10-digit local number, no country code)
	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	// Check if phone already exists
	var existing models.Patient
	if err := config.DB.Where("phone = ?", input.Phone).
		First(&existing).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Patient with this phone number already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	patient := models.Patient{
		ID:          uuid.New(),
		CaregiverID: cgID,
		Name:        input.Name,
		Phone:       input.Phone,
		Notes:       input.Notes,
		IsActive:    true,
	}

	if err := config.DB.Create(&patient).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create patient")
		return
	}

	c.JSON(http.StatusCreated, patient)
}

// GetPatients retrieves all patients for the caregiver
func GetPatients(c *gin.Context) {
	cgID, ok := caregiverUUID(c)
	if !ok {
		return
	}

	var patients []models.Patient
	if err := config.DB.Where("caregiver_id = ?", cgID).Find(&patients).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve patients")
		return
	}

	c.JSON(http.StatusOK, patients)
}

// GetPatient retrieves a specific patient by ID, with schedules
func GetPatient(c *gin.Context) {
	cgID, ok := caregiverUUID(c)
	if !ok {
		return
	}

	patientUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid patient ID format")
		return
	}

	var patient models.Patient
	if err := config.DB.Preload("Schedules").
		Where("caregiver_id = ? AND id = ?", cgID, patientUUID).
		First(&patient).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Patient not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, patient)
}

// UpdatePatient updates a patient's details
func UpdatePatient(c *gin.Context) {
	cgID, ok := caregiverUUID(c)
	if !ok {
		return
	}

	patientUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid patient ID format")
		return
	}

	var input UpdatePatientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var patient models.Patient
	if err := config.DB.Where("caregiver_id = ? AND id = ?", cgID, patientUUID).
		First(&patient).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Patient not found")
		return
	}

	if input.Name != nil {
		patient.Name = *input.Name
	}
	if input.Phone != nil {
		if !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		patient.Phone = *input.Phone
	}
	if input.Notes != nil {
		patient.Notes = *input.Notes
	}
	if input.IsActive != nil {
		patient.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&patient).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update patient")
		return
	}

	c.JSON(http.StatusOK, patient)
}

// DeletePatient soft-deletes a patient and their schedules
func DeletePatient(c *gin.Context) {
	cgID, ok := caregiverUUID(c)
	if !ok {
		return
	}

	patientUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid patient ID format")
		return
	}

	var patient models.Patient
	if err := config.DB.Where("caregiver_id = ? AND id = ?", cgID, patientUUID).
		First(&patient).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Patient not found")
		return
	}

	if err := config.DB.Where("patient_id = ?", patient.ID).
		Delete(&models.MedicationSchedule{}).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete schedules")
		return
	}
	if err := config.DB.Delete(&patient).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete patient")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Patient deleted"})
}
