package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"medbox-cloud-reminder/config"
	"medbox-cloud-reminder/models"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupTestDB points config.DB at a fresh in-memory database seeded with one
// caregiver, patient and schedule.
func setupTestDB(t *testing.T) (models.Caregiver, models.Patient, models.MedicationSchedule) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Caregiver{},
		&models.Patient{},
		&models.MedicationSchedule{},
	))
	config.DB = db

	caregiver := models.Caregiver{
		Email:    "priya@example.com",
		Name:     "Priya",
		Password: "long-enough-password",
		IsActive: true,
	}
	require.NoError(t, db.Create(&caregiver).Error)

	patient := models.Patient{
		CaregiverID: caregiver.ID,
		Name:        "Aaji",
		Phone:       "9999999999",
		IsActive:    true,
	}
	require.NoError(t, db.Create(&patient).Error)

	schedule := models.MedicationSchedule{
		PatientID: patient.ID,
		Name:      "Vitamin D",
		Dose:      "1 tablet",
		Start:     "2024-01-01",
		Ongoing:   true,
		Frequency: models.FrequencyDaily,
		Times:     models.StringList{"9:00 AM"},
		IsActive:  true,
	}
	require.NoError(t, db.Create(&schedule).Error)

	return caregiver, patient, schedule
}

func putJSON(caregiverID, paramID, body string) (*httptest.ResponseRecorder, *gin.Context) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: paramID}}
	c.Set("caregiverId", caregiverID)
	return w, c
}

func TestUpdateScheduleResponseMatchesPersistedRow(t *testing.T) {
	caregiver, _, schedule := setupTestDB(t)

	w, c := putJSON(caregiver.ID.String(), schedule.ID.String(),
		`{"dose":"2 tablets","frequency":"Weekly","times":["8:30 AM"]}`)
	UpdateSchedule(c)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.MedicationSchedule
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	var persisted models.MedicationSchedule
	require.NoError(t, config.DB.First(&persisted, "id = ?", schedule.ID).Error)

	assert.Equal(t, "2 tablets", persisted.Dose)
	assert.Equal(t, models.FrequencyWeekly, persisted.Frequency)
	assert.Equal(t, models.StringList{"8:30 AM"}, persisted.Times)
	assert.Equal(t, "2024-01-01", persisted.Start, "untouched fields keep their values")

	assert.Equal(t, persisted.Dose, resp.Dose)
	assert.Equal(t, persisted.Frequency, resp.Frequency)
	assert.Equal(t, persisted.Times, resp.Times)
}

func TestUpdateScheduleRejectsUnknownFrequency(t *testing.T) {
	caregiver, _, schedule := setupTestDB(t)

	w, c := putJSON(caregiver.ID.String(), schedule.ID.String(), `{"frequency":"Fortnightly"}`)
	UpdateSchedule(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var persisted models.MedicationSchedule
	require.NoError(t, config.DB.First(&persisted, "id = ?", schedule.ID).Error)
	assert.Equal(t, models.FrequencyDaily, persisted.Frequency)
}
