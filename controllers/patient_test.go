package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"medbox-cloud-reminder/config"
	"medbox-cloud-reminder/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdatePatientResponseMatchesPersistedRow(t *testing.T) {
	caregiver, patient, _ := setupTestDB(t)

	w, c := putJSON(caregiver.ID.String(), patient.ID.String(),
		`{"name":"Ajoba","notes":"prefers evening calls"}`)
	UpdatePatient(c)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.Patient
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	var persisted models.Patient
	require.NoError(t, config.DB.First(&persisted, "id = ?", patient.ID).Error)

	assert.Equal(t, "Ajoba", persisted.Name)
	assert.Equal(t, "prefers evening calls", persisted.Notes)
	assert.Equal(t, "9999999999", persisted.Phone, "untouched fields keep their values")

	assert.Equal(t, persisted.Name, resp.Name)
	assert.Equal(t, persisted.Notes, resp.Notes)
}

func TestUpdatePatientRejectsBadPhone(t *testing.T) {
	caregiver, patient, _ := setupTestDB(t)

	w, c := putJSON(caregiver.ID.String(), patient.ID.String(), `{"phone":"12345"}`)
	UpdatePatient(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var persisted models.Patient
	require.NoError(t, config.DB.First(&persisted, "id = ?", patient.ID).Error)
	assert.Equal(t, "9999999999", persisted.Phone)
}
