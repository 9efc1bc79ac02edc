package utils

import (
	"hospital-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeRegisterRequest(t *testing.T) {
	request := &requests.Register{
		Name:     "  Jane Doe  ",
		Email:    " Jane.Doe@Example.COM ",
		Username: " JaneD ",
		Role:     " Patient ",
	}

	SanitizeRegisterRequest(request)

	assert.Equal(t, "Jane Doe", request.Name)
	assert.Equal(t, "jane.doe@example.com", request.Email)
	assert.Equal(t, "janed", request.Username)
	assert.Equal(t, "patient", request.Role)
}

func TestSanitizeLoginRequest(t *testing.T) {
	request := &requests.Login{Username: "  JaneD  ", Password: "  secret  "}

	SanitizeLoginRequest(request)

	assert.Equal(t, "janed", request.Username)
	// Passwords are never trimmed, whitespace may be intentional.
	assert.Equal(t, "  secret  ", request.Password)
}

func TestSanitizeCreateAppointmentRequest(t *testing.T) {
	request := &requests.CreateAppointment{
		PatientID:       " 64f1b2c3d4e5f6a7b8c9d0e1 ",
		DoctorID:        " 64f1b2c3d4e5f6a7b8c9d0e2 ",
		AppointmentDate: " 2026-09-07 ",
		StartTime:       " 09:30 ",
		EndTime:         " 10:00 ",
		Symptoms:        "  persistent cough  ",
	}

	SanitizeCreateAppointmentRequest(request)

	assert.Equal(t, "64f1b2c3d4e5f6a7b8c9d0e1", request.PatientID)
	assert.Equal(t, "64f1b2c3d4e5f6a7b8c9d0e2", request.DoctorID)
	assert.Equal(t, "2026-09-07", request.AppointmentDate)
	assert.Equal(t, "09:30", request.StartTime)
	assert.Equal(t, "10:00", request.EndTime)
	assert.Equal(t, "persistent cough", request.Symptoms)
}

func TestSanitizeCreateDepartmentRequest(t *testing.T) {
	request := &requests.CreateDepartment{
		Name:        "  Cardiology  ",
		Description: "  Heart and vascular care  ",
	}

	SanitizeCreateDepartmentRequest(request)

	assert.Equal(t, "Cardiology", request.Name)
	assert.Equal(t, "Heart and vascular care", request.Description)
}
