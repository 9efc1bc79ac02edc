package utils

import (
	"hospital-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeRegisterRequest(request *requests.Register) {
	request.Name = strings.TrimSpace(request.Name)
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
	request.Username = strings.ToLower(strings.TrimSpace(request.Username))
	request.Role = strings.ToLower(strings.TrimSpace(request.Role))
}

func SanitizeLoginRequest(request *requests.Login) {
	request.Username = strings.ToLower(strings.TrimSpace(request.Username))
}

func SanitizeCreateAppointmentRequest(request *requests.CreateAppointment) {
	request.PatientID = strings.TrimSpace(request.PatientID)
	request.DoctorID = strings.TrimSpace(request.DoctorID)
	request.Department = strings.TrimSpace(request.Department)
	request.AppointmentDate = strings.TrimSpace(request.AppointmentDate)
	request.AppointmentTime = strings.TrimSpace(request.AppointmentTime)
	request.StartTime = strings.TrimSpace(request.StartTime)
	request.EndTime = strings.TrimSpace(request.EndTime)
	request.Symptoms = strings.TrimSpace(request.Symptoms)
	request.Notes = strings.TrimSpace(request.Notes)
}

func SanitizeCreateDepartmentRequest(request *requests.CreateDepartment) {
	request.Name = strings.TrimSpace(request.Name)
	request.Description = strings.TrimSpace(request.Description)
}
