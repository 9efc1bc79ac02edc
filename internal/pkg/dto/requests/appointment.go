package requests

// CreateAppointment accepts either explicit startTime/endTime or the legacy
// single appointmentTime field, which implies a 30-minute duration.
type CreateAppointment struct {
	PatientID       string `json:"patientId"`
	DoctorID        string `json:"doctorId"`
	Department      string `json:"department"`
	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	Symptoms        string `json:"symptoms"`
	Notes           string `json:"notes"`
}

type UpdateAppointmentStatus struct {
	Status string `json:"status" validate:"required"`
	Notes  string `json:"notes"`
}
