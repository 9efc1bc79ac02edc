package requests

type CreateDiagnosis struct {
	PatientID     string `json:"patientId" validate:"required"`
	AppointmentID string `json:"appointmentId"`
	Code          string `json:"code" validate:"required,max=20"`
	Description   string `json:"description" validate:"required,max=2000"`
	Prescription  string `json:"prescription" validate:"max=2000"`
	Notes         string `json:"notes" validate:"max=2000"`
}

type UpdateDiagnosis struct {
	Code         string `json:"code" validate:"omitempty,max=20"`
	Description  string `json:"description" validate:"omitempty,max=2000"`
	Prescription string `json:"prescription" validate:"omitempty,max=2000"`
	Notes        string `json:"notes" validate:"omitempty,max=2000"`
}
