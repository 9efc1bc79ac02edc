package requests

type CreateAssignment struct {
	DoctorID  string `json:"doctorId" validate:"required"`
	PatientID string `json:"patientId" validate:"required"`
	Notes     string `json:"notes"`
}
