package responses

type Diagnosis struct {
	ID            string `json:"id"`
	PatientID     string `json:"patientId"`
	DoctorID      string `json:"doctorId"`
	AppointmentID string `json:"appointmentId,omitempty"`
	Code          string `json:"code"`
	Description   string `json:"description"`
	Prescription  string `json:"prescription,omitempty"`
	Notes         string `json:"notes,omitempty"`
}
