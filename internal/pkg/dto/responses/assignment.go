package responses

type Assignment struct {
	ID          string `json:"id"`
	DoctorID    string `json:"doctorId"`
	DoctorName  string `json:"doctorName,omitempty"`
	PatientID   string `json:"patientId"`
	PatientName string `json:"patientName,omitempty"`
	AssignedBy  string `json:"assignedBy"`
	Notes       string `json:"notes,omitempty"`
	Active      bool   `json:"active"`
}
