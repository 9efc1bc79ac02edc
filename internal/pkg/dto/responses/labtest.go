package responses

type LabTest struct {
	ID            string `json:"id"`
	PatientID     string `json:"patientId"`
	OrderedBy     string `json:"orderedBy"`
	AppointmentID string `json:"appointmentId,omitempty"`
	TestType      string `json:"testType"`
	Status        string `json:"status"`
	Result        string `json:"result,omitempty"`
	HasReport     bool   `json:"hasReport"`
	Notes         string `json:"notes,omitempty"`
}

type LabTestReport struct {
	DownloadURL string `json:"downloadUrl"`
	ExpiresIn   string `json:"expiresIn"`
}
