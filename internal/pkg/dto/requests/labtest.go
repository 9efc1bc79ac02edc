package requests

type CreateLabTest struct {
	PatientID     string `json:"patientId" validate:"required"`
	AppointmentID string `json:"appointmentId"`
	TestType      string `json:"testType" validate:"required,max=100"`
	Notes         string `json:"notes" validate:"max=2000"`
}

// RecordLabTestResult carries the textual result and an optional base64
// encoded report file persisted to object storage.
type RecordLabTestResult struct {
	Result         string `json:"result" validate:"required,max=5000"`
	ReportFile     string `json:"reportFile"`
	ReportFileName string `json:"reportFileName"`
}
