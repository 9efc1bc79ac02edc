package requests

type ChargeItem struct {
	Description string  `json:"description" validate:"required,max=200"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
}

type CreateCharge struct {
	PatientID     string       `json:"patientId" validate:"required"`
	AppointmentID string       `json:"appointmentId"`
	Items         []ChargeItem `json:"items" validate:"required,min=1,dive"`
}
