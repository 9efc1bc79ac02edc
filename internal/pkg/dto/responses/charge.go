package responses

import "time"

type ChargeItem struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

type Charge struct {
	ID            string       `json:"id"`
	PatientID     string       `json:"patientId"`
	AppointmentID string       `json:"appointmentId,omitempty"`
	Items         []ChargeItem `json:"items"`
	Total         float64      `json:"total"`
	Status        string       `json:"status"`
	ReceiptNumber string       `json:"receiptNumber,omitempty"`
	PaidAt        *time.Time   `json:"paidAt,omitempty"`
}
