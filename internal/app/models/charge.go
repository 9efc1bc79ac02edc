package models

import "time"

type ChargeItem struct {
	Description string  `bson:"description"`
	Amount      float64 `bson:"amount"`
}

type Charge struct {
	ID            string       `bson:"_id,omitempty"`
	PatientID     string       `bson:"patientId"`
	AppointmentID string       `bson:"appointmentId,omitempty"`
	Items         []ChargeItem `bson:"items"`
	Total         float64      `bson:"total"`
	Status        string       `bson:"status"`
	ReceiptNumber string       `bson:"receiptNumber,omitempty"`
	PaidAt        *time.Time   `bson:"paidAt,omitempty"`
	TimeModel     `bson:",inline"`
}
