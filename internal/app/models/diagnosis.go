package models

type Diagnosis struct {
	ID            string `bson:"_id,omitempty"`
	PatientID     string `bson:"patientId"`
	DoctorID      string `bson:"doctorId"`
	AppointmentID string `bson:"appointmentId,omitempty"`
	Code          string `bson:"code"`
	Description   string `bson:"description"`
	Prescription  string `bson:"prescription,omitempty"`
	Notes         string `bson:"notes,omitempty"`
	TimeModel     `bson:",inline"`
}
