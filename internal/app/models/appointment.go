package models

import "time"

// Appointment stores both the legacy single appointmentTime field and the
// explicit startTime/endTime pair. Legacy records may lack endTime; readers
// treat those as startTime + 30 minutes.
type Appointment struct {
	ID              string    `bson:"_id,omitempty"`
	PatientID       string    `bson:"patientId"`
	DoctorID        string    `bson:"doctorId"`
	DepartmentID    string    `bson:"departmentId,omitempty"`
	AppointmentDate string    `bson:"appointmentDate"`
	AppointmentTime string    `bson:"appointmentTime"`
	StartTime       string    `bson:"startTime"`
	EndTime         string    `bson:"endTime,omitempty"`
	DateTime        time.Time `bson:"dateTime"`
	Symptoms        string    `bson:"symptoms,omitempty"`
	Notes           string    `bson:"notes,omitempty"`
	Status          string    `bson:"status"`
	TimeModel       `bson:",inline"`
}
