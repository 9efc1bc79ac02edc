package models

type Assignment struct {
	ID         string `bson:"_id,omitempty"`
	DoctorID   string `bson:"doctorId"`
	PatientID  string `bson:"patientId"`
	AssignedBy string `bson:"assignedBy"`
	Notes      string `bson:"notes,omitempty"`
	Active     bool   `bson:"active"`
	TimeModel  `bson:",inline"`
}
