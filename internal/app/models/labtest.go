package models

type LabTest struct {
	ID               string `bson:"_id,omitempty"`
	PatientID        string `bson:"patientId"`
	OrderedBy        string `bson:"orderedBy"`
	AppointmentID    string `bson:"appointmentId,omitempty"`
	TestType         string `bson:"testType"`
	Status           string `bson:"status"`
	Result           string `bson:"result,omitempty"`
	ResultObjectName string `bson:"resultObjectName,omitempty"`
	Notes            string `bson:"notes,omitempty"`
	TimeModel        `bson:",inline"`
}
