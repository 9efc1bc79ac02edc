package responses

import "time"

type Appointment struct {
	ID              string    `json:"id"`
	PatientID       string    `json:"patientId"`
	PatientName     string    `json:"patientName,omitempty"`
	DoctorID        string    `json:"doctorId"`
	DoctorName      string    `json:"doctorName,omitempty"`
	DepartmentID    string    `json:"departmentId,omitempty"`
	AppointmentDate string    `json:"appointmentDate"`
	AppointmentTime string    `json:"appointmentTime"`
	StartTime       string    `json:"startTime"`
	EndTime         string    `json:"endTime"`
	DateTime        time.Time `json:"dateTime"`
	Symptoms        string    `json:"symptoms,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	Status          string    `json:"status"`
}

type TimeSlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type WorkingHours struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type AvailableSlots struct {
	Available    bool          `json:"available"`
	Reason       string        `json:"reason,omitempty"`
	WorkingHours *WorkingHours `json:"workingHours,omitempty"`
	TimeSlots    []TimeSlot    `json:"timeSlots"`
}

type AvailableDoctor struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	DepartmentID string `json:"departmentId,omitempty"`
}
