package responses

type DashboardStats struct {
	TotalPatients        int64            `json:"totalPatients"`
	TotalDoctors         int64            `json:"totalDoctors"`
	TotalDepartments     int64            `json:"totalDepartments"`
	AppointmentsToday    int64            `json:"appointmentsToday"`
	AppointmentsByStatus map[string]int64 `json:"appointmentsByStatus"`
	PendingChargesTotal  float64          `json:"pendingChargesTotal"`
}
