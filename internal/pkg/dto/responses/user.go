package responses

type DaySchedule struct {
	Available bool   `json:"available"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type User struct {
	ID           string                 `json:"id"`
	Name         string                 `json:"name"`
	Email        string                 `json:"email"`
	Username     string                 `json:"username"`
	Role         string                 `json:"role"`
	Phone        string                 `json:"phone,omitempty"`
	DepartmentID string                 `json:"departmentId,omitempty"`
	Schedule     map[string]DaySchedule `json:"schedule,omitempty"`
}
