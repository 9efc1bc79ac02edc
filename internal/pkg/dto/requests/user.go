package requests

type UpdateUser struct {
	Name         string `json:"name" validate:"omitempty,min=2,max=100"`
	Email        string `json:"email" validate:"omitempty,email"`
	Phone        string `json:"phone"`
	DepartmentID string `json:"departmentId"`
}

// DaySchedule is one weekday entry of a doctor's working-hours schedule.
type DaySchedule struct {
	Available bool   `json:"available"`
	StartTime string `json:"startTime" validate:"omitempty,clock"`
	EndTime   string `json:"endTime" validate:"omitempty,clock"`
}

type UpdateSchedule struct {
	Schedule map[string]DaySchedule `json:"schedule" validate:"required"`
}
