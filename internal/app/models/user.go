package models

// DaySchedule is one weekday entry in a doctor's working-hours schedule.
// A missing entry means the default 09:00-17:00 window, available.
type DaySchedule struct {
	Available bool   `bson:"available"`
	StartTime string `bson:"startTime"`
	EndTime   string `bson:"endTime"`
}

type User struct {
	ID           string                 `bson:"_id,omitempty"`
	Name         string                 `bson:"name"`
	Email        string                 `bson:"email"`
	Username     string                 `bson:"username"`
	Password     string                 `bson:"password"`
	Role         string                 `bson:"role"`
	Phone        string                 `bson:"phone,omitempty"`
	DepartmentID string                 `bson:"departmentId,omitempty"`
	Schedule     map[string]DaySchedule `bson:"schedule,omitempty"`
	TimeModel    `bson:",inline"`
}
