package constvars

type contextKey string

const (
	CONTEXT_REQUEST_ID_KEY   contextKey = "requestID"
	CONTEXT_SESSION_DATA_KEY contextKey = "sessionData"
)

const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
	RoleAdmin   = "admin"
)

const (
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

const (
	LabTestStatusOrdered    = "ordered"
	LabTestStatusInProgress = "in-progress"
	LabTestStatusCompleted  = "completed"
)

const (
	ChargeStatusPending   = "pending"
	ChargeStatusPaid      = "paid"
	ChargeStatusCancelled = "cancelled"
)

// Slot duration used both for legacy single-time appointments and free-slot enumeration.
const SlotDurationInMinutes = 30

const (
	DefaultWorkingHoursStart = "09:00"
	DefaultWorkingHoursEnd   = "17:00"
)

const (
	ClockLayout = "15:04"
	DateLayout  = "2006-01-02"
)
