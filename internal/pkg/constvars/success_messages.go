package constvars

const (
	RegisterSuccessMessage       = "Successfully registered user"
	LoginSuccessMessage          = "Successfully logged in"
	LogoutSuccessMessage         = "Successfully logged out"
	ForgotPasswordSuccessMessage = "If the email is registered, a reset link has been sent"
	ResetPasswordSuccessMessage  = "Successfully reset password"

	GetUserSuccessMessage        = "Successfully fetched user"
	GetUsersSuccessMessage       = "Successfully fetched users"
	UpdateUserSuccessMessage     = "Successfully updated user"
	DeleteUserSuccessMessage     = "Successfully deleted user"
	UpdateScheduleSuccessMessage = "Successfully updated working hours"

	CreateDepartmentSuccessMessage = "Successfully created department"
	GetDepartmentSuccessMessage    = "Successfully fetched department"
	GetDepartmentsSuccessMessage   = "Successfully fetched departments"
	UpdateDepartmentSuccessMessage = "Successfully updated department"
	DeleteDepartmentSuccessMessage = "Successfully deleted department"

	CreateAppointmentSuccessMessage       = "Successfully created appointment"
	GetAppointmentSuccessMessage          = "Successfully fetched appointment"
	GetAppointmentsSuccessMessage         = "Successfully fetched appointments"
	UpdateAppointmentStatusSuccessMessage = "Successfully updated appointment status"
	DeleteAppointmentSuccessMessage       = "Successfully deleted appointment"
	GetAvailableSlotsSuccessMessage       = "Successfully fetched available slots"
	GetAvailableDoctorsSuccessMessage     = "Successfully fetched available doctors"

	CreateAssignmentSuccessMessage     = "Successfully assigned patient to doctor"
	GetAssignmentsSuccessMessage       = "Successfully fetched assignments"
	DeactivateAssignmentSuccessMessage = "Successfully deactivated assignment"
	DeleteAssignmentSuccessMessage     = "Successfully deleted assignment"

	CreateDiagnosisSuccessMessage = "Successfully created diagnosis"
	GetDiagnosisSuccessMessage    = "Successfully fetched diagnosis"
	GetDiagnosesSuccessMessage    = "Successfully fetched diagnoses"
	UpdateDiagnosisSuccessMessage = "Successfully updated diagnosis"
	DeleteDiagnosisSuccessMessage = "Successfully deleted diagnosis"

	CreateLabTestSuccessMessage       = "Successfully ordered lab test"
	GetLabTestSuccessMessage          = "Successfully fetched lab test"
	GetLabTestsSuccessMessage         = "Successfully fetched lab tests"
	RecordLabTestResultSuccessMessage = "Successfully recorded lab test result"
	GetLabTestReportSuccessMessage    = "Successfully generated report download link"
	DeleteLabTestSuccessMessage       = "Successfully deleted lab test"

	CreateChargeSuccessMessage = "Successfully created charge"
	GetChargeSuccessMessage    = "Successfully fetched charge"
	GetChargesSuccessMessage   = "Successfully fetched charges"
	PayChargeSuccessMessage    = "Successfully paid charge"
	CancelChargeSuccessMessage = "Successfully cancelled charge"

	GetDashboardStatsSuccessMessage = "Successfully fetched dashboard statistics"
)
