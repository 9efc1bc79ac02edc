package exceptions

import (
	"fmt"
	"hospital-service/internal/pkg/constvars"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrHashPassword = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevFailedToHashPassword)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadline)
	}
	ErrServerProcess = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevServerProcess)
	}
	ErrURLParamMissing = func(paramName string) *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevURLParamMissing, paramName))
	}
	ErrTooManyRequests = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusTooManyRequests, constvars.ErrClientTooManyRequests, constvars.ErrDevTooManyRequests)
	}

	// Auth
	ErrInvalidUsernameOrPassword = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientInvalidUsernameOrPassword, "Credential check failed")
	}
	ErrEmailAlreadyExist = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientEmailAlreadyExists, "Email already exists")
	}
	ErrUsernameAlreadyExist = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientUsernameAlreadyExists, "Username already exists")
	}
	ErrTokenMissing = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevAuthTokenMissing)
	}
	ErrTokenGenerate = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAuthGenerateToken)
	}
	ErrTokenInvalidOrExpired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenInvalid)
	}
	ErrSessionInvalid = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthInvalidSession)
	}
	ErrResetTokenExpired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGone, constvars.ErrClientResetTokenExpired, "Reset token missing or expired in redis")
	}
	ErrRoleNotAllowed = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusForbidden, constvars.ErrClientNotAuthorized, constvars.ErrDevAuthRoleNotAllowed)
	}

	// Not found
	ErrUserNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientUserNotFound, "User document not found")
	}
	ErrDepartmentNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientDepartmentNotFound, "Department document not found")
	}
	ErrAppointmentNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientAppointmentNotFound, "Appointment document not found")
	}
	ErrAssignmentNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientAssignmentNotFound, "Assignment document not found")
	}
	ErrDiagnosisNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientDiagnosisNotFound, "Diagnosis document not found")
	}
	ErrLabTestNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientLabTestNotFound, "Lab test document not found")
	}
	ErrChargeNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientChargeNotFound, "Charge document not found")
	}

	// Appointment admission, one constructor per precondition so callers
	// never collapse distinct causes into a generic failure.
	ErrAppointmentMissingFields = func() *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientMissingRequiredFields, fmt.Sprintf(constvars.ErrDevAppointmentValidation, "missing required fields"))
	}
	ErrAppointmentBadTimeFormat = func(value string) *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientInvalidTimeFormat, fmt.Sprintf(constvars.ErrDevInvalidClockString, value))
	}
	ErrAppointmentEndBeforeStart = func() *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientEndBeforeStart, fmt.Sprintf(constvars.ErrDevAppointmentValidation, "end <= start"))
	}
	ErrInvalidObjectID = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidID, constvars.ErrDevInvalidObjectID)
	}
	ErrAppointmentInPast = func() *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientAppointmentInPast, fmt.Sprintf(constvars.ErrDevAppointmentValidation, "date-time in the past"))
	}
	ErrPatientNotFound = func() *CustomError {
		return WrapWithoutError(constvars.StatusNotFound, constvars.ErrClientPatientNotFound, fmt.Sprintf(constvars.ErrDevAppointmentValidation, "referenced patient absent"))
	}
	ErrDoctorNotFound = func() *CustomError {
		return WrapWithoutError(constvars.StatusNotFound, constvars.ErrClientDoctorNotFound, fmt.Sprintf(constvars.ErrDevAppointmentValidation, "referenced doctor absent"))
	}
	ErrTargetNotPatient = func() *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientNotAPatient, fmt.Sprintf(constvars.ErrDevAppointmentValidation, "referenced user lacks patient role"))
	}
	ErrTargetNotDoctor = func() *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientNotADoctor, fmt.Sprintf(constvars.ErrDevAppointmentValidation, "referenced user lacks doctor role"))
	}
	ErrSelfBookingOnly = func() *CustomError {
		return WrapWithoutError(constvars.StatusForbidden, constvars.ErrClientSelfBookingOnly, fmt.Sprintf(constvars.ErrDevAppointmentValidation, "patient booking for another patient"))
	}
	ErrOnePerDayConflict = func(appointmentID, date, startTime, doctorID string) *CustomError {
		return WrapWithoutError(constvars.StatusConflict, fmt.Sprintf(constvars.ErrClientOnePerDayConflictWith, appointmentID, date, startTime, doctorID), fmt.Sprintf(constvars.ErrDevAppointmentValidation, "patient already holds an active appointment that day"))
	}
	ErrPatientDayTaken = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientOnePerDayConflict, "Duplicate key on the patient-per-day index")
	}
	ErrDoctorUnavailable = func() *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientDoctorUnavailable, fmt.Sprintf(constvars.ErrDevAppointmentValidation, "weekday marked unavailable"))
	}
	ErrOutsideWorkingHours = func() *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientOutsideWorkingHours, fmt.Sprintf(constvars.ErrDevAppointmentValidation, "range outside working-hours window"))
	}
	ErrAppointmentOverlap = func() *CustomError {
		return WrapWithoutError(constvars.StatusConflict, constvars.ErrClientAppointmentOverlap, fmt.Sprintf(constvars.ErrDevAppointmentValidation, "range overlaps an active appointment"))
	}
	ErrInvalidAppointmentStatus = func(status string) *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientInvalidStatus, fmt.Sprintf(constvars.ErrDevAppointmentValidation, "unknown status "+status))
	}
	ErrInvalidWorkingHours = func(day string) *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientInvalidWorkingHours, "Working hours window invalid for "+day)
	}

	// Domain conflicts
	ErrDuplicateAssignment = func() *CustomError {
		return WrapWithoutError(constvars.StatusConflict, constvars.ErrClientDuplicateAssignment, "Active assignment already exists for doctor/patient pair")
	}
	ErrDepartmentNameTaken = func() *CustomError {
		return WrapWithoutError(constvars.StatusConflict, constvars.ErrClientDepartmentNameTaken, "Department name already exists")
	}
	ErrChargeAlreadyPaid = func() *CustomError {
		return WrapWithoutError(constvars.StatusConflict, constvars.ErrClientChargeAlreadyPaid, "Charge already in paid status")
	}
	ErrChargeAlreadyCancelled = func() *CustomError {
		return WrapWithoutError(constvars.StatusConflict, constvars.ErrClientChargeAlreadyCancelled, "Charge already in cancelled status")
	}
	ErrEmptyChargeItems = func() *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientEmptyChargeItems, "Charge created with no items")
	}
	ErrLabTestNoReport = func() *CustomError {
		return WrapWithoutError(constvars.StatusNotFound, constvars.ErrClientLabTestNoReport, "Lab test has no stored report object")
	}

	// MongoDB
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToFindDocument)
	}
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToInsertDocument)
	}
	ErrMongoDBUpdateDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToUpdateDocument)
	}
	ErrMongoDBDeleteDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToDeleteDocument)
	}
	ErrMongoDBIterateDocuments = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToIterateCursor)
	}
	ErrMongoDBCountDocuments = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToCountDocuments)
	}
	ErrMongoDBNotObjectID = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidID, constvars.ErrDevInvalidObjectID)
	}

	// Redis
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetData)
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, queueName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublish, queueName))
	}

	// Minio
	ErrMinioCreateObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioCreateObject, bucketName))
	}
	ErrMinioPresignObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioPresignObject, bucketName))
	}

	// SMTP
	ErrSMTPSendEmail = func(err error, hostname string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevSMTPSendEmail, hostname))
	}
)
