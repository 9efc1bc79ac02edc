package constvars

// Client-facing messages. These are safe to return verbatim.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process your request, please check your input"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "You are not logged in, please log in first"
	ErrClientServerLongRespond             = "The server takes too long to respond, please try again later"
	ErrClientTooManyRequests               = "Too many requests, please slow down and try again later"

	ErrClientInvalidUsernameOrPassword = "Invalid username or password"
	ErrClientEmailAlreadyExists        = "Email is already registered"
	ErrClientUsernameAlreadyExists     = "Username is already taken"
	ErrClientResetTokenExpired         = "Your reset password link has expired, please request a new one"

	ErrClientUserNotFound        = "User not found"
	ErrClientPatientNotFound     = "Patient not found"
	ErrClientDoctorNotFound      = "Doctor not found"
	ErrClientDepartmentNotFound  = "Department not found"
	ErrClientAppointmentNotFound = "Appointment not found"
	ErrClientAssignmentNotFound  = "Assignment not found"
	ErrClientDiagnosisNotFound   = "Diagnosis not found"
	ErrClientLabTestNotFound     = "Lab test not found"
	ErrClientChargeNotFound      = "Charge not found"

	ErrClientMissingRequiredFields  = "Patient, doctor, date, start time and end time are required"
	ErrClientInvalidTimeFormat      = "Time must be in HH:MM 24-hour format"
	ErrClientEndBeforeStart         = "End time must be after start time"
	ErrClientInvalidID              = "The provided id is not a valid identifier"
	ErrClientAppointmentInPast      = "Appointment date and time cannot be in the past"
	ErrClientNotAPatient            = "The referenced user is not a patient"
	ErrClientNotADoctor             = "The referenced user is not a doctor"
	ErrClientSelfBookingOnly        = "Patients can only book appointments for themselves"
	ErrClientOnePerDayConflict      = "Patient already has an active appointment on this date"
	ErrClientOnePerDayConflictWith  = "Patient already has appointment %s on %s at %s with doctor %s"
	ErrClientDoctorUnavailable      = "Doctor is not available on the requested day"
	ErrClientOutsideWorkingHours    = "Requested time is outside the doctor's working hours"
	ErrClientAppointmentOverlap     = "The requested time overlaps an existing appointment"
	ErrClientInvalidStatus          = "Invalid appointment status"
	ErrClientInvalidWorkingHours    = "Working hours must satisfy start before end in HH:MM format"
	ErrClientDuplicateAssignment    = "Patient is already assigned to this doctor"
	ErrClientDepartmentNameTaken    = "A department with this name already exists"
	ErrClientChargeAlreadyPaid      = "This charge has already been paid"
	ErrClientChargeAlreadyCancelled = "This charge has already been cancelled"
	ErrClientEmptyChargeItems       = "A charge needs at least one item"
	ErrClientLabTestNoReport        = "This lab test has no report attached"
)

// Developer-facing messages, logged server side and only exposed outside production.
const (
	ErrDevValidationFailed      = "Request payload failed validation"
	ErrDevCannotParseJSON       = "Failed to parse JSON request body"
	ErrDevFailedToHashPassword  = "Failed to hash password with bcrypt"
	ErrDevAuthGenerateToken     = "Failed to generate JWT"
	ErrDevAuthSigningMethod     = "Unexpected JWT signing method"
	ErrDevAuthTokenInvalid      = "JWT is invalid or expired"
	ErrDevAuthTokenMissing      = "Authorization header is missing"
	ErrDevAuthInvalidSession    = "Session not found in redis"
	ErrDevAuthRoleNotAllowed    = "Caller role is not allowed for this endpoint"
	ErrDevServerDeadline        = "Context deadline exceeded while processing request"
	ErrDevServerProcess         = "Unexpected error while processing request"
	ErrDevTooManyRequests       = "Client exceeded the request rate limit"
	ErrDevInvalidObjectID       = "String is not a valid mongo ObjectID"
	ErrDevURLParamMissing       = "Required URL parameter %s is missing"
	ErrDevInvalidClockString    = "Clock string %q does not match HH:MM"
	ErrDevAppointmentValidation = "Appointment admission precondition failed: %s"

	ErrDevDBFailedToFindDocument    = "MongoDB failed to find document"
	ErrDevDBFailedToInsertDocument  = "MongoDB failed to insert document"
	ErrDevDBFailedToUpdateDocument  = "MongoDB failed to update document"
	ErrDevDBFailedToDeleteDocument  = "MongoDB failed to delete document"
	ErrDevDBFailedToIterateCursor   = "MongoDB failed to iterate cursor"
	ErrDevDBFailedToCountDocuments  = "MongoDB failed to count documents"
	ErrDevDBDuplicateKey            = "MongoDB rejected write with duplicate key"
	ErrDevRedisGetData              = "Redis failed to get data"
	ErrDevRedisSetData              = "Redis failed to set data"
	ErrDevRedisDeleteData           = "Redis failed to delete data"
	ErrDevRabbitMQPublish           = "RabbitMQ failed to publish message to queue %s"
	ErrDevMinioCreateObject         = "Minio failed to store object in bucket %s"
	ErrDevMinioPresignObject        = "Minio failed to presign object in bucket %s"
	ErrDevSMTPSendEmail             = "SMTP failed to send email via %s"
)
