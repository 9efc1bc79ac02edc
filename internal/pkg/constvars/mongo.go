package constvars

const (
	MongoCollectionUsers        = "users"
	MongoCollectionDepartments  = "departments"
	MongoCollectionAppointments = "appointments"
	MongoCollectionAssignments  = "assignments"
	MongoCollectionDiagnoses    = "diagnoses"
	MongoCollectionLabTests     = "lab_tests"
	MongoCollectionCharges      = "charges"
)

const (
	MongoIndexDoctorSlot    = "uniq_doctor_date_start_active"
	MongoIndexPatientPerDay = "uniq_patient_date_active"
)
