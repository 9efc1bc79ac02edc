package appointments

import (
	"errors"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func duplicateKeyError(indexName string) error {
	return mongo.WriteException{
		WriteErrors: mongo.WriteErrors{
			{
				Code:    11000,
				Message: "E11000 duplicate key error collection: hospital.appointments index: " + indexName + " dup key",
			},
		},
	}
}

func TestMapInsertError(t *testing.T) {
	t.Run("patient per-day index maps to the one-per-day conflict", func(t *testing.T) {
		err := mapInsertError(duplicateKeyError(constvars.MongoIndexPatientPerDay))
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientOnePerDayConflict, customErr.ClientMessage)
	})

	t.Run("doctor slot index maps to the overlap conflict", func(t *testing.T) {
		err := mapInsertError(duplicateKeyError(constvars.MongoIndexDoctorSlot))
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientAppointmentOverlap, customErr.ClientMessage)
	})

	t.Run("other errors map to the insert failure", func(t *testing.T) {
		err := mapInsertError(errors.New("connection reset"))
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusInternalServerError, customErr.StatusCode)
	})
}
