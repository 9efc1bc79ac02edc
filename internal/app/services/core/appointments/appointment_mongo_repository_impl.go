package appointments

import (
	"context"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/exceptions"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) contracts.AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

func activeStatusFilter() bson.M {
	return bson.M{"$in": []string{
		constvars.AppointmentStatusScheduled,
		constvars.AppointmentStatusConfirmed,
	}}
}

func (r *AppointmentMongoRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	result, err := r.Collection.InsertOne(ctx, appointment)
	if err != nil {
		return "", mapInsertError(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

// mapInsertError translates a duplicate-key error into the matching booking
// conflict. The partial unique indexes on (doctorId, appointmentDate,
// startTime) and (patientId, appointmentDate) close the window between the
// usecase's conflict checks and the insert; the index name in the error
// tells the two violations apart.
func mapInsertError(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		if strings.Contains(err.Error(), constvars.MongoIndexPatientPerDay) {
			return exceptions.ErrPatientDayTaken(err)
		}
		return exceptions.ErrAppointmentOverlap()
	}
	return exceptions.ErrMongoDBInsertDocument(err)
}

func (r *AppointmentMongoRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var appointment models.Appointment
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

func (r *AppointmentMongoRepository) FindAll(ctx context.Context) ([]models.Appointment, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *AppointmentMongoRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return r.findMany(ctx, bson.M{"patientId": patientID})
}

func (r *AppointmentMongoRepository) FindByDoctorID(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	return r.findMany(ctx, bson.M{"doctorId": doctorID})
}

func (r *AppointmentMongoRepository) FindActiveByPatientAndDate(ctx context.Context, patientID, date string) ([]models.Appointment, error) {
	return r.findMany(ctx, bson.M{
		"patientId":       patientID,
		"appointmentDate": date,
		"status":          activeStatusFilter(),
	})
}

func (r *AppointmentMongoRepository) FindActiveByDoctorAndDate(ctx context.Context, doctorID, date string) ([]models.Appointment, error) {
	return r.findMany(ctx, bson.M{
		"doctorId":        doctorID,
		"appointmentDate": date,
		"status":          activeStatusFilter(),
	})
}

func (r *AppointmentMongoRepository) UpdateStatus(ctx context.Context, appointmentID, status, notes string) error {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	set := bson.M{"status": status}
	if notes != "" {
		set["notes"] = notes
	}
	result, err := r.Collection.UpdateByID(ctx, objectID, bson.M{"$set": set, "$currentDate": bson.M{"updatedAt": true}})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrAppointmentNotFound(nil)
	}
	return nil
}

func (r *AppointmentMongoRepository) DeleteByID(ctx context.Context, appointmentID string) error {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	result, err := r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	if result.DeletedCount == 0 {
		return exceptions.ErrAppointmentNotFound(nil)
	}
	return nil
}

func (r *AppointmentMongoRepository) CountByDate(ctx context.Context, date string) (int64, error) {
	count, err := r.Collection.CountDocuments(ctx, bson.M{"appointmentDate": date})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count, nil
}

func (r *AppointmentMongoRepository) CountGroupedByStatus(ctx context.Context) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$status",
			"count": bson.M{"$sum": 1},
		}}},
	}
	cursor, err := r.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Status string `bson:"_id"`
		Count  int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *AppointmentMongoRepository) findMany(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "appointmentDate", Value: 1},
		{Key: "startTime", Value: 1},
	})
	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}
