package main

import (
	"context"
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/drivers/database"
	"hospital-service/internal/app/drivers/logger"
	"hospital-service/internal/pkg/constvars"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Creates the indexes the application relies on. Safe to run repeatedly;
// existing indexes with the same definition are no-ops.
func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	log := logger.NewLogrusLogger(internalConfig)

	mongoClient := database.NewMongoDB(driverConfig)
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Errorf("Error disconnecting mongo client: %v", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := mongoClient.Database(driverConfig.MongoDB.DbName)

	// Only scheduled and confirmed appointments hold a slot; completed and
	// cancelled ones must not block rebooking, hence the partial filter.
	activeFilter := bson.M{
		"status": bson.M{"$in": bson.A{
			constvars.AppointmentStatusScheduled,
			constvars.AppointmentStatusConfirmed,
		}},
	}

	appointmentIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "doctorId", Value: 1},
				{Key: "appointmentDate", Value: 1},
				{Key: "startTime", Value: 1},
			},
			Options: options.Index().
				SetName(constvars.MongoIndexDoctorSlot).
				SetUnique(true).
				SetPartialFilterExpression(activeFilter),
		},
		{
			Keys: bson.D{
				{Key: "patientId", Value: 1},
				{Key: "appointmentDate", Value: 1},
			},
			Options: options.Index().
				SetName(constvars.MongoIndexPatientPerDay).
				SetUnique(true).
				SetPartialFilterExpression(activeFilter),
		},
	}
	names, err := db.Collection(constvars.MongoCollectionAppointments).Indexes().CreateMany(ctx, appointmentIndexes)
	if err != nil {
		log.Fatalf("Error creating appointment indexes: %v", err)
	}
	log.Infof("Created appointment indexes: %v", names)

	userIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	names, err = db.Collection(constvars.MongoCollectionUsers).Indexes().CreateMany(ctx, userIndexes)
	if err != nil {
		log.Fatalf("Error creating user indexes: %v", err)
	}
	log.Infof("Created user indexes: %v", names)

	departmentIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	names, err = db.Collection(constvars.MongoCollectionDepartments).Indexes().CreateMany(ctx, departmentIndexes)
	if err != nil {
		log.Fatalf("Error creating department indexes: %v", err)
	}
	log.Infof("Created department indexes: %v", names)

	log.Info("Migration finished")
}
