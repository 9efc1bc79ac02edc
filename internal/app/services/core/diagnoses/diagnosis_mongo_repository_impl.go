package diagnoses

import (
	"context"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DiagnosisMongoRepository struct {
	Collection *mongo.Collection
}

func NewDiagnosisMongoRepository(db *mongo.Client, dbName string) contracts.DiagnosisRepository {
	return &DiagnosisMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionDiagnoses),
	}
}

func (r *DiagnosisMongoRepository) CreateDiagnosis(ctx context.Context, diagnosis *models.Diagnosis) (string, error) {
	result, err := r.Collection.InsertOne(ctx, diagnosis)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *DiagnosisMongoRepository) FindByID(ctx context.Context, diagnosisID string) (*models.Diagnosis, error) {
	objectID, err := primitive.ObjectIDFromHex(diagnosisID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var diagnosis models.Diagnosis
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&diagnosis)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &diagnosis, nil
}

func (r *DiagnosisMongoRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.Diagnosis, error) {
	return r.findMany(ctx, bson.M{"patientId": patientID})
}

func (r *DiagnosisMongoRepository) FindByDoctorID(ctx context.Context, doctorID string) ([]models.Diagnosis, error) {
	return r.findMany(ctx, bson.M{"doctorId": doctorID})
}

func (r *DiagnosisMongoRepository) UpdateDiagnosis(ctx context.Context, diagnosis *models.Diagnosis) error {
	objectID, err := primitive.ObjectIDFromHex(diagnosis.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	update := bson.M{
		"$set": bson.M{
			"code":         diagnosis.Code,
			"description":  diagnosis.Description,
			"prescription": diagnosis.Prescription,
			"notes":        diagnosis.Notes,
			"updatedAt":    diagnosis.UpdatedAt,
		},
	}
	result, err := r.Collection.UpdateByID(ctx, objectID, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrDiagnosisNotFound(nil)
	}
	return nil
}

func (r *DiagnosisMongoRepository) DeleteByID(ctx context.Context, diagnosisID string) error {
	objectID, err := primitive.ObjectIDFromHex(diagnosisID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	result, err := r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	if result.DeletedCount == 0 {
		return exceptions.ErrDiagnosisNotFound(nil)
	}
	return nil
}

func (r *DiagnosisMongoRepository) findMany(ctx context.Context, filter bson.M) ([]models.Diagnosis, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var diagnoses []models.Diagnosis
	if err := cursor.All(ctx, &diagnoses); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return diagnoses, nil
}
