package labtests

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

type LabTestMongoRepository struct {
	Collection *mongo.Collection
}

func NewLabTestMongoRepository(db *mongo.Client, dbName string) contracts.LabTestRepository {
	return &LabTestMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionLabTests),
	}
}

func (r *LabTestMongoRepository) CreateLabTest(ctx context.Context, labTest *models.LabTest) (string, error) {
	result, err := r.Collection.InsertOne(ctx, labTest)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *LabTestMongoRepository) FindByID(ctx context.Context, labTestID string) (*models.LabTest, error) {
	objectID, err := primitive.ObjectIDFromHex(labTestID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var labTest models.LabTest
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&labTest)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &labTest, nil
}

func (r *LabTestMongoRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.LabTest, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.Collection.Find(ctx, bson.M{"patientId": patientID}, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var labTests []models.LabTest
	if err := cursor.All(ctx, &labTests); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return labTests, nil
}

func (r *LabTestMongoRepository) UpdateLabTest(ctx context.Context, labTest *models.LabTest) error {
	objectID, err := primitive.ObjectIDFromHex(labTest.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	update := bson.M{
		"$set": bson.M{
			"status":           labTest.Status,
			"result":           labTest.Result,
			"resultObjectName": labTest.ResultObjectName,
			"notes":            labTest.Notes,
			"updatedAt":        labTest.UpdatedAt,
		},
	}
	result, err := r.Collection.UpdateByID(ctx, objectID, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrLabTestNotFound(nil)
	}
	return nil
}

func (r *LabTestMongoRepository) DeleteByID(ctx context.Context, labTestID string) error {
	objectID, err := primitive.ObjectIDFromHex(labTestID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	result, err := r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	if result.DeletedCount == 0 {
		return exceptions.ErrLabTestNotFound(nil)
	}
	return nil
}
