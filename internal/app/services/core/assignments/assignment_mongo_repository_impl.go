package assignments

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

type AssignmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAssignmentMongoRepository(db *mongo.Client, dbName string) contracts.AssignmentRepository {
	return &AssignmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAssignments),
	}
}

func (r *AssignmentMongoRepository) CreateAssignment(ctx context.Context, assignment *models.Assignment) (string, error) {
	result, err := r.Collection.InsertOne(ctx, assignment)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *AssignmentMongoRepository) FindByID(ctx context.Context, assignmentID string) (*models.Assignment, error) {
	objectID, err := primitive.ObjectIDFromHex(assignmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var assignment models.Assignment
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&assignment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &assignment, nil
}

func (r *AssignmentMongoRepository) FindActiveByDoctorAndPatient(ctx context.Context, doctorID, patientID string) (*models.Assignment, error) {
	filter := bson.M{
		"doctorId":  doctorID,
		"patientId": patientID,
		"active":    true,
	}
	var assignment models.Assignment
	err := r.Collection.FindOne(ctx, filter).Decode(&assignment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &assignment, nil
}

func (r *AssignmentMongoRepository) FindByDoctorID(ctx context.Context, doctorID string) ([]models.Assignment, error) {
	return r.findMany(ctx, bson.M{"doctorId": doctorID})
}

func (r *AssignmentMongoRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.Assignment, error) {
	return r.findMany(ctx, bson.M{"patientId": patientID})
}

func (r *AssignmentMongoRepository) UpdateAssignment(ctx context.Context, assignment *models.Assignment) error {
	objectID, err := primitive.ObjectIDFromHex(assignment.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	update := bson.M{
		"$set": bson.M{
			"active":    assignment.Active,
			"notes":     assignment.Notes,
			"updatedAt": assignment.UpdatedAt,
		},
	}
	result, err := r.Collection.UpdateByID(ctx, objectID, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrAssignmentNotFound(nil)
	}
	return nil
}

func (r *AssignmentMongoRepository) DeleteByID(ctx context.Context, assignmentID string) error {
	objectID, err := primitive.ObjectIDFromHex(assignmentID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	result, err := r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	if result.DeletedCount == 0 {
		return exceptions.ErrAssignmentNotFound(nil)
	}
	return nil
}

func (r *AssignmentMongoRepository) findMany(ctx context.Context, filter bson.M) ([]models.Assignment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var assignments []models.Assignment
	if err := cursor.All(ctx, &assignments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return assignments, nil
}
