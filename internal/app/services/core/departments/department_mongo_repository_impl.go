package departments

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

type DepartmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewDepartmentMongoRepository(db *mongo.Client, dbName string) contracts.DepartmentRepository {
	return &DepartmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionDepartments),
	}
}

func (r *DepartmentMongoRepository) CreateDepartment(ctx context.Context, department *models.Department) (string, error) {
	result, err := r.Collection.InsertOne(ctx, department)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *DepartmentMongoRepository) FindByID(ctx context.Context, departmentID string) (*models.Department, error) {
	objectID, err := primitive.ObjectIDFromHex(departmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var department models.Department
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&department)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &department, nil
}

func (r *DepartmentMongoRepository) FindByName(ctx context.Context, name string) (*models.Department, error) {
	var department models.Department
	err := r.Collection.FindOne(ctx, bson.M{"name": name}).Decode(&department)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &department, nil
}

func (r *DepartmentMongoRepository) FindAll(ctx context.Context) ([]models.Department, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var departments []models.Department
	if err := cursor.All(ctx, &departments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return departments, nil
}

func (r *DepartmentMongoRepository) UpdateDepartment(ctx context.Context, department *models.Department) error {
	objectID, err := primitive.ObjectIDFromHex(department.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	update := bson.M{
		"$set": bson.M{
			"name":        department.Name,
			"description": department.Description,
			"updatedAt":   department.UpdatedAt,
		},
	}
	result, err := r.Collection.UpdateByID(ctx, objectID, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrDepartmentNotFound(nil)
	}
	return nil
}

func (r *DepartmentMongoRepository) DeleteByID(ctx context.Context, departmentID string) error {
	objectID, err := primitive.ObjectIDFromHex(departmentID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	result, err := r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	if result.DeletedCount == 0 {
		return exceptions.ErrDepartmentNotFound(nil)
	}
	return nil
}

func (r *DepartmentMongoRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count, nil
}
