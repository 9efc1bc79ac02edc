package charges

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

type ChargeMongoRepository struct {
	Collection *mongo.Collection
}

func NewChargeMongoRepository(db *mongo.Client, dbName string) contracts.ChargeRepository {
	return &ChargeMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionCharges),
	}
}

func (r *ChargeMongoRepository) CreateCharge(ctx context.Context, charge *models.Charge) (string, error) {
	result, err := r.Collection.InsertOne(ctx, charge)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *ChargeMongoRepository) FindByID(ctx context.Context, chargeID string) (*models.Charge, error) {
	objectID, err := primitive.ObjectIDFromHex(chargeID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var charge models.Charge
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&charge)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &charge, nil
}

func (r *ChargeMongoRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.Charge, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.Collection.Find(ctx, bson.M{"patientId": patientID}, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var charges []models.Charge
	if err := cursor.All(ctx, &charges); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return charges, nil
}

func (r *ChargeMongoRepository) UpdateCharge(ctx context.Context, charge *models.Charge) error {
	objectID, err := primitive.ObjectIDFromHex(charge.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	update := bson.M{
		"$set": bson.M{
			"status":        charge.Status,
			"receiptNumber": charge.ReceiptNumber,
			"paidAt":        charge.PaidAt,
			"updatedAt":     charge.UpdatedAt,
		},
	}
	result, err := r.Collection.UpdateByID(ctx, objectID, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrChargeNotFound(nil)
	}
	return nil
}

func (r *ChargeMongoRepository) SumTotalByStatus(ctx context.Context, status string) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": status}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$total"},
		}}},
	}
	cursor, err := r.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Total, nil
}
