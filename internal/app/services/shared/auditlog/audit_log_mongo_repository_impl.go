package auditlog

import (
	"context"
	"errors"
	"halo-optom-service/internal/app/contracts"
	"halo-optom-service/internal/app/models"
	"halo-optom-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AuditLogMongoRepository struct {
	Collection *mongo.Collection
}

func NewAuditLogMongoRepository(db *mongo.Database, collectionName string) contracts.AuditLogRepository {
	return &AuditLogMongoRepository{
		Collection: db.Collection(collectionName),
	}
}

func (repo *AuditLogMongoRepository) Insert(ctx context.Context, entry *models.AuditLog) error {
	_, err := repo.Collection.InsertOne(ctx, entry)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err, repo.Collection.Name())
	}
	return nil
}

func (repo *AuditLogMongoRepository) FindByEntity(ctx context.Context, entityType, entityID string) ([]models.AuditLog, error) {
	filter := bson.M{
		"entity_type": entityType,
		"entity_id":   entityID,
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "occurred_at", Value: 1}})

	cursor, err := repo.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return []models.AuditLog{}, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err, repo.Collection.Name())
	}
	defer cursor.Close(ctx)

	logs := make([]models.AuditLog, 0)
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err, repo.Collection.Name())
	}
	return logs, nil
}
