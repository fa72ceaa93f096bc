package responses

import (
	"context"
	"time"

	"auditflow-service/internal/app/models"
	"auditflow-service/internal/pkg/constvars"
	"auditflow-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ResponseMongoRepository struct {
	Collection *mongo.Collection
}

func NewResponseMongoRepository(db *mongo.Client, dbName string) ResponseRepository {
	return &ResponseMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionResponses),
	}
}

func (r *ResponseMongoRepository) CreateResponse(ctx context.Context, response *models.Response) (string, error) {
	response.ID = primitive.NewObjectID().Hex()
	if response.Meta.CreatedAt.IsZero() {
		response.Meta.CreatedAt = time.Now().UTC()
	}

	_, err := r.Collection.InsertOne(ctx, response)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return response.ID, nil
}

func (r *ResponseMongoRepository) FindByTemplateID(ctx context.Context, templateID string, page, pageSize int) ([]models.Response, int, error) {
	filter := bson.M{"templateId": templateID}

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "meta.createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	items := make([]models.Response, 0, pageSize)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return items, int(total), nil
}

func (r *ResponseMongoRepository) CountByTemplateID(ctx context.Context, templateID string) (int64, error) {
	count, err := r.Collection.CountDocuments(ctx, bson.M{"templateId": templateID})
	if err != nil {
		return 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return count, nil
}
