package templates

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

type TemplateMongoRepository struct {
	Collection *mongo.Collection
}

func NewTemplateMongoRepository(db *mongo.Client, dbName string) TemplateRepository {
	return &TemplateMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionTemplates),
	}
}

func (r *TemplateMongoRepository) CreateTemplate(ctx context.Context, template *models.Template) (string, error) {
	template.ID = primitive.NewObjectID().Hex()
	now := time.Now().UTC()
	template.CreatedAt = now
	template.UpdatedAt = now

	_, err := r.Collection.InsertOne(ctx, template)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return template.ID, nil
}

func (r *TemplateMongoRepository) FindAll(ctx context.Context, page, pageSize int) ([]models.Template, int, error) {
	total, err := r.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := r.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	templates := make([]models.Template, 0, pageSize)
	if err := cursor.All(ctx, &templates); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return templates, int(total), nil
}

func (r *TemplateMongoRepository) FindByID(ctx context.Context, templateID string) (*models.Template, error) {
	if _, err := primitive.ObjectIDFromHex(templateID); err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var template models.Template
	err := r.Collection.FindOne(ctx, bson.M{"_id": templateID}).Decode(&template)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &template, nil
}

func (r *TemplateMongoRepository) UpdateTemplate(ctx context.Context, template *models.Template) error {
	template.UpdatedAt = time.Now().UTC()

	filter := bson.M{"_id": template.ID}
	_, err := r.Collection.ReplaceOne(ctx, filter, template, options.Replace().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *TemplateMongoRepository) DeleteByID(ctx context.Context, templateID string) error {
	if _, err := primitive.ObjectIDFromHex(templateID); err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	_, err := r.Collection.DeleteOne(ctx, bson.M{"_id": templateID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
