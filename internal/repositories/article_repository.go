package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jaehyo-dev/school-hub/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ArticleRepository defines the interface for curated article operations
type ArticleRepository interface {
	CreateArticle(ctx context.Context, article *models.Article) error
	GetArticleByID(ctx context.Context, id string) (*models.Article, error)
	GetArticles(ctx context.Context, kind models.ArticleKind, includeAll bool) ([]models.Article, error)
	UpdateArticle(ctx context.Context, id string, article *models.Article) error
	DeleteArticle(ctx context.Context, id string) error
}

// MongoArticleRepository implements ArticleRepository for MongoDB
type MongoArticleRepository struct {
	collection *mongo.Collection
}

// NewMongoArticleRepository creates a new MongoArticleRepository
func NewMongoArticleRepository(db *mongo.Database) *MongoArticleRepository {
	return &MongoArticleRepository{collection: db.Collection("articles")}
}

// CreateArticle creates a new article in MongoDB
func (r *MongoArticleRepository) CreateArticle(ctx context.Context, article *models.Article) error {
	article.ID = primitive.NewObjectID()
	article.CreatedAt = time.Now()
	article.UpdatedAt = time.Now()
	if article.PublishedAt.IsZero() {
		article.PublishedAt = article.CreatedAt
	}
	_, err := r.collection.InsertOne(ctx, article)
	return err
}

// GetArticleByID retrieves an article by ID from MongoDB
func (r *MongoArticleRepository) GetArticleByID(ctx context.Context, id string) (*models.Article, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid article ID format: %w", err)
	}

	var article models.Article
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&article)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("article not found")
		}
		return nil, err
	}
	return &article, nil
}

// GetArticles retrieves articles of one kind. Unless includeAll is set,
// only published ones come back. News sorts newest-first; club sections
// sort by their configured order.
func (r *MongoArticleRepository) GetArticles(ctx context.Context, kind models.ArticleKind, includeAll bool) ([]models.Article, error) {
	filter := bson.M{"kind": kind}
	if !includeAll {
		filter["is_published"] = true
	}

	sortSpec := bson.D{{Key: "published_at", Value: -1}}
	if kind == models.ArticleClub {
		sortSpec = bson.D{{Key: "section", Value: 1}, {Key: "order", Value: 1}, {Key: "created_at", Value: -1}}
	}

	var articles []models.Article
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(sortSpec))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

// UpdateArticle updates an existing article in MongoDB
func (r *MongoArticleRepository) UpdateArticle(ctx context.Context, id string, article *models.Article) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid article ID format: %w", err)
	}

	article.UpdatedAt = time.Now()
	update := bson.M{
		"$set": bson.M{
			"title":        article.Title,
			"summary":      article.Summary,
			"content":      article.Content,
			"category":     article.Category,
			"section":      article.Section,
			"cover_image":  article.CoverImage,
			"order":        article.Order,
			"is_published": article.IsPublished,
			"published_at": article.PublishedAt,
			"updated_at":   article.UpdatedAt,
		},
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("article not found")
	}
	return nil
}

// DeleteArticle removes an article from MongoDB. Curated pages carry no
// report linkage, so a hard delete is fine here.
func (r *MongoArticleRepository) DeleteArticle(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid article ID format: %w", err)
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("article not found")
	}
	return nil
}
