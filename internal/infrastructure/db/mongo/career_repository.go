package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mikan-studio/portfolio-api/internal/core/domain"
)

const careersCollection = "careers"

// CareerRepository implements ports.CareerRepository on MongoDB.
type CareerRepository struct {
	coll *mongo.Collection
}

func NewCareerRepository(db *mongo.Database) *CareerRepository {
	return &CareerRepository{coll: db.Collection(careersCollection)}
}

type careerDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (d *careerDoc) toDomain() *domain.Career {
	return &domain.Career{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (r *CareerRepository) FindAll(ctx context.Context) ([]domain.Career, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list careers: %w", err)
	}
	defer cursor.Close(ctx)

	var careers []domain.Career
	for cursor.Next(ctx) {
		var doc careerDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode career: %w", err)
		}
		careers = append(careers, *doc.toDomain())
	}
	return careers, cursor.Err()
}

func (r *CareerRepository) FindByID(ctx context.Context, id string) (*domain.Career, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCareerNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc careerDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCareerNotFound
		}
		return nil, fmt.Errorf("find career: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *CareerRepository) Create(ctx context.Context, career *domain.Career) (*domain.Career, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := careerDoc{
		Title:       career.Title,
		Description: career.Description,
		CreatedAt:   career.CreatedAt,
		UpdatedAt:   career.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert career: %w", err)
	}

	created := *career
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *CareerRepository) Update(ctx context.Context, career *domain.Career) error {
	oid, err := primitive.ObjectIDFromHex(career.ID)
	if err != nil {
		return domain.ErrCareerNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"title":       career.Title,
		"description": career.Description,
		"updated_at":  career.UpdatedAt,
	}}

	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return fmt.Errorf("update career: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCareerNotFound
	}
	return nil
}

func (r *CareerRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCareerNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete career: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCareerNotFound
	}
	return nil
}
