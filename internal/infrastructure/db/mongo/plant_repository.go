package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/greenhouse/plants-api/internal/core/domain"
)

const plantsCollection = "plants"

// PlantRepository persists catalog entries.
type PlantRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewPlantRepository(db *mongo.Database) *PlantRepository {
	return &PlantRepository{db: db, coll: db.Collection(plantsCollection)}
}

func (r *PlantRepository) Create(ctx context.Context, p *domain.Plant) (*domain.Plant, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextSequence(ctx, r.db, plantsCollection)
	if err != nil {
		return nil, err
	}

	created := *p
	created.ID = id
	if _, err := r.coll.InsertOne(ctx, created); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrPlantExists
		}
		return nil, fmt.Errorf("insert plant: %w", err)
	}
	return &created, nil
}

func (r *PlantRepository) FindBySlug(ctx context.Context, slug string) (*domain.Plant, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.Plant
	if err := r.coll.FindOne(ctx, bson.M{"slug": slug}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPlantNotFound
		}
		return nil, fmt.Errorf("find plant: %w", err)
	}
	return &p, nil
}

func (r *PlantRepository) List(ctx context.Context) ([]domain.Plant, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list plants: %w", err)
	}
	defer cursor.Close(ctx)

	plants := make([]domain.Plant, 0)
	if err := cursor.All(ctx, &plants); err != nil {
		return nil, fmt.Errorf("decode plants: %w", err)
	}
	return plants, nil
}

func (r *PlantRepository) Update(ctx context.Context, p *domain.Plant) (*domain.Plant, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return nil, fmt.Errorf("update plant: %w", err)
	}
	if result.MatchedCount == 0 {
		return nil, domain.ErrPlantNotFound
	}
	return p, nil
}

func (r *PlantRepository) DeleteBySlug(ctx context.Context, slug string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"slug": slug})
	if err != nil {
		return fmt.Errorf("delete plant: %w", err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrPlantNotFound
	}
	return nil
}

func (r *PlantRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count plants: %w", err)
	}
	return n, nil
}

// EnsureIndexes creates the unique slug index.
func (r *PlantRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
