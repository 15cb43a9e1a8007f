package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/betrybe/agrix/internal/core/domain"
)

const fertilizerCollection = "fertilizers"

// FertilizerRepository persists fertilizers in MongoDB.
type FertilizerRepository struct {
	coll *mongo.Collection
}

func NewFertilizerRepository(db *mongo.Database) *FertilizerRepository {
	return &FertilizerRepository{coll: db.Collection(fertilizerCollection)}
}

type mongoFertilizer struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Brand       string             `bson:"brand"`
	Composition string             `bson:"composition"`
}

func (mf mongoFertilizer) toDomain() *domain.Fertilizer {
	return &domain.Fertilizer{
		ID:          mf.ID.Hex(),
		Name:        mf.Name,
		Brand:       mf.Brand,
		Composition: mf.Composition,
	}
}

func (r *FertilizerRepository) Create(ctx context.Context, fertilizer *domain.Fertilizer) (*domain.Fertilizer, error) {
	doc := mongoFertilizer{
		Name:        fertilizer.Name,
		Brand:       fertilizer.Brand,
		Composition: fertilizer.Composition,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert fertilizer: %w", err)
	}

	created := *fertilizer
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *FertilizerRepository) FindByID(ctx context.Context, id string) (*domain.Fertilizer, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrFertilizerNotFound
	}

	var mf mongoFertilizer
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mf); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrFertilizerNotFound
		}
		return nil, fmt.Errorf("find fertilizer: %w", err)
	}
	return mf.toDomain(), nil
}

func (r *FertilizerRepository) FindAll(ctx context.Context) ([]*domain.Fertilizer, error) {
	return r.find(ctx, bson.M{})
}

func (r *FertilizerRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.Fertilizer, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		oids = append(oids, oid)
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": oids}})
}

func (r *FertilizerRepository) find(ctx context.Context, filter bson.M) ([]*domain.Fertilizer, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list fertilizers: %w", err)
	}
	defer cursor.Close(ctx)

	fertilizers := []*domain.Fertilizer{}
	for cursor.Next(ctx) {
		var mf mongoFertilizer
		if err := cursor.Decode(&mf); err != nil {
			return nil, fmt.Errorf("decode fertilizer: %w", err)
		}
		fertilizers = append(fertilizers, mf.toDomain())
	}
	return fertilizers, cursor.Err()
}
