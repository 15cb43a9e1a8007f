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

const farmCollection = "farms"

// FarmRepository persists farms in MongoDB.
type FarmRepository struct {
	coll *mongo.Collection
}

func NewFarmRepository(db *mongo.Database) *FarmRepository {
	return &FarmRepository{coll: db.Collection(farmCollection)}
}

type mongoFarm struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Name string             `bson:"name"`
	Size float64            `bson:"size"`
}

func (mf mongoFarm) toDomain() *domain.Farm {
	return &domain.Farm{ID: mf.ID.Hex(), Name: mf.Name, Size: mf.Size}
}

func (r *FarmRepository) Create(ctx context.Context, farm *domain.Farm) (*domain.Farm, error) {
	res, err := r.coll.InsertOne(ctx, mongoFarm{Name: farm.Name, Size: farm.Size})
	if err != nil {
		return nil, fmt.Errorf("insert farm: %w", err)
	}

	created := *farm
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *FarmRepository) FindByID(ctx context.Context, id string) (*domain.Farm, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrFarmNotFound
	}

	var mf mongoFarm
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mf); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrFarmNotFound
		}
		return nil, fmt.Errorf("find farm: %w", err)
	}
	return mf.toDomain(), nil
}

func (r *FarmRepository) FindAll(ctx context.Context) ([]*domain.Farm, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list farms: %w", err)
	}
	defer cursor.Close(ctx)

	farms := []*domain.Farm{}
	for cursor.Next(ctx) {
		var mf mongoFarm
		if err := cursor.Decode(&mf); err != nil {
			return nil, fmt.Errorf("decode farm: %w", err)
		}
		farms = append(farms, mf.toDomain())
	}
	return farms, cursor.Err()
}
