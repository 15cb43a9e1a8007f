package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/betrybe/agrix/internal/core/domain"
)

const cropCollection = "crops"

// CropRepository persists crops in MongoDB.
type CropRepository struct {
	coll *mongo.Collection
}

func NewCropRepository(db *mongo.Database) *CropRepository {
	return &CropRepository{coll: db.Collection(cropCollection)}
}

type mongoCrop struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	FarmID        string             `bson:"farm_id"`
	Name          string             `bson:"name"`
	PlantedArea   float64            `bson:"planted_area"`
	PlantedDate   time.Time          `bson:"planted_date"`
	HarvestDate   time.Time          `bson:"harvest_date"`
	FertilizerIDs []string           `bson:"fertilizer_ids,omitempty"`
}

func (mc mongoCrop) toDomain() *domain.Crop {
	return &domain.Crop{
		ID:            mc.ID.Hex(),
		FarmID:        mc.FarmID,
		Name:          mc.Name,
		PlantedArea:   mc.PlantedArea,
		PlantedDate:   mc.PlantedDate.UTC(),
		HarvestDate:   mc.HarvestDate.UTC(),
		FertilizerIDs: mc.FertilizerIDs,
	}
}

func (r *CropRepository) Create(ctx context.Context, crop *domain.Crop) (*domain.Crop, error) {
	doc := mongoCrop{
		FarmID:        crop.FarmID,
		Name:          crop.Name,
		PlantedArea:   crop.PlantedArea,
		PlantedDate:   crop.PlantedDate,
		HarvestDate:   crop.HarvestDate,
		FertilizerIDs: crop.FertilizerIDs,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert crop: %w", err)
	}

	created := *crop
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *CropRepository) FindByID(ctx context.Context, id string) (*domain.Crop, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCropNotFound
	}

	var mc mongoCrop
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCropNotFound
		}
		return nil, fmt.Errorf("find crop: %w", err)
	}
	return mc.toDomain(), nil
}

func (r *CropRepository) FindAll(ctx context.Context) ([]*domain.Crop, error) {
	return r.find(ctx, bson.M{})
}

func (r *CropRepository) FindByFarmID(ctx context.Context, farmID string) ([]*domain.Crop, error) {
	return r.find(ctx, bson.M{"farm_id": farmID})
}

// FindByHarvestBetween uses exclusive bounds on both ends.
func (r *CropRepository) FindByHarvestBetween(ctx context.Context, start, end time.Time) ([]*domain.Crop, error) {
	return r.find(ctx, bson.M{"harvest_date": bson.M{"$gt": start, "$lt": end}})
}

func (r *CropRepository) AddFertilizer(ctx context.Context, cropID, fertilizerID string) error {
	oid, err := primitive.ObjectIDFromHex(cropID)
	if err != nil {
		return domain.ErrCropNotFound
	}

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{
		"$addToSet": bson.M{"fertilizer_ids": fertilizerID},
	})
	if err != nil {
		return fmt.Errorf("associate fertilizer: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCropNotFound
	}
	return nil
}

func (r *CropRepository) find(ctx context.Context, filter bson.M) ([]*domain.Crop, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list crops: %w", err)
	}
	defer cursor.Close(ctx)

	crops := []*domain.Crop{}
	for cursor.Next(ctx) {
		var mc mongoCrop
		if err := cursor.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode crop: %w", err)
		}
		crops = append(crops, mc.toDomain())
	}
	return crops, cursor.Err()
}
