package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/betrybe/agrix/internal/core/domain"
)

const personCollection = "persons"

// PersonRepository is the Mongo-backed credential store.
type PersonRepository struct {
	coll *mongo.Collection
}

func NewPersonRepository(db *mongo.Database) *PersonRepository {
	return &PersonRepository{coll: db.Collection(personCollection)}
}

type mongoPerson struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username"`
	PasswordHash string             `bson:"password_hash"`
	Role         string             `bson:"role"`
	CreatedAt    int64              `bson:"created_at"`
}

func (mp mongoPerson) toDomain() *domain.Person {
	return &domain.Person{
		ID:           mp.ID.Hex(),
		Username:     mp.Username,
		PasswordHash: mp.PasswordHash,
		Role:         mp.Role,
		CreatedAt:    unixToTime(mp.CreatedAt),
	}
}

func (r *PersonRepository) Create(ctx context.Context, person *domain.Person) (*domain.Person, error) {
	doc := mongoPerson{
		Username:     person.Username,
		PasswordHash: person.PasswordHash,
		Role:         person.Role,
		CreatedAt:    person.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrPersonExists
		}
		return nil, fmt.Errorf("insert person: %w", err)
	}

	created := *person
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *PersonRepository) FindByUsername(ctx context.Context, username string) (*domain.Person, error) {
	var mp mongoPerson
	if err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPersonNotFound
		}
		return nil, fmt.Errorf("find person: %w", err)
	}
	return mp.toDomain(), nil
}

// EnsureIndexes creates the unique username index duplicate detection
// relies on.
func (r *PersonRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
