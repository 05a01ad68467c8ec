package mongodb

import (
	"context"

	"around/internal/domain/entity"
	"around/internal/domain/repository"
	"around/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const cardsCollection = "cards"

// cardRepository implements the repository.CardRepository interface on MongoDB.
type cardRepository struct {
	coll *mongo.Collection
}

// NewCardRepository is the constructor for cardRepository.
func NewCardRepository(db *mongo.Database) repository.CardRepository {
	return &cardRepository{coll: db.Collection(cardsCollection)}
}

// FindAll retrieves every card.
func (repo *cardRepository) FindAll(ctx context.Context) ([]*entity.Card, error) {
	cursor, err := repo.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cards")
	}

	cards := []*entity.Card{}
	if err := cursor.All(ctx, &cards); err != nil {
		return nil, errors.Wrap(err, "failed to decode cards")
	}

	return cards, nil
}

// FindByID retrieves a single card by its unique id.
func (repo *cardRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Card, error) {
	var card entity.Card
	err := repo.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&card)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrCardNotFound
		}

		return nil, errors.Wrap(err, "failed to find card by id")
	}

	return &card, nil
}

// Create persists a new card entity and fills in the generated id.
func (repo *cardRepository) Create(ctx context.Context, card *entity.Card) error {
	result, err := repo.coll.InsertOne(ctx, card)
	if err != nil {
		return errors.Wrap(err, "failed to insert card")
	}

	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		card.ID = id
	}

	return nil
}

// Delete removes the card and returns the deleted record.
func (repo *cardRepository) Delete(ctx context.Context, id primitive.ObjectID) (*entity.Card, error) {
	var card entity.Card
	err := repo.coll.FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&card)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrCardNotFound
		}

		return nil, errors.Wrap(err, "failed to delete card")
	}

	return &card, nil
}

// AddLike inserts userID into the liker set with $addToSet, so liking twice
// leaves exactly one entry.
func (repo *cardRepository) AddLike(ctx context.Context, cardID, userID primitive.ObjectID) (*entity.Card, error) {
	return repo.findAndUpdate(ctx, cardID, bson.D{{Key: "$addToSet", Value: bson.D{
		{Key: "likes", Value: userID},
	}}})
}

// RemoveLike removes userID from the liker set with $pull; removing an absent
// like leaves the set unchanged.
func (repo *cardRepository) RemoveLike(ctx context.Context, cardID, userID primitive.ObjectID) (*entity.Card, error) {
	return repo.findAndUpdate(ctx, cardID, bson.D{{Key: "$pull", Value: bson.D{
		{Key: "likes", Value: userID},
	}}})
}

func (repo *cardRepository) findAndUpdate(ctx context.Context, id primitive.ObjectID, update bson.D) (*entity.Card, error) {
	var card entity.Card
	err := repo.coll.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&card)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrCardNotFound
		}

		return nil, errors.Wrap(err, "failed to update card")
	}

	return &card, nil
}
