package mongodb

import (
	"context"
	"time"

	"around/internal/domain/entity"
	"around/internal/domain/repository"
	"around/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	usersCollection    = "users"
	ensureIndexTimeout = 5 * time.Second
)

// withoutPassword strips the password digest from reads. Only
// FindByEmailWithPassword skips this projection.
var withoutPassword = bson.D{{Key: "password", Value: 0}}

// userRepository implements the repository.UserRepository interface on MongoDB.
type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository is the constructor for userRepository. It ensures the
// unique email index that backs the duplicate-signup contract: two racing
// signups for one email resolve to exactly one success.
func NewUserRepository(db *mongo.Database) (repository.UserRepository, error) {
	coll := db.Collection(usersCollection)

	ctx, cancel := context.WithTimeout(context.Background(), ensureIndexTimeout)
	defer cancel()

	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to ensure unique email index")
	}

	return &userRepository{coll: coll}, nil
}

// FindAll retrieves every user without their password digests.
func (repo *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	cursor, err := repo.coll.Find(ctx, bson.D{}, options.Find().SetProjection(withoutPassword))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find users")
	}

	users := []*entity.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, errors.Wrap(err, "failed to decode users")
	}

	return users, nil
}

// FindByID retrieves a single user by their unique id.
func (repo *userRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error) {
	var user entity.User
	err := repo.coll.FindOne(ctx,
		bson.D{{Key: "_id", Value: id}},
		options.FindOne().SetProjection(withoutPassword),
	).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return &user, nil
}

// FindByEmailWithPassword retrieves a user by email including the password
// digest. This is the credential-verification read used by login only.
func (repo *userRepository) FindByEmailWithPassword(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := repo.coll.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return &user, nil
}

// Create persists a new user entity and fills in the generated id.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	result, err := repo.coll.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateEmail
		}

		return errors.Wrap(err, "failed to insert user")
	}

	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = id
	}

	return nil
}

// UpdateProfile atomically sets name and about and returns the updated user.
func (repo *userRepository) UpdateProfile(ctx context.Context, id primitive.ObjectID, name, about string) (*entity.User, error) {
	return repo.findAndUpdate(ctx, id, bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: name},
		{Key: "about", Value: about},
	}}})
}

// UpdateAvatar atomically sets the avatar URL and returns the updated user.
func (repo *userRepository) UpdateAvatar(ctx context.Context, id primitive.ObjectID, avatar string) (*entity.User, error) {
	return repo.findAndUpdate(ctx, id, bson.D{{Key: "$set", Value: bson.D{
		{Key: "avatar", Value: avatar},
	}}})
}

func (repo *userRepository) findAndUpdate(ctx context.Context, id primitive.ObjectID, update bson.D) (*entity.User, error) {
	var user entity.User
	err := repo.coll.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}},
		update,
		options.FindOneAndUpdate().
			SetReturnDocument(options.After).
			SetProjection(withoutPassword),
	).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to update user")
	}

	return &user, nil
}
