package db

import (
	"context"
	"errors"
	"time"

	"github.com/coneno/logger"
	"github.com/tsuru/beta/pkg/types"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateIndexesForUsers speeds up the email lookup done on every
// registration. The index is not unique: duplicates are only prevented
// by looking the email up before inserting.
func (dbService *BetaDBService) CreateIndexesForUsers() {
	ctx, cancel := dbService.getContext(context.Background())
	defer cancel()

	_, err := dbService.collectionRefUsers().Indexes().CreateOne(
		ctx, mongo.IndexModel{
			Keys: bson.M{
				"email": 1,
			},
		},
	)
	if err != nil {
		logger.Error.Println(err)
	}
}

func (dbService *BetaDBService) FindUserByEmail(parent context.Context, email string) (user types.User, err error) {
	ctx, cancel := dbService.getContext(parent)
	defer cancel()

	filter := bson.M{
		"email": email,
	}

	if err = dbService.collectionRefUsers().FindOne(
		ctx,
		filter,
		options.FindOne(),
	).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return user, ErrNotFound
		}
		return user, err
	}

	return user, nil
}

func (dbService *BetaDBService) AddUser(parent context.Context, user types.User) (string, error) {
	ctx, cancel := dbService.getContext(parent)
	defer cancel()

	if user.RegisteredAt == 0 {
		user.RegisteredAt = time.Now().Unix()
	}

	res, err := dbService.collectionRefUsers().InsertOne(ctx, user)
	if err != nil {
		return "", err
	}
	id := res.InsertedID.(primitive.ObjectID)
	return id.Hex(), err
}
