package db

import (
	"context"
	"time"

	"github.com/coneno/logger"
	"github.com/tsuru/beta/pkg/types"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func (dbService *BetaDBService) CreateIndexesForSurvey() {
	ctx, cancel := dbService.getContext(context.Background())
	defer cancel()

	_, err := dbService.collectionRefSurvey().Indexes().CreateOne(
		ctx, mongo.IndexModel{
			Keys: bson.M{
				"email": 1,
			},
		},
	)
	if err != nil {
		logger.Error.Println(err)
	}

	_, err = dbService.collectionRefSurvey().Indexes().CreateOne(
		ctx, mongo.IndexModel{
			Keys: bson.M{
				"submittedAt": -1,
			},
		},
	)
	if err != nil {
		logger.Error.Println(err)
	}
}

// AddSurveyResponse stores the response as is. Several responses for
// one email are allowed.
func (dbService *BetaDBService) AddSurveyResponse(parent context.Context, response types.SurveyResponse) (string, error) {
	ctx, cancel := dbService.getContext(parent)
	defer cancel()

	if response.SubmittedAt == 0 {
		response.SubmittedAt = time.Now().Unix()
	}

	res, err := dbService.collectionRefSurvey().InsertOne(ctx, response)
	if err != nil {
		return "", err
	}
	id := res.InsertedID.(primitive.ObjectID)
	return id.Hex(), err
}
