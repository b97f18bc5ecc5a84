package db

import (
	"context"
	"errors"
	"time"

	"github.com/coneno/logger"
	"github.com/tsuru/beta/pkg/types"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNotFound = errors.New("document not found")

type BetaDBService struct {
	DBClient *mongo.Client
	timeout  int
	DBName   string
}

func NewBetaDBService(configs types.DBConfig) *BetaDBService {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Timeout)*time.Second)
	defer cancel()

	dbClient, err := mongo.Connect(ctx,
		options.Client().ApplyURI(configs.URI),
		options.Client().SetMaxConnIdleTime(time.Duration(configs.IdleConnTimeout)*time.Second),
		options.Client().SetMaxPoolSize(configs.MaxPoolSize),
	)
	if err != nil {
		logger.Error.Fatal(err)
	}

	ctx, conCancel := context.WithTimeout(context.Background(), time.Duration(configs.Timeout)*time.Second)
	err = dbClient.Ping(ctx, nil)
	defer conCancel()
	if err != nil {
		logger.Error.Fatal("fail to connect to DB: " + err.Error())
	}

	return &BetaDBService{
		DBClient: dbClient,
		timeout:  configs.Timeout,
		DBName:   configs.DBName,
	}
}

func (dbService *BetaDBService) Close() error {
	ctx, cancel := dbService.getContext(context.Background())
	defer cancel()
	return dbService.DBClient.Disconnect(ctx)
}

// collections
func (dbService *BetaDBService) collectionRefUsers() *mongo.Collection {
	return dbService.DBClient.Database(dbService.DBName).Collection("users")
}

func (dbService *BetaDBService) collectionRefSurvey() *mongo.Collection {
	return dbService.DBClient.Database(dbService.DBName).Collection("survey")
}

// DB utils
func (dbService *BetaDBService) getContext(parent context.Context) (ctx context.Context, cancel context.CancelFunc) {
	return context.WithTimeout(parent, time.Duration(dbService.timeout)*time.Second)
}
