package main

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/coneno/logger"
	"github.com/tsuru/beta/pkg/types"
)

// envConfig mirrors the environment the site is deployed with.
type envConfig struct {
	SecretKey    string   `env:"SECRET_KEY" envDefault:"secret"`
	Debug        int      `env:"BETA_DEBUG" envDefault:"1"`
	S3Bucket     string   `env:"TSURU_S3_BUCKET"`
	Port         string   `env:"LISTEN_PORT" envDefault:"8080"`
	LogLevel     string   `env:"LOG_LEVEL" envDefault:"info"`
	AllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envSeparator:"," envDefault:"*"`

	MongoURI          string `env:"MONGO_URI" envDefault:"localhost:27017"`
	MongoUser         string `env:"MONGO_USER"`
	MongoPassword     string `env:"MONGO_PASSWORD"`
	MongoDatabaseName string `env:"MONGO_DATABASE_NAME" envDefault:"beta_test"`
	DBTimeout         int    `env:"DB_TIMEOUT" envDefault:"10"`
	DBIdleConnTimeout int    `env:"DB_IDLE_CONN_TIMEOUT" envDefault:"45"`
	DBMaxPoolSize     uint64 `env:"DB_MAX_POOL_SIZE" envDefault:"8"`

	GitHubClientID     string `env:"GITHUB_CLIENT_ID"`
	GitHubClientSecret string `env:"GITHUB_CLIENT_SECRET"`
	FacebookAppID      string `env:"FACEBOOK_APP_ID"`
	GoogleAPIKey       string `env:"GOOGLE_API_KEY"`
	GoogleUserIP       string `env:"GOOGLE_USER_IP"`
	SignKey            string `env:"SIGN_KEY"`
}

// Config is the structure that holds all global configuration data
type Config struct {
	GinDebugMode bool
	Port         string
	AllowOrigins []string
	SecretKey    string
	S3Bucket     string
	SignKey      string
	LogLevel     logger.LogLevel
	DBConfig     types.DBConfig
	OAuthConfig  types.OAuthConfig
}

func initConfig() Config {
	conf, err := loadConfig()
	if err != nil {
		logger.Error.Fatal(err)
	}
	return conf
}

func loadConfig() (Config, error) {
	var raw envConfig
	if err := env.Parse(&raw); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	conf := Config{
		GinDebugMode: raw.Debug != 0,
		Port:         raw.Port,
		AllowOrigins: raw.AllowOrigins,
		SecretKey:    raw.SecretKey,
		S3Bucket:     raw.S3Bucket,
		SignKey:      raw.SignKey,
		LogLevel:     getLogLevel(raw.LogLevel),
		DBConfig: types.DBConfig{
			URI:             mongoURI(raw.MongoURI, raw.MongoUser, raw.MongoPassword),
			DBName:          raw.MongoDatabaseName,
			Timeout:         raw.DBTimeout,
			IdleConnTimeout: raw.DBIdleConnTimeout,
			MaxPoolSize:     raw.DBMaxPoolSize,
		},
		OAuthConfig: types.OAuthConfig{
			GitHubClientID:     raw.GitHubClientID,
			GitHubClientSecret: raw.GitHubClientSecret,
			FacebookAppID:      raw.FacebookAppID,
			GoogleAPIKey:       raw.GoogleAPIKey,
			GoogleUserIP:       raw.GoogleUserIP,
		},
	}
	return conf, nil
}

func getLogLevel(level string) logger.LogLevel {
	switch level {
	case "debug":
		return logger.LEVEL_DEBUG
	case "info":
		return logger.LEVEL_INFO
	case "error":
		return logger.LEVEL_ERROR
	case "warning":
		return logger.LEVEL_WARNING
	default:
		return logger.LEVEL_INFO
	}
}

// mongoURI builds a connection string from a host:port address and
// optional credentials.
func mongoURI(hostPort, username, password string) string {
	hostPort = strings.TrimPrefix(hostPort, "mongodb://")
	if username == "" {
		return "mongodb://" + hostPort
	}
	u := url.URL{
		Scheme: "mongodb",
		User:   url.UserPassword(username, password),
		Host:   hostPort,
	}
	return u.String()
}
