package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coneno/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/tsuru/beta/pkg/countries"
	"github.com/tsuru/beta/pkg/db"
	"github.com/tsuru/beta/pkg/http/handlers"
	mw "github.com/tsuru/beta/pkg/http/middlewares"
	"github.com/tsuru/beta/pkg/i18n"
	"github.com/tsuru/beta/pkg/oauth"
	"github.com/tsuru/beta/pkg/signing"
	"github.com/tsuru/beta/web"
)

const sessionName = "beta"

func healthCheckHandle(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func setupRouter(conf Config, dbPool db.Pool) (*gin.Engine, error) {
	tmpl, err := web.Templates(conf.S3Bucket)
	if err != nil {
		return nil, err
	}

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:  conf.AllowOrigins,
		AllowMethods:  []string{"POST", "GET"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Content-Length"},
		ExposeHeaders: []string{"Content-Type", "Content-Length", mw.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))
	router.Use(mw.RequestID())
	router.Use(mw.Locale())
	router.Use(sessions.Sessions(sessionName, cookie.NewStore([]byte(conf.SecretKey))))
	router.SetHTMLTemplate(tmpl)

	if conf.S3Bucket == "" {
		router.StaticFS("/static", web.Static())
	}
	router.GET("/healthz", healthCheckHandle)

	connectors := handlers.Connectors{
		GitHub:   oauth.NewGitHub(conf.OAuthConfig.GitHubClientID, conf.OAuthConfig.GitHubClientSecret),
		Facebook: oauth.NewFacebook(),
		Google:   oauth.NewGoogle(conf.OAuthConfig.GoogleAPIKey, conf.OAuthConfig.GoogleUserIP),
	}
	apiHandlers := handlers.NewHTTPHandler(
		dbPool,
		signing.NewSigner(conf.SignKey),
		connectors,
		countries.Build(i18n.Supported()...),
		conf.OAuthConfig,
	)

	root := router.Group("")
	apiHandlers.AddPagesAPI(root)
	apiHandlers.AddSignupAPI(root)
	apiHandlers.AddRegisterAPI(root)
	return router, nil
}

func main() {
	conf := initConfig()
	if !conf.GinDebugMode {
		gin.SetMode(gin.ReleaseMode)
	}
	logger.SetLevel(conf.LogLevel)
	logger.Info.Println("Starting beta signup site")

	if conf.SignKey == "" {
		logger.Warning.Println("SIGN_KEY is empty, survey signatures only depend on the email")
	}

	dbService := db.NewBetaDBService(conf.DBConfig)
	dbService.CreateIndexesForUsers()
	dbService.CreateIndexesForSurvey()

	router, err := setupRouter(conf, dbService)
	if err != nil {
		logger.Error.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := &http.Server{
		Addr:    ":" + conf.Port,
		Handler: router,
	}
	go func() {
		logger.Info.Printf("beta signup site is listening on port %s", conf.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error.Fatal(err)
		}
	}()

	<-ctx.Done()
	logger.Info.Println("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error.Printf("graceful shutdown failed: %v", err)
	}
	if err := dbService.Close(); err != nil {
		logger.Error.Printf("closing db client: %v", err)
	}
	logger.Info.Println("stopped")
}
