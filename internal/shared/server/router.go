package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"assessment-backend/internal/assessments"
	"assessment-backend/internal/enrich"
	openaiclient "assessment-backend/internal/enrich/openai"
	"assessment-backend/internal/progress"
	"assessment-backend/internal/shared/config"
	"assessment-backend/internal/shared/metrics"
	"assessment-backend/internal/shared/server/middleware"
	"assessment-backend/internal/shared/server/respond"
	"assessment-backend/internal/shared/storage/db"
	localstore "assessment-backend/internal/shared/storage/object/local"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	// Dependencies
	store := localstore.New(cfg.UploadsDir)
	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				log.Printf("failed to run migrations, falling back to memory: %v", err)
				dbConn = nil
			}
		}
		sqlDB = dbConn
	}

	enricher := &enrich.Enricher{Timeout: cfg.EnrichTimeout}
	if cfg.OpenAIAPIKey != "" {
		client, err := openaiclient.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
		if err != nil {
			log.Printf("openai client disabled: %v", err)
		} else {
			enricher.Client = client
		}
	}

	var assessmentRepo assessments.Repo
	if sqlDB != nil {
		assessmentRepo = &assessments.PGRepo{DB: sqlDB}
	} else {
		assessmentRepo = assessments.NewMemoryRepo()
	}
	assessmentSvc := &assessments.Service{Repo: assessmentRepo, Store: store, Enricher: enricher}
	assessmentHandler := assessments.NewHandler(assessmentSvc)

	var progressRepo progress.Repo
	if sqlDB != nil {
		progressRepo = &progress.PGRepo{DB: sqlDB}
	} else {
		progressRepo = progress.NewMemoryRepo()
	}
	progressSvc := &progress.Service{Repo: progressRepo}
	progressHandler := progress.NewHandler(progressSvc)

	r.GET("/metrics", metrics.Handler())
	r.Static("/uploads", cfg.UploadsDir)

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	// Health is registered before the limiter so probes are never throttled.
	limiter := middleware.NewRateLimiter(nil)
	api.Use(middleware.RateLimit(middleware.RateLimitRule{Rate: 5, Burst: 20}, limiter))
	assessmentHandler.RegisterRoutes(api)
	progressHandler.RegisterRoutes(api)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":3000"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
