package router

import (
	"log"

	"firebase.google.com/go/v4/auth"
	"github.com/jaehyo-dev/school-hub/backend/internal/handlers"
	"github.com/jaehyo-dev/school-hub/backend/internal/middleware"
	"github.com/jaehyo-dev/school-hub/backend/internal/models"
	"github.com/jaehyo-dev/school-hub/backend/internal/policy"
	"github.com/jaehyo-dev/school-hub/backend/internal/repositories"
	"github.com/jaehyo-dev/school-hub/backend/pkg/config"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, cfg *config.Config, pgdb *gorm.DB, mgClient *mongo.Client, firebaseAuthClient *auth.Client) {
	// AutoMigrate PostgreSQL models
	err := pgdb.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
		&models.Report{},
		&models.AdminAction{},
		&models.TeacherProfile{},
		&models.Suggestion{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(pgdb)
	postRepo := repositories.NewPostgresPostRepository(pgdb)
	commentRepo := repositories.NewPostgresCommentRepository(pgdb)
	likeRepo := repositories.NewPostgresLikeRepository(pgdb)
	reportRepo := repositories.NewPostgresReportRepository(pgdb)
	teacherRepo := repositories.NewPostgresTeacherRepository(pgdb)
	suggestionRepo := repositories.NewPostgresSuggestionRepository(pgdb)
	articleRepo := repositories.NewMongoArticleRepository(mgClient.Database("schoolhub"))

	resolver := policy.NewResolver(userRepo, cfg.SchoolEmailDomains)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(userRepo, resolver, firebaseAuthClient)
	userHandler := handlers.NewUserHandler(userRepo, resolver)
	postHandler := handlers.NewPostHandler(postRepo, commentRepo, resolver)
	commentHandler := handlers.NewCommentHandler(commentRepo, postRepo, resolver)
	likeHandler := handlers.NewLikeHandler(likeRepo, postRepo, resolver)
	reportHandler := handlers.NewReportHandler(reportRepo, resolver)
	adminHandler := handlers.NewAdminHandler(userRepo, reportRepo, suggestionRepo, resolver)
	suggestionHandler := handlers.NewSuggestionHandler(suggestionRepo, resolver)
	teacherHandler := handlers.NewTeacherHandler(teacherRepo, userRepo, resolver)
	newsHandler := handlers.NewArticleHandler(articleRepo, models.ArticleNews, resolver)
	clubHandler := handlers.NewArticleHandler(articleRepo, models.ArticleClub, resolver)
	webhookHandler := handlers.NewWebhookHandler(userRepo, resolver, cfg.WebhookSecret)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Identity provider webhook (shared secret, no JWT) ---
	webhookHandler.RegisterWebhookRoutes(e.Group("/api/v1"))
	log.Println("Identity webhook configured.")

	// --- Public routes (anonymous viewers get redacted views) ---
	public := e.Group("/api/v1")
	public.Use(middleware.OptionalJWTAuthMiddleware())
	postHandler.RegisterPublicRoutes(public)
	commentHandler.RegisterPublicRoutes(public)
	likeHandler.RegisterPublicRoutes(public)
	teacherHandler.RegisterPublicRoutes(public)
	newsHandler.RegisterPublicRoutes(public, "/news")
	clubHandler.RegisterPublicRoutes(public, "/clubs")
	log.Println("Public routes configured.")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware())
	log.Println("JWT authentication middleware applied to /api/v1 group.")

	userHandler.RegisterProfileRoutes(api)
	postHandler.RegisterPostRoutes(api)
	commentHandler.RegisterCommentRoutes(api)
	likeHandler.RegisterLikeRoutes(api)
	reportHandler.RegisterReportRoutes(api)
	suggestionHandler.RegisterSuggestionRoutes(api)
	teacherHandler.RegisterTeacherRoutes(api)
	newsHandler.RegisterArticleRoutes(api, "/news")
	clubHandler.RegisterArticleRoutes(api, "/clubs")
	adminHandler.RegisterAdminRoutes(api)

	log.Println("All routes configured.")
}
