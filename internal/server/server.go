// Package server contains the HTTP handlers and route wiring for the API.
package server

import (
	"fmt"
	"time"

	"juicebox/internal/config"
	"juicebox/internal/database"
	"juicebox/internal/middleware"
	"juicebox/internal/repository"
	"juicebox/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config      *config.Config
	db          *gorm.DB
	redis       *redis.Client
	userRepo    repository.UserRepository
	postRepo    repository.PostRepository
	tagRepo     repository.TagRepository
	userService *service.UserService
	postService *service.PostService
	tagService  *service.TagService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	redisClient := middleware.NewRedisClient(cfg.RedisURL)

	return NewServerWithDeps(cfg, db, redisClient), nil
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis itself.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	tagRepo := repository.NewTagRepository(db)

	s := &Server{
		config:   cfg,
		db:       db,
		redis:    redisClient,
		userRepo: userRepo,
		postRepo: postRepo,
		tagRepo:  tagRepo,
	}
	s.userService = service.NewUserService(userRepo)
	s.postService = service.NewPostService(postRepo)
	s.tagService = service.NewTagService(tagRepo, postRepo)

	middleware.InitMiddleware(cfg)
	return s
}

// SetupMiddleware registers the global middleware chain.
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())
	app.Use(requestid.New())
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.ContextMiddleware())
	app.Use(middleware.RequestLogger())
}

// SetupRoutes registers all API routes.
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	users := api.Group("/users")
	users.Post("/register", middleware.RateLimit(s.redis, 5, time.Minute, "register"), s.Register)
	users.Post("/login", middleware.RateLimit(s.redis, 10, time.Minute, "login"), s.Login)
	users.Get("/", s.GetUsers)
	users.Get("/me", middleware.AuthRequired, s.GetMe)
	users.Patch("/me", middleware.AuthRequired, s.UpdateMe)
	users.Get("/:userId/posts", s.GetUserPosts)

	posts := api.Group("/posts")
	posts.Get("/", s.GetPosts)
	posts.Post("/", middleware.AuthRequired, s.CreatePost)
	posts.Get("/:postId", s.GetPost)
	posts.Patch("/:postId", middleware.AuthRequired, s.UpdatePost)
	posts.Delete("/:postId", middleware.AuthRequired, s.DeletePost)

	tags := api.Group("/tags")
	tags.Get("/", s.GetTags)
	tags.Get("/:tagName/posts", s.GetPostsByTagName)
}
