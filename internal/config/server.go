package config

import (
	"fmt"
	"os"

	"VoicePlay/database/postgres"
	playbackHandler "VoicePlay/internal/api/playback/handler"
	playbackRepository "VoicePlay/internal/api/playback/repository"
	playbackService "VoicePlay/internal/api/playback/service"
	"VoicePlay/internal/middleware"
	"VoicePlay/pkg/inject"
	"VoicePlay/pkg/lexicon"
	playerPkg "VoicePlay/pkg/player"
	"VoicePlay/pkg/redis"
	surfacePkg "VoicePlay/pkg/surface"
	"VoicePlay/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine       *fiber.App
	db           *sqlx.DB
	log          *logrus.Logger
	middleware   middleware.Middleware
	validator    *validator.Validate
	utils        utils.IUtils
	handlers     []handler
	redisServer  redis.IRedis
	playerBridge playerPkg.IPlayer
	surfaceHub   surfacePkg.IHub
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithPlayerBridge(player playerPkg.IPlayer) ServerOption {
	return func(s *Server) error {
		s.playerBridge = player
		return nil
	}
}

func WithSurfaceHub(hub surfacePkg.IHub) ServerOption {
	return func(s *Server) error {
		s.surfaceHub = hub
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Playback Domain
	playbackRepo := playbackRepository.New(s.db, s.log)
	matcher := lexicon.NewMatcher()
	generator := inject.NewGenerator()
	playbackServices := playbackService.New(s.log, playbackRepo, matcher, generator, s.playerBridge, s.surfaceHub, s.redisServer, s.utils)
	playbackHandlers := playbackHandler.New(s.log, s.validator, s.middleware, playbackServices, s.surfaceHub)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, playbackHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())
	s.engine.Use(s.middleware.NewRateLimiter)

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	if err := s.engine.Listen(fmt.Sprintf(":%s", port)); err != nil {
		if s.playerBridge != nil {
			s.playerBridge.Close()
		}
		return err
	}

	return nil
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
