package config

import (
	"PortfolioBackend/database/postgres"
	contactHandler "PortfolioBackend/internal/api/contact/handler"
	contactService "PortfolioBackend/internal/api/contact/service"
	portfolioHandler "PortfolioBackend/internal/api/portfolio/handler"
	portfolioService "PortfolioBackend/internal/api/portfolio/service"
	systemHandler "PortfolioBackend/internal/api/system/handler"
	systemService "PortfolioBackend/internal/api/system/service"
	"PortfolioBackend/internal/entity"
	"PortfolioBackend/internal/middleware"
	redisPkg "PortfolioBackend/pkg/redis"
	smtpPkg "PortfolioBackend/pkg/smtp"
	"fmt"
	"os"

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
	profile      entity.Profile
	redisServer  redisPkg.IRedis
	smtpMailer   smtpPkg.ItfSmtp
	handlers     []handler
	rootHandlers []handler
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
				s.log.Errorf("Failed to configure database pool: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithProfile(profile entity.Profile) ServerOption {
	return func(s *Server) error {
		s.profile = profile
		return nil
	}
}

func WithRedisServer(redisServer redisPkg.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithSMTPMailer(smtpMailer smtpPkg.ItfSmtp) ServerOption {
	return func(s *Server) error {
		s.smtpMailer = smtpMailer
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

func (s *Server) RegisterHandler() {
	// Portfolio domain
	portfolioServices := portfolioService.New(s.log, s.profile, s.redisServer)
	portfolioHandlers := portfolioHandler.New(s.log, s.validator, s.middleware, portfolioServices)

	// Contact domain
	contactServices := contactService.New(s.log, s.smtpMailer)
	contactHandlers := contactHandler.New(s.log, s.validator, s.middleware, contactServices)

	// System domain (root-level probe endpoints)
	systemServices := systemService.New(s.log, s.db, s.redisServer)
	systemHandlers := systemHandler.New(s.log, s.middleware, systemServices)

	s.handlers = append(s.handlers, portfolioHandlers, contactHandlers)
	s.rootHandlers = append(s.rootHandlers, systemHandlers)
}

func (s *Server) Run() error {
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())

	router := s.engine.Group("/api/v1")

	for _, h := range s.rootHandlers {
		h.Start(s.engine)
	}
	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}
