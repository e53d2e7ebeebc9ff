package portfolioHandler

import (
	portfolioService "PortfolioBackend/internal/api/portfolio/service"
	"PortfolioBackend/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type PortfolioHandler struct {
	log              *logrus.Logger
	validator        *validator.Validate
	middleware       middleware.Middleware
	portfolioService portfolioService.IPortfolioService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	ps portfolioService.IPortfolioService,
) *PortfolioHandler {
	return &PortfolioHandler{
		log:              log,
		validator:        validate,
		middleware:       middleware,
		portfolioService: ps,
	}
}

func (h *PortfolioHandler) Start(srv fiber.Router) {
	portfolio := srv.Group("/portfolio")

	portfolio.Get("", h.GetProfile)
	portfolio.Get("/skills", h.GetSkills)
	portfolio.Get("/projects", h.GetProjects)

	portfolio.Post("/chat", h.Chat)
}
