package systemHandler

import (
	systemService "PortfolioBackend/internal/api/system/service"
	"PortfolioBackend/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type SystemHandler struct {
	log           *logrus.Logger
	middleware    middleware.Middleware
	systemService systemService.ISystemService
}

func New(
	log *logrus.Logger,
	middleware middleware.Middleware,
	ss systemService.ISystemService,
) *SystemHandler {
	return &SystemHandler{
		log:           log,
		middleware:    middleware,
		systemService: ss,
	}
}

// Start registers on the engine root: these paths predate the /api/v1 group
// and clients depend on them staying where they are.
func (h *SystemHandler) Start(srv fiber.Router) {
	srv.Get("/", h.Root)
	srv.Get("/api/hello", h.Hello)
	srv.Get("/test", h.GetStatus)
}
