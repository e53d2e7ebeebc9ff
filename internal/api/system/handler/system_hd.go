package systemHandler

import (
	"PortfolioBackend/internal/api/system"
	contextPkg "PortfolioBackend/pkg/context"
	"PortfolioBackend/pkg/handlerUtil"
	"PortfolioBackend/pkg/log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *SystemHandler) Root(ctx *fiber.Ctx) error {
	return ctx.JSON(system.MessageResponse{
		Message: "Hello from the portfolio backend!",
	})
}

func (h *SystemHandler) Hello(ctx *fiber.Ctx) error {
	return ctx.JSON(system.MessageResponse{
		Message: "Hello from the backend API!",
	})
}

func (h *SystemHandler) GetStatus(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing status probe request")

	result, err := h.systemService.GetStatus(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_status")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}
