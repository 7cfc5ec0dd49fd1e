package middlewares

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/khanghh/authportal/internal/render"
)

func ErrorHandler(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}
	if code >= fiber.StatusInternalServerError {
		slog.Error("Unhandled error", "code", code, "path", ctx.Path(), "error", err)
	} else {
		slog.Debug("Request failed", "code", code, "path", ctx.Path(), "error", err)
	}
	return render.RenderError(ctx, code)
}
