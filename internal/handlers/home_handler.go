package handlers

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/khanghh/authportal/internal/authapi"
	"github.com/khanghh/authportal/internal/middlewares/csrf"
	"github.com/khanghh/authportal/internal/middlewares/sessions"
	"github.com/khanghh/authportal/internal/render"
	"github.com/khanghh/authportal/internal/store"
	"github.com/khanghh/authportal/params"
)

type HomeHandler struct {
	storage ClientStorage
}

func NewHomeHandler(storage ClientStorage) *HomeHandler {
	return &HomeHandler{storage: storage}
}

func (h *HomeHandler) GetHome(ctx *fiber.Ctx) error {
	session := sessions.Get(ctx)
	storage := h.storage.For(session.ClientID())

	token, err := storage.GetItem(params.StorageKeyToken)
	if errors.Is(err, store.ErrNotFound) {
		return ctx.Redirect("/login")
	} else if err != nil {
		return err
	}

	username, err := storage.GetItem(params.StorageKeyUsername)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}

	pageData := render.HomePageData{
		CSRFToken: csrf.Get(session).Token,
		Username:  username,
		Token:     token,
	}
	claims, err := authapi.ParseTokenClaims(token)
	if err != nil {
		slog.Debug("Token claims unavailable", "error", err)
		return render.RenderHome(ctx, pageData)
	}
	if claims.Expired(time.Now()) {
		slog.Info("Stored token expired", "username", username, "expiresAt", claims.ExpiresAt)
		return forceLogout(ctx, storage)
	}
	if pageData.Username == "" {
		pageData.Username = claims.Username
	}
	pageData.IssuedAt = claims.IssuedAt
	pageData.ExpiresAt = claims.ExpiresAt
	return render.RenderHome(ctx, pageData)
}
