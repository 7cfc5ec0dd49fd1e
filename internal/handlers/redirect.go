package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/khanghh/authportal/internal/middlewares/sessions"
	"github.com/khanghh/authportal/internal/store"
	"github.com/khanghh/authportal/params"
)

// redirect answers a form post with 303 so the browser follows up with GET.
func redirect(ctx *fiber.Ctx, location string) error {
	return ctx.Redirect(location, fiber.StatusSeeOther)
}

// clearClient forgets everything stored for the client and ends its session.
func clearClient(ctx *fiber.Ctx, storage store.LocalStorage) error {
	for _, key := range []string{params.StorageKeyToken, params.StorageKeyUsername} {
		if err := storage.RemoveItem(key); err != nil {
			return err
		}
	}
	return sessions.Destroy(ctx)
}

func forceLogout(ctx *fiber.Ctx, storage store.LocalStorage) error {
	if err := clearClient(ctx, storage); err != nil {
		return err
	}
	return redirect(ctx, "/login")
}
