package sessions

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const (
	injectSessionKey = "session"
	destroyedKey     = "session_destroyed"
	flashKey         = "flash"
)

// Session is the server side session of a browser. Its ID doubles as the
// client ID that scopes the client's local storage and submit locks.
type Session struct {
	*session.Session
}

func (s *Session) ClientID() string {
	return s.ID()
}

func Get(ctx *fiber.Ctx) *Session {
	sess, _ := ctx.Locals(injectSessionKey).(*session.Session)
	return &Session{Session: sess}
}

// SetFlash stores a message shown once on the next rendered page.
func SetFlash(ctx *fiber.Ctx, msg string) {
	Get(ctx).Set(flashKey, msg)
}

// PopFlash returns the pending flash message and clears it.
func PopFlash(ctx *fiber.Ctx) string {
	sess := Get(ctx)
	msg, _ := sess.Get(flashKey).(string)
	if msg != "" {
		sess.Delete(flashKey)
	}
	return msg
}

func Destroy(ctx *fiber.Ctx) error {
	ctx.Locals(destroyedKey, true)
	return Get(ctx).Destroy()
}

func SessionMiddleware(store *session.Store) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		sess, err := store.Get(ctx)
		if err != nil {
			return err
		}

		ctx.Locals(injectSessionKey, sess)
		if err := ctx.Next(); err != nil {
			return err
		}

		if destroyed, _ := ctx.Locals(destroyedKey).(bool); destroyed {
			return nil
		}
		return sess.Save()
	}
}
