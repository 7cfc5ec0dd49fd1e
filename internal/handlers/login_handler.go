package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/khanghh/authportal/internal/forms"
	"github.com/khanghh/authportal/internal/middlewares/csrf"
	"github.com/khanghh/authportal/internal/middlewares/sessions"
	"github.com/khanghh/authportal/internal/render"
)

// LoginHandler serves the login form and logout.
type LoginHandler struct {
	submitter FormSubmitter
	storage   ClientStorage
}

// NewLoginHandler returns a new instance of LoginHandler.
func NewLoginHandler(submitter FormSubmitter, storage ClientStorage) *LoginHandler {
	return &LoginHandler{
		submitter: submitter,
		storage:   storage,
	}
}

func (h *LoginHandler) GetLogin(ctx *fiber.Ctx) error {
	session := sessions.Get(ctx)
	form := forms.LoginForm{}
	return render.RenderLogin(ctx, render.LoginPageData{
		CSRFToken:   csrf.Get(session).Token,
		Submittable: form.Validate().Submittable(),
		FlashMsg:    sessions.PopFlash(ctx),
	})
}

func (h *LoginHandler) PostLogin(ctx *fiber.Ctx) error {
	var form forms.LoginForm
	if err := parseForm(ctx, &form); err != nil {
		return err
	}

	session := sessions.Get(ctx)
	pageData := render.LoginPageData{
		CSRFToken: csrf.Get(session).Token,
		Username:  form.Username,
	}

	if !csrf.Verify(ctx) {
		pageData.FormErrors = form.Validate()
		pageData.Submittable = pageData.FormErrors.Submittable()
		pageData.ErrorMsg = MsgInvalidRequest
		return render.RenderLogin(ctx, pageData)
	}

	storage := h.storage.For(session.ClientID())
	outcome, err := h.submitter.SubmitLogin(ctx.Context(), session.ClientID(), storage, form)
	if err != nil {
		return err
	}
	if outcome.Succeeded() {
		return redirect(ctx, outcome.Redirect)
	}

	pageData.FormErrors = outcome.Errors
	pageData.Submittable = outcome.Errors.Submittable()
	pageData.ErrorMsg = outcome.FormError
	return render.RenderLogin(ctx, pageData)
}

func (h *LoginHandler) PostValidate(ctx *fiber.Ctx) error {
	var form forms.LoginForm
	if err := parseForm(ctx, &form); err != nil {
		return err
	}
	return sendValidationResult(ctx, form.Validate())
}

func (h *LoginHandler) PostLogout(ctx *fiber.Ctx) error {
	if !csrf.Verify(ctx) {
		return fiber.ErrForbidden
	}
	session := sessions.Get(ctx)
	return forceLogout(ctx, h.storage.For(session.ClientID()))
}
