package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/khanghh/authportal/internal/forms"
	"github.com/khanghh/authportal/internal/middlewares/csrf"
	"github.com/khanghh/authportal/internal/middlewares/sessions"
	"github.com/khanghh/authportal/internal/render"
)

type SignupHandler struct {
	submitter FormSubmitter
	storage   ClientStorage
}

func NewSignupHandler(submitter FormSubmitter, storage ClientStorage) *SignupHandler {
	return &SignupHandler{
		submitter: submitter,
		storage:   storage,
	}
}

func signupPageData(form forms.SignupForm) render.SignupPageData {
	return render.SignupPageData{
		Name:  form.Name,
		ID:    form.ID,
		Email: form.Email,
		Age:   form.Age,
	}
}

func (h *SignupHandler) GetSignup(ctx *fiber.Ctx) error {
	form := forms.SignupForm{}
	pageData := signupPageData(form)
	pageData.CSRFToken = csrf.Get(sessions.Get(ctx)).Token
	pageData.Submittable = form.Validate().Submittable()
	return render.RenderSignup(ctx, pageData)
}

func (h *SignupHandler) PostSignup(ctx *fiber.Ctx) error {
	var form forms.SignupForm
	if err := parseForm(ctx, &form); err != nil {
		return err
	}

	session := sessions.Get(ctx)
	pageData := signupPageData(form)
	pageData.CSRFToken = csrf.Get(session).Token

	if !csrf.Verify(ctx) {
		pageData.FormErrors = form.Validate()
		pageData.Submittable = pageData.FormErrors.Submittable()
		pageData.ErrorMsg = MsgInvalidRequest
		return render.RenderSignup(ctx, pageData)
	}

	storage := h.storage.For(session.ClientID())
	outcome, err := h.submitter.SubmitSignup(ctx.Context(), session.ClientID(), storage, form)
	if err != nil {
		return err
	}
	if outcome.Succeeded() {
		if outcome.Flash != "" {
			sessions.SetFlash(ctx, outcome.Flash)
		}
		return redirect(ctx, outcome.Redirect)
	}

	pageData.FormErrors = outcome.Errors
	pageData.Submittable = outcome.Errors.Submittable()
	pageData.ErrorMsg = outcome.FormError
	return render.RenderSignup(ctx, pageData)
}

func (h *SignupHandler) PostValidate(ctx *fiber.Ctx) error {
	var form forms.SignupForm
	if err := parseForm(ctx, &form); err != nil {
		return err
	}
	return sendValidationResult(ctx, form.Validate())
}
