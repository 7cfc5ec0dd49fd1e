package handlers

import (
	"context"

	"github.com/khanghh/authportal/internal/forms"
	"github.com/khanghh/authportal/internal/store"
)

type FormSubmitter interface {
	SubmitLogin(ctx context.Context, clientID string, storage store.LocalStorage, form forms.LoginForm) (forms.Outcome, error)
	SubmitSignup(ctx context.Context, clientID string, storage store.LocalStorage, form forms.SignupForm) (forms.Outcome, error)
}

type ClientStorage interface {
	For(clientID string) store.LocalStorage
}
