package forms

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/khanghh/authportal/internal/authapi"
	"github.com/khanghh/authportal/internal/store"
	"github.com/khanghh/authportal/internal/validation"
	"github.com/khanghh/authportal/params"
)

const (
	formLogin  = "login"
	formSignup = "signup"
)

type AuthClient interface {
	Login(ctx context.Context, req authapi.LoginRequest) (*authapi.LoginResponse, error)
	Signup(ctx context.Context, req authapi.SignupRequest) (*authapi.SignupResponse, error)
}

// Outcome is the result of a submit. Errors holds the fresh validation pass,
// FormError a message about the whole form. A non-empty Redirect means the
// submit succeeded.
type Outcome struct {
	Errors    validation.Result
	FormError string
	Redirect  string
	Flash     string
}

func (o Outcome) Succeeded() bool {
	return o.Redirect != ""
}

// Submitter validates forms and sends the clean ones to the auth API. At most
// one submit per client and form is in flight at any time.
type Submitter struct {
	client  AuthClient
	locker  store.Locker
	lockTTL time.Duration
}

func (s *Submitter) acquire(ctx context.Context, clientID string, form string) (store.Lock, error) {
	return s.locker.TryLock(ctx, clientID+":"+form, s.lockTTL)
}

func (s *Submitter) release(ctx context.Context, lock store.Lock) {
	if err := lock.Release(context.WithoutCancel(ctx)); err != nil {
		slog.Warn("Could not release submit lock", "error", err)
	}
}

// SubmitLogin validates form and, when clean, logs in and stores the returned
// token in storage.
func (s *Submitter) SubmitLogin(ctx context.Context, clientID string, storage store.LocalStorage, form LoginForm) (Outcome, error) {
	outcome := Outcome{Errors: form.Validate()}
	if !outcome.Errors.Submittable() {
		return outcome, nil
	}

	lock, err := s.acquire(ctx, clientID, formLogin)
	if errors.Is(err, store.ErrLocked) {
		outcome.FormError = MsgSubmitInProgress
		return outcome, nil
	} else if err != nil {
		return outcome, err
	}
	defer s.release(ctx, lock)

	resp, err := s.client.Login(ctx, form.Request())
	if err != nil {
		slog.Info("Login failed", "username", form.Username, "error", err)
		outcome.FormError = MsgLoginFailed
		return outcome, nil
	}

	if err := storage.SetItem(params.StorageKeyToken, resp.Token); err != nil {
		return outcome, err
	}
	slog.Info("Login completed", "username", form.Username)
	outcome.Redirect = params.LoginRedirectURL
	return outcome, nil
}

// SubmitSignup validates form and, when clean, registers the account and
// stores the returned token and username in storage.
func (s *Submitter) SubmitSignup(ctx context.Context, clientID string, storage store.LocalStorage, form SignupForm) (Outcome, error) {
	outcome := Outcome{Errors: form.Validate()}
	if !outcome.Errors.Submittable() {
		return outcome, nil
	}
	req, ok := form.Request()
	if !ok {
		outcome.Errors[validation.FieldAge] = validation.MsgAgeNotInteger
		return outcome, nil
	}

	lock, err := s.acquire(ctx, clientID, formSignup)
	if errors.Is(err, store.ErrLocked) {
		outcome.FormError = MsgSubmitInProgress
		return outcome, nil
	} else if err != nil {
		return outcome, err
	}
	defer s.release(ctx, lock)

	resp, err := s.client.Signup(ctx, req)
	if err != nil {
		slog.Info("Signup failed", "username", req.Username, "error", err)
		if msg, ok := authapi.RejectionMessage(err); ok {
			outcome.FormError = msg
		} else {
			outcome.FormError = MsgServerError
		}
		return outcome, nil
	}

	if err := storage.SetItem(params.StorageKeyToken, resp.Token); err != nil {
		return outcome, err
	}
	if err := storage.SetItem(params.StorageKeyUsername, resp.Username); err != nil {
		return outcome, err
	}
	slog.Info("Signup completed", "username", resp.Username)
	outcome.Redirect = params.SignupRedirectURL
	outcome.Flash = MsgSignupCompleted
	return outcome, nil
}

func NewSubmitter(client AuthClient, locker store.Locker, lockTTL time.Duration) *Submitter {
	if lockTTL <= 0 {
		lockTTL = params.SubmitLockExpiration
	}
	return &Submitter{
		client:  client,
		locker:  locker,
		lockTTL: lockTTL,
	}
}
