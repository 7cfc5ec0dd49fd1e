package render

import (
	"time"

	"github.com/khanghh/authportal/internal/validation"
)

type LoginPageData struct {
	CSRFToken   string
	Username    string
	FormErrors  validation.Result
	Submittable bool
	ErrorMsg    string
	FlashMsg    string
}

type SignupPageData struct {
	CSRFToken   string
	Name        string
	ID          string
	Email       string
	Age         string
	FormErrors  validation.Result
	Submittable bool
	ErrorMsg    string
}

type HomePageData struct {
	CSRFToken string
	Username  string
	Token     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
