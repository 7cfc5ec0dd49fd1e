package forms

import (
	"github.com/khanghh/authportal/internal/authapi"
	"github.com/khanghh/authportal/internal/validation"
)

type LoginForm struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

func (form *LoginForm) Values() validation.Values {
	return validation.Values{
		validation.FieldUsername: form.Username,
		validation.FieldPassword: form.Password,
	}
}

func (form *LoginForm) Validate() validation.Result {
	return validation.ValidateLogin(form.Values())
}

func (form *LoginForm) Request() authapi.LoginRequest {
	return authapi.LoginRequest{
		Username: form.Username,
		Password: form.Password,
	}
}

type SignupForm struct {
	Name            string `form:"name" json:"name"`
	ID              string `form:"id" json:"id"`
	Email           string `form:"email" json:"email"`
	Age             string `form:"age" json:"age"`
	Password        string `form:"password" json:"password"`
	ConfirmPassword string `form:"confirmPassword" json:"confirmPassword"`
}

func (form *SignupForm) Values() validation.Values {
	return validation.Values{
		validation.FieldName:            form.Name,
		validation.FieldID:              form.ID,
		validation.FieldEmail:           form.Email,
		validation.FieldAge:             form.Age,
		validation.FieldPassword:        form.Password,
		validation.FieldConfirmPassword: form.ConfirmPassword,
	}
}

func (form *SignupForm) Validate() validation.Result {
	return validation.ValidateSignup(form.Values())
}

// Request builds the signup payload. The age must already be validated, ok is
// false when it cannot be converted to an integer.
func (form *SignupForm) Request() (req authapi.SignupRequest, ok bool) {
	age, ok := validation.AgeValue(form.Age)
	if !ok {
		return req, false
	}
	return authapi.SignupRequest{
		Name:          form.Name,
		Email:         form.Email,
		Age:           age,
		Username:      form.ID,
		Password:      form.Password,
		PasswordCheck: form.ConfirmPassword,
	}, true
}
