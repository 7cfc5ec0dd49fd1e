// Package validation checks login and signup form values and reports one
// message per invalid field.
//
// Every field carries an ordered chain of rules. Rules run in order and the
// first failing rule decides the message, later rules of the same field are
// skipped. Fields do not affect each other except where a rule explicitly
// compares against another field (password confirmation).
//
// Validation is pure: the same values always produce the same Result, and it
// is safe to call from concurrent requests.
package validation

import "strconv"

var signupRules = ruleSet{
	{field: FieldName, rules: []rule{
		{tag: "required", message: MsgNameRequired, trim: true},
	}},
	{field: FieldID, rules: []rule{
		{tag: "required", message: MsgIDRequired, trim: true},
	}},
	{field: FieldEmail, rules: []rule{
		{tag: "required", message: MsgEmailInvalid, trim: true},
		{tag: "contains=@", message: MsgEmailInvalid},
	}},
	{field: FieldAge, rules: []rule{
		{tag: "number", message: MsgAgeNotNumber},
		{tag: "integer", message: MsgAgeNotInteger},
		{tag: "nonnegative", message: MsgAgeNegative},
		{tag: "minage=19", message: MsgAgeUnderage},
		{tag: "maxage=" + strconv.Itoa(maxAge), message: MsgAgeOutOfRange},
	}},
	{field: FieldPassword, rules: []rule{
		{tag: "min=4", message: MsgPasswordTooShort},
		{tag: "max=12", message: MsgPasswordTooLong},
		{tag: "hasdigit,hasletter,hassymbol", message: MsgPasswordWeak},
	}},
	{field: FieldConfirmPassword, rules: []rule{
		{tag: "eqcsfield", message: MsgPasswordMismatch, with: FieldPassword},
	}},
}

var loginRules = ruleSet{
	{field: FieldUsername, rules: []rule{
		{tag: "required", message: MsgUsernameRequired, trim: true},
	}},
	{field: FieldPassword, rules: []rule{
		{tag: "min=4", message: MsgLoginPasswordTooShort},
	}},
}

// ValidateSignup validates the name, id, email, age, password and
// confirmPassword fields of the signup form.
func ValidateSignup(values Values) Result {
	return signupRules.validate(values)
}

// ValidateLogin validates the username and password fields of the login form.
func ValidateLogin(values Values) Result {
	return loginRules.validate(values)
}

// AgeValue converts an age that passed validation to an integer.
func AgeValue(age string) (int, bool) {
	n, ok := parseNumber(age)
	if !ok || !isWholeNumber(n) || n < 0 || !inAgeRange(n) {
		return 0, false
	}
	return int(n), true
}
