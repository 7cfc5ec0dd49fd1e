package validation

import (
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cast"
)

var validate = newValidator()

const maxAge = math.MaxInt32

// rule is a single validator tag checked against a field. When with is set the
// tag is evaluated against the value of that other field.
type rule struct {
	tag     string
	message string
	trim    bool
	with    Field
}

// fieldRules is the ordered rule chain of a field, the first failing rule wins.
type fieldRules struct {
	field Field
	rules []rule
}

type ruleSet []fieldRules

func newValidator() *validator.Validate {
	v := validator.New()
	customs := map[string]validator.Func{
		"number":      isNumber,
		"integer":     isInteger,
		"nonnegative": isNonNegative,
		"minage":      isMinAge,
		"maxage":      isMaxAge,
		"hasdigit":    hasDigit,
		"hasletter":   hasLetter,
		"hassymbol":   hasSymbol,
	}
	for tag, fn := range customs {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
	return v
}

func (rs ruleSet) validate(values Values) Result {
	result := make(Result, len(rs))
	for _, fr := range rs {
		result[fr.field] = fr.check(values)
	}
	return result
}

func (fr fieldRules) check(values Values) string {
	for _, r := range fr.rules {
		value := values[fr.field]
		if r.trim {
			value = strings.TrimSpace(value)
		}
		var err error
		if r.with != "" {
			err = validate.VarWithValue(value, values[r.with], r.tag)
		} else {
			err = validate.Var(value, r.tag)
		}
		if err != nil {
			return r.message
		}
	}
	return ""
}

// parseNumber coerces s the way a browser coerces form input to a number:
// surrounding whitespace is ignored and a blank value is zero. Infinity is
// only recognised in its exact spelling, hex literals are rejected.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	if strings.ContainsAny(s, "xX") {
		return 0, false
	}
	n, err := cast.ToFloat64E(s)
	if err != nil || math.IsNaN(n) {
		return 0, false
	}
	if math.IsInf(n, 0) {
		switch s {
		case "Infinity", "+Infinity", "-Infinity":
		default:
			return 0, false
		}
	}
	return n, true
}

func isWholeNumber(n float64) bool {
	return !math.IsInf(n, 0) && n == math.Trunc(n)
}

// inAgeRange reports whether n fits the integer age sent to the auth API.
func inAgeRange(n float64) bool {
	return n <= maxAge
}

func isNumber(fl validator.FieldLevel) bool {
	_, ok := parseNumber(fl.Field().String())
	return ok
}

func isInteger(fl validator.FieldLevel) bool {
	n, ok := parseNumber(fl.Field().String())
	return ok && isWholeNumber(n)
}

func isNonNegative(fl validator.FieldLevel) bool {
	n, ok := parseNumber(fl.Field().String())
	return ok && n >= 0
}

func isMinAge(fl validator.FieldLevel) bool {
	n, ok := parseNumber(fl.Field().String())
	return ok && n >= cast.ToFloat64(fl.Param())
}

func isMaxAge(fl validator.FieldLevel) bool {
	n, ok := parseNumber(fl.Field().String())
	return ok && n <= cast.ToFloat64(fl.Param())
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func hasDigit(fl validator.FieldLevel) bool {
	return strings.ContainsFunc(fl.Field().String(), isASCIIDigit)
}

func hasLetter(fl validator.FieldLevel) bool {
	return strings.ContainsFunc(fl.Field().String(), isASCIILetter)
}

func hasSymbol(fl validator.FieldLevel) bool {
	return strings.ContainsFunc(fl.Field().String(), func(r rune) bool {
		return !isASCIIDigit(r) && !isASCIILetter(r)
	})
}
