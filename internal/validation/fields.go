package validation

// Field identifies a single named form input.
type Field string

const (
	FieldName            Field = "name"
	FieldID              Field = "id"
	FieldEmail           Field = "email"
	FieldAge             Field = "age"
	FieldPassword        Field = "password"
	FieldConfirmPassword Field = "confirmPassword"
	FieldUsername        Field = "username"
)

// Values holds the current raw value of every field of a form.
type Values map[Field]string

// Result maps every validated field to its error message. An empty message
// means the field is valid.
type Result map[Field]string

// Get returns the message for field, or "" when it is valid or unknown.
func (r Result) Get(field Field) string {
	return r[field]
}

// Submittable reports whether every field of the result is valid.
func (r Result) Submittable() bool {
	for _, msg := range r {
		if msg != "" {
			return false
		}
	}
	return true
}

// Errors returns only the failing fields.
func (r Result) Errors() map[Field]string {
	errs := make(map[Field]string)
	for field, msg := range r {
		if msg != "" {
			errs[field] = msg
		}
	}
	return errs
}
