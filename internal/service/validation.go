package service

import (
	"regexp"
	"strings"
	"unicode"
)

// FieldError carries a single violated rule for one input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every violated rule; validation always runs to
// completion so callers see all failures at once, not just the first.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return strings.Join(msgs, "; ")
}

var usernamePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)

const passwordSpecialSet = `!@#$%^&*(),.?":{}|<>`

const (
	minPasswordLength = 8
	maxCommentLength  = 250
)

func validateRegistration(username, password string) error {
	var fields []FieldError

	switch {
	case username == "":
		fields = append(fields, FieldError{Field: "username", Message: "username is required"})
	case !usernamePattern.MatchString(username):
		fields = append(fields, FieldError{
			Field:   "username",
			Message: "username must start with a letter and contain only letters, numbers, underscores, or hyphens",
		})
	}

	if password == "" {
		fields = append(fields, FieldError{Field: "password", Message: "password is required"})
	} else {
		if len(password) < minPasswordLength {
			fields = append(fields, FieldError{Field: "password", Message: "password must be at least 8 characters"})
		}
		if !strings.ContainsFunc(password, unicode.IsLower) {
			fields = append(fields, FieldError{Field: "password", Message: "password must have at least one lowercase letter"})
		}
		if !strings.ContainsFunc(password, unicode.IsUpper) {
			fields = append(fields, FieldError{Field: "password", Message: "password must have at least one uppercase letter"})
		}
		if !strings.ContainsAny(password, passwordSpecialSet) {
			fields = append(fields, FieldError{Field: "password", Message: "password must have at least one special character"})
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func validatePostInput(title, body string) error {
	var fields []FieldError

	if strings.TrimSpace(title) == "" {
		fields = append(fields, FieldError{Field: "title", Message: "title is required"})
	}
	if strings.TrimSpace(body) == "" {
		fields = append(fields, FieldError{Field: "body", Message: "body is required"})
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func validateCommentBody(body string) error {
	var fields []FieldError

	if strings.TrimSpace(body) == "" {
		fields = append(fields, FieldError{Field: "body", Message: "body is required"})
	}
	if len(body) > maxCommentLength {
		fields = append(fields, FieldError{Field: "body", Message: "body must be at most 250 characters"})
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
