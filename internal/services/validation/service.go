package validation

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mcoot/lifegame/internal/model"
)

// MinPasswordLength is the minimum number of characters in a password
const MinPasswordLength = 7

// UsernameChecker reports whether a username is already in use
type UsernameChecker interface {
	UsernameTaken(ctx context.Context, username string) (bool, error)
}

// Validator validates single answers and whole registration forms
type Validator struct {
	usernames UsernameChecker
}

// New creates a new Validator
func New(usernames UsernameChecker) *Validator {
	return &Validator{usernames: usernames}
}

// ValidateField checks a raw value against an input type and returns the
// parsed value: a string, or an int for POSITIVE_INT.
func (v *Validator) ValidateField(ctx context.Context, raw string, inputType model.InputType) (any, error) {
	switch inputType {
	case model.InputName:
		if !isAlpha(raw) {
			return nil, invalid("", "not a name")
		}
		return raw, nil

	case model.InputPositiveInt:
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, invalid("", "not an integer")
		}
		if n <= 0 {
			return nil, invalid("", "not positive")
		}
		return n, nil

	case model.InputUsername:
		if !isAlphanumeric(raw) {
			return nil, invalid("", "not alphanumeric")
		}
		taken, err := v.usernames.UsernameTaken(ctx, raw)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, &model.FieldError{Reason: "already taken", Err: model.ErrUsernameTaken}
		}
		return raw, nil

	case model.InputPassword:
		if utf8.RuneCountInString(raw) < MinPasswordLength {
			return nil, invalid("", "too short")
		}
		return raw, nil
	}

	return nil, invalid("", "unknown input type")
}

// ValidateForm validates a full registration submission. Answers are checked
// in submission order for unknown fields, duplicates and field validity; only
// once every answer has been processed are missing questions reported.
func (v *Validator) ValidateForm(ctx context.Context, answers []model.Answer) (*model.Registration, error) {
	seen := make(map[model.Field]any, len(answers))

	for _, answer := range answers {
		question, ok := model.LookupQuestion(answer.Field)
		if !ok {
			return nil, invalid(answer.Field, "not a registration question")
		}
		if _, dup := seen[answer.Field]; dup {
			return nil, &model.FieldError{Field: answer.Field, Reason: "answered more than once", Err: model.ErrDoubleAnswer}
		}

		value, err := v.ValidateField(ctx, answer.Value, question.Type)
		if err != nil {
			var fe *model.FieldError
			if errors.As(err, &fe) {
				fe.Field = answer.Field
			}
			return nil, err
		}
		seen[answer.Field] = value
	}

	for _, question := range model.Questions() {
		if _, ok := seen[question.Field]; !ok {
			return nil, &model.FieldError{Field: question.Field, Reason: "no answer given", Err: model.ErrMissingAnswer}
		}
	}

	return &model.Registration{
		Profile: model.Profile{
			Name:   seen[model.FieldName].(string),
			Age:    seen[model.FieldAge].(int),
			Height: seen[model.FieldHeight].(int),
			City:   seen[model.FieldCity].(string),
			Job:    seen[model.FieldJob].(string),
		},
		Username: seen[model.FieldUsername].(string),
		Password: seen[model.FieldPassword].(string),
	}, nil
}

func invalid(field model.Field, reason string) *model.FieldError {
	return &model.FieldError{Field: field, Reason: reason, Err: model.ErrInvalidInput}
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func isAlphanumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
