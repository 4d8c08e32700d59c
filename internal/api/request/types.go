package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/mcoot/lifegame/internal/model"
)

// ErrNotAnObject is returned when a body is not a single JSON object
var ErrNotAnObject = errors.New("body must be a JSON object")

// AnswerValue is a raw answer given as a JSON string or number.
// Numbers keep their literal text, as in createNewPlayer bodies.
type AnswerValue string

// UnmarshalJSON accepts a string or a number
func (a *AnswerValue) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	switch v := tok.(type) {
	case string:
		*a = AnswerValue(v)
	case json.Number:
		*a = AnswerValue(v.String())
	default:
		return errors.New("answer must be a string or number")
	}
	return nil
}

// ValidateInputRequest is the body of validateSingleInput
type ValidateInputRequest struct {
	GivenInput AnswerValue `json:"givenInput"`
	Type       string      `json:"type"`
}

// LoginRequest is the body of login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ChoiceRequest is the body of handleChoice
type ChoiceRequest struct {
	Choice string `json:"choice"`
}

// Decode reads a single JSON object from r into v
func Decode(r io.Reader, v any) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return ErrNotAnObject
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %w", ErrNotAnObject, err)
	}
	return nil
}

// DecodeAnswers reads a registration form. Keys are kept in the order they
// appear and repeated keys are kept, so the validator can report them.
// Values must be strings or numbers.
func DecodeAnswers(r io.Reader) ([]model.Answer, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotAnObject, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, ErrNotAnObject
	}

	var answers []model.Answer
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNotAnObject, err)
		}
		key, _ := keyTok.(string)

		valTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNotAnObject, err)
		}

		var value string
		switch v := valTok.(type) {
		case string:
			value = v
		case json.Number:
			value = v.String()
		default:
			return nil, fmt.Errorf("%w: answer for %q must be a string or number", ErrNotAnObject, key)
		}
		answers = append(answers, model.Answer{Field: model.Field(key), Value: value})
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotAnObject, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data", ErrNotAnObject)
	}
	return answers, nil
}
