package model

import "fmt"

// InputType is the kind of value a profile question expects
type InputType uint8

const (
	InputName InputType = iota
	InputPositiveInt
	InputUsername
	InputPassword

	inputTypeCount = int(InputPassword) + 1
)

var inputTypeNames = [inputTypeCount]string{
	InputName:        "NAME",
	InputPositiveInt: "POSITIVE_INT",
	InputUsername:    "USERNAME",
	InputPassword:    "PASSWORD",
}

// ParseInputType resolves an input type literal such as "POSITIVE_INT"
func ParseInputType(literal string) (InputType, error) {
	for i, n := range inputTypeNames {
		if n == literal {
			return InputType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown input type %q", ErrInvalidInput, literal)
}

func (t InputType) String() string {
	if int(t) >= inputTypeCount {
		return fmt.Sprintf("InputType(%d)", uint8(t))
	}
	return inputTypeNames[t]
}

// MarshalText encodes the input type as its literal
func (t InputType) MarshalText() ([]byte, error) {
	if int(t) >= inputTypeCount {
		return nil, fmt.Errorf("unknown input type %d", uint8(t))
	}
	return []byte(inputTypeNames[t]), nil
}

// UnmarshalText decodes an input type from its literal
func (t *InputType) UnmarshalText(text []byte) error {
	parsed, err := ParseInputType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Field names a registration answer
type Field string

const (
	FieldName     Field = "name"
	FieldAge      Field = "age"
	FieldHeight   Field = "height"
	FieldCity     Field = "city"
	FieldJob      Field = "job"
	FieldUsername Field = "username"
	FieldPassword Field = "password"

	// Fields touched by the simulation rather than registration
	FieldTimeOfDay Field = "time_of_the_day"
	FieldSkills    Field = "skills"
)

// ProfileQuestion is the immutable catalog entry for one registration question
type ProfileQuestion struct {
	Field    Field
	Question string
	Type     InputType
}

var questionCatalog = [...]ProfileQuestion{
	{Field: FieldName, Question: "What's your name?", Type: InputName},
	{Field: FieldAge, Question: "What's your age?", Type: InputPositiveInt},
	{Field: FieldHeight, Question: "What's your height (cm)?", Type: InputPositiveInt},
	{Field: FieldCity, Question: "Where do you live?", Type: InputName},
	{Field: FieldJob, Question: "What is your profession?", Type: InputName},
	{Field: FieldUsername, Question: "Choose a username", Type: InputUsername},
	{Field: FieldPassword, Question: "Choose a password (at least 7 characters)", Type: InputPassword},
}

// Questions returns the registration questions in the order they are asked
func Questions() []ProfileQuestion {
	out := make([]ProfileQuestion, len(questionCatalog))
	copy(out, questionCatalog[:])
	return out
}

// LookupQuestion finds the question for a field name
func LookupQuestion(field Field) (ProfileQuestion, bool) {
	for _, q := range questionCatalog {
		if q.Field == field {
			return q, true
		}
	}
	return ProfileQuestion{}, false
}

// Answer is a single raw registration answer, kept in submission order
type Answer struct {
	Field Field
	Value string
}
