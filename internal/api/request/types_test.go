package request

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/lifegame/internal/model"
)

func TestDecodeAnswersKeepsOrderAndDuplicates(t *testing.T) {
	answers, err := DecodeAnswers(strings.NewReader(`{"job":"Baker","name":"Alice","age":25,"name":"Bob"}`))
	require.NoError(t, err)

	assert.Equal(t, []model.Answer{
		{Field: model.FieldJob, Value: "Baker"},
		{Field: model.FieldName, Value: "Alice"},
		{Field: model.FieldAge, Value: "25"},
		{Field: model.FieldName, Value: "Bob"},
	}, answers)
}

func TestDecodeAnswersEmptyObject(t *testing.T) {
	answers, err := DecodeAnswers(strings.NewReader(`{}`))
	require.NoError(t, err)
	assert.Empty(t, answers)
}

func TestDecodeAnswersRejectsMalformedBodies(t *testing.T) {
	for _, body := range []string{
		``,
		`[]`,
		`"name"`,
		`{"name":`,
		`{"name":{"first":"Alice"}}`,
		`{"name":["Alice"]}`,
		`{"name":true}`,
		`{"name":"Alice"} {}`,
	} {
		_, err := DecodeAnswers(strings.NewReader(body))
		assert.ErrorIs(t, err, ErrNotAnObject, body)
	}
}

func TestDecode(t *testing.T) {
	var req ChoiceRequest
	require.NoError(t, Decode(strings.NewReader(` {"choice":"SLEEP"} `), &req))
	assert.Equal(t, "SLEEP", req.Choice)

	assert.ErrorIs(t, Decode(strings.NewReader(`null`), &req), ErrNotAnObject)
	assert.ErrorIs(t, Decode(strings.NewReader(`{"choice":1}`), &req), ErrNotAnObject)
}

func TestValidateInputAcceptsNumbers(t *testing.T) {
	var req ValidateInputRequest
	require.NoError(t, Decode(strings.NewReader(`{"givenInput":25,"type":"POSITIVE_INT"}`), &req))
	assert.Equal(t, AnswerValue("25"), req.GivenInput)

	require.NoError(t, Decode(strings.NewReader(`{"givenInput":"1.5e3","type":"POSITIVE_INT"}`), &req))
	assert.Equal(t, AnswerValue("1.5e3"), req.GivenInput)

	for _, body := range []string{
		`{"givenInput":true,"type":"NAME"}`,
		`{"givenInput":null,"type":"NAME"}`,
		`{"givenInput":["Alice"],"type":"NAME"}`,
	} {
		assert.ErrorIs(t, Decode(strings.NewReader(body), &req), ErrNotAnObject, body)
	}
}
