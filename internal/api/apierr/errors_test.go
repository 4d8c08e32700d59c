package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/lifegame/internal/model"
	"github.com/mcoot/lifegame/internal/services/auth"
)

func TestWriteErrorMapsDomainErrors(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{&model.FieldError{Field: model.FieldAge, Reason: "not positive", Err: model.ErrInvalidInput}, http.StatusUnprocessableEntity, CodeInvalidInput},
		{&model.FieldError{Field: model.FieldName, Err: model.ErrDoubleAnswer}, http.StatusUnprocessableEntity, CodeDoubleAnswer},
		{&model.FieldError{Field: model.FieldJob, Err: model.ErrMissingAnswer}, http.StatusUnprocessableEntity, CodeMissingAnswer},
		{model.ErrUsernameTaken, http.StatusConflict, CodeUsernameTaken},
		{model.ErrPlayerNotFound, http.StatusNotFound, CodePlayerNotFound},
		{model.ErrIncorrectPassword, http.StatusUnauthorized, CodeIncorrectPassword},
		{fmt.Errorf("%w: %q", model.ErrUnknownActivity, "DANCE"), http.StatusBadRequest, CodeUnknownActivity},
		{auth.ErrInvalidSession, http.StatusUnauthorized, CodeUnauthorized},
		{fmt.Errorf("%w: disk full", model.ErrPersistenceFailure), http.StatusInternalServerError, CodeInternalError},
		{errors.New("anything else"), http.StatusInternalServerError, CodeInternalError},
		{NewNoSuchActionError("dance"), http.StatusNotFound, CodeNoSuchAction},
		{NewNotPermittedError("_secret"), http.StatusForbidden, CodeNotPermitted},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			rr := httptest.NewRecorder()
			WriteError(rr, tt.err)

			assert.Equal(t, tt.status, rr.Code)
			var body APIError
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, StatusFailure, body.Status)
			assert.Equal(t, tt.code, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestWriteErrorIncludesField(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteError(rr, &model.FieldError{Field: model.FieldAge, Reason: "not an integer", Err: model.ErrInvalidInput})

	var body APIError
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "age", body.Field)
	assert.Contains(t, body.Message, "not an integer")
}

func TestPersistenceFailureDoesNotLeakDetail(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteError(rr, fmt.Errorf("%w: password=hunter2", model.ErrPersistenceFailure))

	assert.NotContains(t, rr.Body.String(), "hunter2")
}
