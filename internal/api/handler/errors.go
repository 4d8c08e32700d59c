package handler

import (
	"errors"
	"net/http"

	"github.com/mcoot/lifegame/internal/api/apierr"
	"github.com/mcoot/lifegame/internal/api/request"
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	if errors.Is(err, request.ErrNotAnObject) {
		err = apierr.NewInvalidFormatError(err.Error())
	}
	apierr.WriteError(w, err)
}
