// Copyright (c) 2026 Marquee. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It hides chi's parameter extraction and the body decoding rules so every
handler fails the same way on bad input.
*/
package requestutil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/marquee/internal/platform/apperr"
	"github.com/taibuivan/marquee/internal/platform/constants"
	"github.com/taibuivan/marquee/internal/platform/ctxutil"
	"github.com/taibuivan/marquee/internal/platform/validate"
	"github.com/taibuivan/marquee/pkg/uuid"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

The body is capped at [constants.MaxRequestBodyBytes] and unknown fields are
rejected.

Parameters:
  - writer: http.ResponseWriter (needed by [http.MaxBytesReader])
  - request: *http.Request
  - target: any (pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON or a 400 for oversized bodies, otherwise nil
*/
func DecodeJSON(writer http.ResponseWriter, request *http.Request, target any) error {
	body := http.MaxBytesReader(writer, request.Body, constants.MaxRequestBodyBytes)

	decoder := json.NewDecoder(body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(target); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return apperr.ValidationError("Request body too large")
		}
		return validate.ErrInvalidJSON
	}

	// A second document in the same body is malformed input
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return validate.ErrInvalidJSON
	}

	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
UUIDParam retrieves a named URL parameter and checks that it is a UUID.
Returns a VALIDATION_ERROR naming the parameter otherwise.
*/
func UUIDParam(request *http.Request, name string) (string, error) {
	id, ok := uuid.Canonical(chi.URLParam(request, name))
	if !ok {
		return "", validate.FieldError(name, validate.RuleUUID, "Must be a valid UUID")
	}

	return id, nil
}

/*
RequiredUserID returns the user id of the authenticated caller.

Returns:
  - string: user id from the token claims
  - error: apperr.Unauthorized if the request is anonymous
*/
func RequiredUserID(request *http.Request) (string, error) {
	userID, ok := ctxutil.CurrentUserID(request.Context())
	if !ok {
		return "", apperr.Unauthorized("Authentication required")
	}
	return userID, nil
}
