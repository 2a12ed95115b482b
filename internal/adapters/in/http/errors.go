package http

import (
	"errors"
	"net/http"

	"freight/internal/core/application/usecases/snapshot"
	"freight/internal/core/domain/model/inventory"
	"freight/internal/core/domain/model/manifest"
	"freight/internal/core/domain/model/waybill"
	"freight/internal/pkg/errs"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// statusForError maps domain failures to HTTP status codes: 404 for missing
// objects, 409 for business-rule conflicts, 422 for rejected input, and 500
// for everything else.
func statusForError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound

	case errors.Is(err, waybill.ErrDuplicateWaybillNumber),
		errors.Is(err, waybill.ErrInvalidTransition),
		errors.Is(err, waybill.ErrWaybillLocked),
		errors.Is(err, manifest.ErrNotEligible),
		errors.Is(err, manifest.ErrInvalidTransition),
		errors.Is(err, manifest.ErrInconsistentManifest),
		errors.Is(err, manifest.ErrNotVerifiable),
		errors.Is(err, manifest.ErrBoxNotInManifest),
		errors.Is(err, inventory.ErrAlreadyUsed),
		errors.Is(err, inventory.ErrDuplicateNumber):
		return http.StatusConflict

	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, inventory.ErrRangeTooLarge),
		errors.Is(err, waybill.ErrReceivedByIsRequired),
		errors.Is(err, snapshot.ErrMissingKey):
		return http.StatusUnprocessableEntity

	default:
		return http.StatusInternalServerError
	}
}

// newErrorResponse builds the wire error for a failure. Internal faults are
// not echoed back to the caller.
func newErrorResponse(err error) (int, ErrorResponse) {
	code := statusForError(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "internal error"
	}

	return code, ErrorResponse{Code: code, Message: message}
}
