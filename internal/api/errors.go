package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/taskvault/taskvault/internal/api/shared"
	"github.com/taskvault/taskvault/internal/domain"
	"github.com/taskvault/taskvault/internal/service"
	"github.com/taskvault/taskvault/internal/store"
)

// User-facing messages for responses that must not echo failure text verbatim.
const (
	// MsgInternalError is the body of every 500 response. Raw failure
	// messages can carry driver detail, so they stay in the logs only.
	MsgInternalError = "An unexpected error occurred"

	// MsgValidationFailed summarizes a 400 response whose details list
	// carries the individual violation messages.
	MsgValidationFailed = "Validation failed"
)

// StatusForFailure maps the failure messages of a task operation to an HTTP
// status code. Storage failures always win, since they mean the outcome of
// the request is unknown. The update existence short-circuit maps to 404
// alongside the plain not-found message: both report a target row that is
// missing or soft-deleted.
func StatusForFailure(msgs []string) int {
	if len(msgs) == 0 {
		return http.StatusInternalServerError
	}

	allValidation := true
	for _, msg := range msgs {
		switch {
		case store.IsDatabaseError(msg):
			return http.StatusInternalServerError
		case msg == store.MsgTaskNotFound, msg == service.MsgTaskCannotBeUpdated:
			return http.StatusNotFound
		case !domain.IsValidationMessage(msg):
			allValidation = false
		}
	}

	if allValidation {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// respondWithFailure translates a failed result into its HTTP response.
// Validation failures echo the ordered violation list verbatim, not-found
// failures echo the fixed message, and everything else becomes a generic 500
// whose raw messages are logged but never sent to the client.
func respondWithFailure(w http.ResponseWriter, r *http.Request, msgs []string) {
	status := StatusForFailure(msgs)

	switch {
	case status >= http.StatusInternalServerError:
		shared.RespondWithErrorAndLog(w, r, status, MsgInternalError,
			errors.New(strings.Join(msgs, "; ")))
	case status == http.StatusNotFound:
		shared.RespondWithError(w, r, status, msgs[0])
	default:
		shared.RespondWithErrorDetails(w, r, status, MsgValidationFailed, msgs)
	}
}
