package server

import (
	"errors"
	"net/http"

	goa "goa.design/goa/v3/pkg"

	apperrors "devsites/pkg/errors"
)

const genericFailure = "Internal server error"

// errorBody is the JSON shape of every error response
type errorBody struct {
	Name      string `json:"name"`
	ID        string `json:"id"`
	Message   string `json:"message"`
	Temporary bool   `json:"temporary"`
	Timeout   bool   `json:"timeout"`
	Fault     bool   `json:"fault"`
}

// toServiceError maps an application error onto an HTTP status and a goa
// service error. Only the AppError message leaves the process; causes are
// logged by the caller.
func toServiceError(err error) (int, *goa.ServiceError) {
	var msg error = errors.New(genericFailure)
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		msg = errors.New(appErr.Message)
	}

	switch apperrors.CodeOf(err) {
	case apperrors.ErrCodeInvalidInput, apperrors.ErrCodeValidation:
		return http.StatusBadRequest, goa.NewServiceError(msg, "bad_request", false, false, false)
	case apperrors.ErrCodeStoreFailure:
		return http.StatusInternalServerError, goa.NewServiceError(msg, "store_failure", false, true, true)
	default:
		return http.StatusInternalServerError, goa.NewServiceError(errors.New(genericFailure), "internal_error", false, false, true)
	}
}

func newErrorBody(se *goa.ServiceError) *errorBody {
	return &errorBody{
		Name:      se.Name,
		ID:        se.ID,
		Message:   se.Message,
		Temporary: se.Temporary,
		Timeout:   se.Timeout,
		Fault:     se.Fault,
	}
}
