package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"moneyflow/internal/core"
	"moneyflow/internal/log"
	"moneyflow/internal/services"
)

// errorBody is the shape of every error reply: {"detail": "..."}.
type errorBody struct {
	Detail string `json:"detail"`
}

type messageBody struct {
	Message string `json:"message"`
}

// writeJSON encodes v with the given status. Encoding failures after the
// header is sent can only be logged.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.FromContext(r.Context()).WarnContext(r.Context(), "Failed to encode response", log.FieldError, err)
	}
}

func writeDetail(w http.ResponseWriter, r *http.Request, status int, detail string) {
	writeJSON(w, r, status, errorBody{Detail: detail})
}

func writeDeleted(w http.ResponseWriter, r *http.Request, kind core.Kind) {
	writeJSON(w, r, http.StatusOK, messageBody{Message: kind.Title() + " deleted successfully"})
}

// statusFor maps a service error onto a status code and client-facing detail.
func statusFor(err error) (int, string) {
	var (
		nf  *core.NotFoundError
		ve  *core.ValidationError
		ce  *core.ConflictError
		bad *badRequestError
	)
	switch {
	case errors.As(err, &bad):
		return http.StatusBadRequest, bad.msg
	case errors.As(err, &nf):
		return http.StatusNotFound, nf.Detail()
	case errors.As(err, &ve):
		return http.StatusUnprocessableEntity, ve.Error()
	case errors.As(err, &ce):
		return http.StatusConflict, ce.Error()
	case errors.Is(err, core.ErrConflict):
		return http.StatusConflict, "conflict"
	case errors.Is(err, services.ErrUnsupportedFormat):
		return http.StatusBadRequest, err.Error()
	}
	return http.StatusInternalServerError, "internal server error"
}

// writeError replies with the mapped status. Server errors are logged with
// the cause; the client only sees a generic detail.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, detail := statusFor(err)
	if status >= 500 {
		log.FromContext(r.Context()).WithComponent(log.ComponentHTTP).ErrorContext(r.Context(), "Request failed",
			log.FieldMethod, r.Method, log.FieldPath, r.URL.Path, log.FieldError, err)
	}
	writeDetail(w, r, status, detail)
}
