package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"moneyflow/internal/core"
	"moneyflow/internal/store"
)

const (
	maxBodyBytes   = 1 << 20
	maxUploadBytes = 10 << 20
)

// badRequestError marks input that could not be read at all, as opposed to
// well-formed input with invalid values.
type badRequestError struct {
	msg string
}

func (e *badRequestError) Error() string { return e.msg }

func badRequest(format string, args ...any) error {
	return &badRequestError{msg: fmt.Sprintf(format, args...)}
}

// decodeJSON reads a single JSON object into dst. Syntax problems are a
// bad request; a value of the wrong type for a field is a validation error.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		var (
			syntaxErr *json.SyntaxError
			typeErr   *json.UnmarshalTypeError
			sizeErr   *http.MaxBytesError
		)
		switch {
		case errors.Is(err, io.EOF):
			return badRequest("request body is empty")
		case errors.As(err, &typeErr):
			return core.Invalid(typeErr.Field, "has the wrong type")
		case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
			return badRequest("malformed JSON body")
		case errors.As(err, &sizeErr):
			return badRequest("request body too large")
		}
		return badRequest("invalid request body: %v", err)
	}
	if dec.More() {
		return badRequest("request body must contain a single JSON object")
	}
	return nil
}

// pathID parses the named URL parameter as a positive integer key.
func pathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, badRequest("invalid %s %q", name, raw)
	}
	return id, nil
}

// parseFilter reads type, status, search and categoryId from the query string.
// Unknown type or status values are passed through and simply match nothing.
func parseFilter(r *http.Request) (store.TransactionFilter, error) {
	q := r.URL.Query()
	f := store.TransactionFilter{
		Type:   strings.TrimSpace(q.Get("type")),
		Status: strings.TrimSpace(q.Get("status")),
		Search: q.Get("search"),
	}
	if v := strings.TrimSpace(q.Get("categoryId")); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return f, badRequest("invalid categoryId %q", v)
		}
		f.CategoryID = &id
	}
	return f.Normalize(), nil
}
