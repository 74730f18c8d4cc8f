package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moneyflow/internal/core"
	"moneyflow/internal/services"
)

func withParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestPathID(t *testing.T) {
	r := withParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", "17")
	id, err := pathID(r, "id")
	require.NoError(t, err)
	assert.Equal(t, int64(17), id)

	for _, raw := range []string{"", "-1", "0", "1.5", "abc"} {
		r := withParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", raw)
		_, err := pathID(r, "id")
		var bad *badRequestError
		assert.True(t, errors.As(err, &bad), "%q should be rejected", raw)
	}
}

func TestParseFilter(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/transactions?type=all&status=pending&search=%20rent%20&categoryId=3", nil)
	f, err := parseFilter(r)
	require.NoError(t, err)
	assert.Equal(t, "", f.Type)
	assert.Equal(t, "pending", f.Status)
	assert.Equal(t, "rent", f.Search)
	require.NotNil(t, f.CategoryID)
	assert.Equal(t, int64(3), *f.CategoryID)
}

func TestDecodeJSON(t *testing.T) {
	var c core.Category
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Rent","type":"expense","extra":true}`))
	require.NoError(t, decodeJSON(httptest.NewRecorder(), r, &c))
	assert.Equal(t, "Rent", c.Name)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"balance":"high"}`))
	var a core.Account
	err := decodeJSON(httptest.NewRecorder(), r, &a)
	assert.ErrorIs(t, err, core.ErrValidation)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat(" ", maxBodyBytes+1)+"{}"))
	err = decodeJSON(httptest.NewRecorder(), r, &a)
	var bad *badRequestError
	assert.True(t, errors.As(err, &bad))
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err    error
		status int
		detail string
	}{
		{fmt.Errorf("wrap: %w", core.NotFound(core.KindAccount, 3)), http.StatusNotFound, "Account not found"},
		{core.Invalid("amount", "must be a positive number"), http.StatusUnprocessableEntity, "amount must be a positive number"},
		{fmt.Errorf("create: %w", core.Conflict(core.KindBudget, 1)), http.StatusConflict, "budget 1 already exists"},
		{badRequest("invalid id %q", "x"), http.StatusBadRequest, `invalid id "x"`},
		{fmt.Errorf("%w: %q", services.ErrUnsupportedFormat, "pdf"), http.StatusBadRequest, `unsupported export format: "pdf"`},
		{errors.New("disk on fire"), http.StatusInternalServerError, "internal server error"},
	}
	for _, tt := range tests {
		status, detail := statusFor(tt.err)
		assert.Equal(t, tt.status, status, tt.err.Error())
		assert.Equal(t, tt.detail, detail)
	}
}
