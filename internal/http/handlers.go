package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"moneyflow/internal/core"
	"moneyflow/internal/log"
)

// catalogAPI is the CRUD surface shared by categories, accounts, clients
// and vendors.
type catalogAPI[T any] interface {
	Kind() core.Kind
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, v T) (T, error)
	Update(ctx context.Context, id int64, v T) (T, error)
	Delete(ctx context.Context, id int64) error
}

// mountCatalog registers list, create, replace and delete for one collection.
func mountCatalog[T any](r chi.Router, svc catalogAPI[T]) {
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, items)
	})

	r.Post("/", func(w http.ResponseWriter, r *http.Request) {
		var v T
		if err := decodeJSON(w, r, &v); err != nil {
			writeError(w, r, err)
			return
		}
		created, err := svc.Create(r.Context(), v)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusCreated, created)
	})

	r.Put("/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeError(w, r, err)
			return
		}
		var v T
		if err := decodeJSON(w, r, &v); err != nil {
			writeError(w, r, err)
			return
		}
		updated, err := svc.Update(r.Context(), id, v)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, updated)
	})

	r.Delete("/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeError(w, r, err)
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			writeError(w, r, err)
			return
		}
		writeDeleted(w, r, svc.Kind())
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReady reports 503 while the store cannot be reached.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Ping(r.Context()); err != nil {
		s.logger.WarnContext(r.Context(), "Readiness check failed", log.FieldError, err)
		writeJSON(w, r, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ready"})
}
