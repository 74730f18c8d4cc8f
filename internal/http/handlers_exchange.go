package http

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"moneyflow/internal/log"
	"moneyflow/internal/services"
)

// handleExport streams the filtered transactions as an attachment. The file
// is rendered into memory first so a failure still yields a JSON error.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	mime, ext, err := services.ContentType(format)
	if err != nil {
		writeError(w, r, err)
		return
	}
	f, err := parseFilter(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := s.svc.Exchange.Export(r.Context(), &buf, ext, f); err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Content-Disposition", `attachment; filename="transactions.`+ext+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		s.logger.WarnContext(r.Context(), "Export write interrupted",
			log.FieldOperation, log.OpExport, log.FieldError, err)
	}
}

// handleImport reads a CSV upload from the multipart field "file".
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		var sizeErr *http.MaxBytesError
		if errors.As(err, &sizeErr) {
			writeError(w, r, badRequest("upload too large"))
			return
		}
		writeError(w, r, badRequest("expected a multipart form with a file field"))
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, r, badRequest("missing file field"))
		return
	}
	defer file.Close()

	res, err := s.svc.Exchange.ImportCSV(r.Context(), file)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, res)
}
