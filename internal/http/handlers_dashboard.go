package http

import "net/http"

func (s *Server) handleKPIs(w http.ResponseWriter, r *http.Request) {
	kpis, err := s.svc.Dashboard.KPIs(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, kpis)
}

func (s *Server) handleCharts(w http.ResponseWriter, r *http.Request) {
	charts, err := s.svc.Dashboard.Charts(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, charts)
}
