package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ezequielleiter/admin-buffets-teo/internal/backend"
)

func (s *Server) token(r *http.Request) string {
	if session := sessionFromContext(r.Context()); session != nil {
		return session.Token
	}
	return ""
}

// surfaceError turns a backend failure into a flash. Backend `{error}`
// messages are shown verbatim; transport failures get the generic
// connection message; anything else a fallback.
func (s *Server) surfaceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var apiErr *backend.APIError
	var connErr *backend.ConnError
	switch {
	case errors.As(err, &apiErr):
		s.flash(w, r, "error", apiErr.Message)
	case errors.As(err, &connErr):
		s.flash(w, r, "error", connErr.Error())
	default:
		s.flash(w, r, "error", fallback)
	}
}

func queryInt(r *http.Request, key string) int {
	v, _ := strconv.Atoi(r.URL.Query().Get(key))
	return v
}

type dashboardHome struct {
	basePage
	Eventos []backend.Evento
	Buffets []backend.Buffet
	Error   string
}

// handleDashboardHome is the landing page: upcoming eventos with their
// panel and reporte links.
func (s *Server) handleDashboardHome(w http.ResponseWriter, r *http.Request) {
	page := dashboardHome{basePage: s.newBase(w, r, "Dashboard")}

	eventos, _, err := s.api.ListEventos(r.Context(), s.token(r), backend.EventoFilters{Limite: 100, Pagina: 1})
	if err != nil {
		page.Error = err.Error()
	}
	page.Eventos = eventos

	if buffets, _, err := s.api.ListBuffets(r.Context(), s.token(r), backend.BuffetFilters{}); err == nil {
		page.Buffets = buffets
	}

	s.render(w, r, http.StatusOK, "dashboard_home.html", page)
}
