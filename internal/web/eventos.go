package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ezequielleiter/admin-buffets-teo/internal/backend"
)

type eventosPage struct {
	basePage
	Eventos []backend.Evento
	Total   int
	Buffets []backend.Buffet
	Filters backend.EventoFilters
	Error   string

	// Form state: ShowForm opens the modal, EditID non-empty means edit.
	ShowForm   bool
	EditID     string
	Form       eventoForm
	FormErrors map[string]string
	ConfirmID  string
}

func (s *Server) eventosPageData(w http.ResponseWriter, r *http.Request) eventosPage {
	q := r.URL.Query()
	filters := backend.EventoFilters{
		BuffetID:   q.Get("buffet_id"),
		FechaDesde: q.Get("fecha_desde"),
		FechaHasta: q.Get("fecha_hasta"),
		Limite:     queryInt(r, "limite"),
		Pagina:     queryInt(r, "pagina"),
	}
	if filters.Limite == 0 {
		filters.Limite = 50
	}
	if filters.Pagina == 0 {
		filters.Pagina = 1
	}

	page := eventosPage{
		basePage: s.newBase(w, r, "Eventos"),
		Filters:  filters,
	}

	eventos, total, err := s.api.ListEventos(r.Context(), s.token(r), filters)
	if err != nil {
		page.Error = err.Error()
	}
	page.Eventos = eventos
	page.Total = total

	if buffets, _, err := s.api.ListBuffets(r.Context(), s.token(r), backend.BuffetFilters{}); err == nil {
		page.Buffets = buffets
	}
	return page
}

func (s *Server) handleEventosPage(w http.ResponseWriter, r *http.Request) {
	page := s.eventosPageData(w, r)

	q := r.URL.Query()
	switch {
	case q.Get("nuevo") != "":
		page.ShowForm = true
	case q.Get("editar") != "":
		id := q.Get("editar")
		for _, ev := range page.Eventos {
			if ev.ID != id {
				continue
			}
			page.ShowForm = true
			page.EditID = id
			page.Form = eventoForm{
				Nombre:      ev.Nombre,
				Fecha:       ev.Fecha.Local().Format("2006-01-02T15:04"),
				BuffetID:    ev.BuffetID,
				Imagen:      ev.Imagen,
				Descripcion: ev.Descripcion,
			}
			if redes := ev.RedesArtista; redes != nil {
				page.Form.Instagram = redes.Instagram
				page.Form.Facebook = redes.Facebook
				page.Form.Spotify = redes.Spotify
				page.Form.Youtube = redes.Youtube
			}
		}
	case q.Get("eliminar") != "":
		page.ConfirmID = q.Get("eliminar")
	}

	s.render(w, r, http.StatusOK, "dashboard_eventos.html", page)
}

func (s *Server) handleEventoCreate(w http.ResponseWriter, r *http.Request) {
	form := parseEventoForm(r)
	if errs := form.Validate(); len(errs) > 0 {
		page := s.eventosPageData(w, r)
		page.ShowForm = true
		page.Form = form
		page.FormErrors = errs
		s.render(w, r, http.StatusUnprocessableEntity, "dashboard_eventos.html", page)
		return
	}

	if _, err := s.api.CreateEvento(r.Context(), s.token(r), form.Data()); err != nil {
		s.surfaceError(w, r, err, "Error al crear evento")
	} else {
		s.flash(w, r, "success", "Evento creado correctamente")
	}
	http.Redirect(w, r, "/dashboard/eventos", http.StatusSeeOther)
}

func (s *Server) handleEventoUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	form := parseEventoForm(r)
	if errs := form.Validate(); len(errs) > 0 {
		page := s.eventosPageData(w, r)
		page.ShowForm = true
		page.EditID = id
		page.Form = form
		page.FormErrors = errs
		s.render(w, r, http.StatusUnprocessableEntity, "dashboard_eventos.html", page)
		return
	}

	if _, err := s.api.UpdateEvento(r.Context(), s.token(r), id, form.Data()); err != nil {
		s.surfaceError(w, r, err, "Error al actualizar evento")
	} else {
		s.flash(w, r, "success", "Evento actualizado correctamente")
	}
	http.Redirect(w, r, "/dashboard/eventos", http.StatusSeeOther)
}

func (s *Server) handleEventoDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.api.DeleteEvento(r.Context(), s.token(r), id); err != nil {
		s.surfaceError(w, r, err, "Error al eliminar evento")
	} else {
		s.flash(w, r, "success", "Evento eliminado correctamente")
	}
	http.Redirect(w, r, "/dashboard/eventos", http.StatusSeeOther)
}
