package web

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ezequielleiter/admin-buffets-teo/internal/backend"
)

type promosPage struct {
	basePage
	Promos  []backend.Promo
	Total   int
	Buffets []backend.Buffet
	// Productos feeds the multi-select in the promo form.
	Productos []backend.Producto
	Filters   backend.PromoFilters
	Error     string

	ShowForm   bool
	EditID     string
	Form       promoForm
	FormErrors map[string]string
	ConfirmID  string
}

func (s *Server) promosPageData(w http.ResponseWriter, r *http.Request) promosPage {
	q := r.URL.Query()
	filters := backend.PromoFilters{
		BuffetID: q.Get("buffet_id"),
		Nombre:   q.Get("nombre"),
		Limite:   queryInt(r, "limite"),
		Pagina:   queryInt(r, "pagina"),
	}
	if filters.Limite == 0 {
		filters.Limite = 50
	}
	if filters.Pagina == 0 {
		filters.Pagina = 1
	}

	page := promosPage{
		basePage: s.newBase(w, r, "Promos"),
		Filters:  filters,
	}

	promos, total, err := s.api.ListPromos(r.Context(), s.token(r), filters)
	if err != nil {
		page.Error = err.Error()
	}
	page.Promos = promos
	page.Total = total

	if buffets, _, err := s.api.ListBuffets(r.Context(), s.token(r), backend.BuffetFilters{}); err == nil {
		page.Buffets = buffets
	}
	if productos, _, err := s.api.ListProductos(r.Context(), s.token(r), backend.ProductoFilters{Limite: 200, Pagina: 1}); err == nil {
		page.Productos = productos
	}
	return page
}

func (s *Server) handlePromosPage(w http.ResponseWriter, r *http.Request) {
	page := s.promosPageData(w, r)

	q := r.URL.Query()
	switch {
	case q.Get("nuevo") != "":
		page.ShowForm = true
	case q.Get("editar") != "":
		id := q.Get("editar")
		for _, p := range page.Promos {
			if p.ID != id {
				continue
			}
			page.ShowForm = true
			page.EditID = id
			page.Form = promoForm{
				BuffetID:  p.BuffetID,
				Nombre:    p.Nombre,
				Productos: p.Productos,
				Valor:     p.Valor,
				ValorRaw:  strconv.FormatFloat(p.Valor, 'f', -1, 64),
			}
		}
	case q.Get("eliminar") != "":
		page.ConfirmID = q.Get("eliminar")
	}

	s.render(w, r, http.StatusOK, "dashboard_promos.html", page)
}

func (s *Server) handlePromoCreate(w http.ResponseWriter, r *http.Request) {
	form := parsePromoForm(r)
	if errs := form.Validate(); len(errs) > 0 {
		page := s.promosPageData(w, r)
		page.ShowForm = true
		page.Form = form
		page.FormErrors = errs
		s.render(w, r, http.StatusUnprocessableEntity, "dashboard_promos.html", page)
		return
	}

	if _, err := s.api.CreatePromo(r.Context(), s.token(r), form.Data()); err != nil {
		s.surfaceError(w, r, err, "Error al crear promo")
	} else {
		s.flash(w, r, "success", "Promo creada correctamente")
	}
	http.Redirect(w, r, "/dashboard/promos", http.StatusSeeOther)
}

func (s *Server) handlePromoUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	form := parsePromoForm(r)
	if errs := form.Validate(); len(errs) > 0 {
		page := s.promosPageData(w, r)
		page.ShowForm = true
		page.EditID = id
		page.Form = form
		page.FormErrors = errs
		s.render(w, r, http.StatusUnprocessableEntity, "dashboard_promos.html", page)
		return
	}

	if _, err := s.api.UpdatePromo(r.Context(), s.token(r), id, form.Data()); err != nil {
		s.surfaceError(w, r, err, "Error al actualizar promo")
	} else {
		s.flash(w, r, "success", "Promo actualizada correctamente")
	}
	http.Redirect(w, r, "/dashboard/promos", http.StatusSeeOther)
}

func (s *Server) handlePromoDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.api.DeletePromo(r.Context(), s.token(r), id); err != nil {
		s.surfaceError(w, r, err, "Error al eliminar promo")
	} else {
		s.flash(w, r, "success", "Promo eliminada correctamente")
	}
	http.Redirect(w, r, "/dashboard/promos", http.StatusSeeOther)
}
