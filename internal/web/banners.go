package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ezequielleiter/admin-buffets-teo/internal/backend"
)

type bannersPage struct {
	basePage
	Banners []backend.Banner
	Total   int
	Buffets []backend.Buffet
	Filters backend.BannerFilters
	Error   string

	ShowForm   bool
	EditID     string
	Form       bannerForm
	FormErrors map[string]string
	ConfirmID  string
}

func (s *Server) bannersPageData(w http.ResponseWriter, r *http.Request) bannersPage {
	filters := backend.BannerFilters{
		BuffetID: r.URL.Query().Get("buffet_id"),
		Limite:   queryInt(r, "limite"),
		Pagina:   queryInt(r, "pagina"),
	}
	if filters.Limite == 0 {
		filters.Limite = 50
	}
	if filters.Pagina == 0 {
		filters.Pagina = 1
	}

	page := bannersPage{
		basePage: s.newBase(w, r, "Banners"),
		Filters:  filters,
	}

	banners, total, err := s.api.ListBanners(r.Context(), s.token(r), filters)
	if err != nil {
		page.Error = err.Error()
	}
	page.Banners = banners
	page.Total = total

	if buffets, _, err := s.api.ListBuffets(r.Context(), s.token(r), backend.BuffetFilters{}); err == nil {
		page.Buffets = buffets
	}
	return page
}

func (s *Server) handleBannersPage(w http.ResponseWriter, r *http.Request) {
	page := s.bannersPageData(w, r)

	q := r.URL.Query()
	switch {
	case q.Get("nuevo") != "":
		page.ShowForm = true
		page.Form.Color = "#1F2937"
	case q.Get("editar") != "":
		id := q.Get("editar")
		for _, b := range page.Banners {
			if b.ID != id {
				continue
			}
			page.ShowForm = true
			page.EditID = id
			page.Form = bannerForm{
				BuffetID: b.BuffetID,
				Mensaje:  b.Mensaje,
				Color:    b.Color,
				Link:     b.Link,
			}
		}
	case q.Get("eliminar") != "":
		page.ConfirmID = q.Get("eliminar")
	}

	s.render(w, r, http.StatusOK, "dashboard_banners.html", page)
}

func (s *Server) handleBannerCreate(w http.ResponseWriter, r *http.Request) {
	form := parseBannerForm(r)
	if errs := form.Validate(); len(errs) > 0 {
		page := s.bannersPageData(w, r)
		page.ShowForm = true
		page.Form = form
		page.FormErrors = errs
		s.render(w, r, http.StatusUnprocessableEntity, "dashboard_banners.html", page)
		return
	}

	if _, err := s.api.CreateBanner(r.Context(), s.token(r), form.Data()); err != nil {
		s.surfaceError(w, r, err, "Error al crear banner")
	} else {
		s.flash(w, r, "success", "Banner creado correctamente")
	}
	http.Redirect(w, r, "/dashboard/banners", http.StatusSeeOther)
}

func (s *Server) handleBannerUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	form := parseBannerForm(r)
	if errs := form.Validate(); len(errs) > 0 {
		page := s.bannersPageData(w, r)
		page.ShowForm = true
		page.EditID = id
		page.Form = form
		page.FormErrors = errs
		s.render(w, r, http.StatusUnprocessableEntity, "dashboard_banners.html", page)
		return
	}

	if _, err := s.api.UpdateBanner(r.Context(), s.token(r), id, form.Data()); err != nil {
		s.surfaceError(w, r, err, "Error al actualizar banner")
	} else {
		s.flash(w, r, "success", "Banner actualizado correctamente")
	}
	http.Redirect(w, r, "/dashboard/banners", http.StatusSeeOther)
}

func (s *Server) handleBannerDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.api.DeleteBanner(r.Context(), s.token(r), id); err != nil {
		s.surfaceError(w, r, err, "Error al eliminar banner")
	} else {
		s.flash(w, r, "success", "Banner eliminado correctamente")
	}
	http.Redirect(w, r, "/dashboard/banners", http.StatusSeeOther)
}
