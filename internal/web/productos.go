package web

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ezequielleiter/admin-buffets-teo/internal/backend"
)

type productosPage struct {
	basePage
	Productos []backend.Producto
	Total     int
	Buffets   []backend.Buffet
	Filters   backend.ProductoFilters
	Error     string

	ShowForm   bool
	EditID     string
	Form       productoForm
	FormErrors map[string]string
	ConfirmID  string
}

func (s *Server) productosPageData(w http.ResponseWriter, r *http.Request) productosPage {
	q := r.URL.Query()
	filters := backend.ProductoFilters{
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

	page := productosPage{
		basePage: s.newBase(w, r, "Productos"),
		Filters:  filters,
	}

	productos, total, err := s.api.ListProductos(r.Context(), s.token(r), filters)
	if err != nil {
		page.Error = err.Error()
	}
	page.Productos = productos
	page.Total = total

	if buffets, _, err := s.api.ListBuffets(r.Context(), s.token(r), backend.BuffetFilters{}); err == nil {
		page.Buffets = buffets
	}
	return page
}

func (s *Server) handleProductosPage(w http.ResponseWriter, r *http.Request) {
	page := s.productosPageData(w, r)

	q := r.URL.Query()
	switch {
	case q.Get("nuevo") != "":
		page.ShowForm = true
	case q.Get("editar") != "":
		id := q.Get("editar")
		for _, p := range page.Productos {
			if p.ID != id {
				continue
			}
			page.ShowForm = true
			page.EditID = id
			page.Form = productoForm{
				BuffetID:    p.BuffetID,
				Nombre:      p.Nombre,
				Valor:       p.Valor,
				ValorRaw:    strconv.FormatFloat(p.Valor, 'f', -1, 64),
				Descripcion: p.Descripcion,
				Imagen:      p.Imagen,
				Disponible:  p.Disponible,
			}
		}
	case q.Get("eliminar") != "":
		page.ConfirmID = q.Get("eliminar")
	}

	s.render(w, r, http.StatusOK, "dashboard_productos.html", page)
}

func (s *Server) handleProductoCreate(w http.ResponseWriter, r *http.Request) {
	form := parseProductoForm(r)
	if errs := form.Validate(); len(errs) > 0 {
		page := s.productosPageData(w, r)
		page.ShowForm = true
		page.Form = form
		page.FormErrors = errs
		s.render(w, r, http.StatusUnprocessableEntity, "dashboard_productos.html", page)
		return
	}

	if _, err := s.api.CreateProducto(r.Context(), s.token(r), form.Data()); err != nil {
		s.surfaceError(w, r, err, "Error al crear producto")
	} else {
		s.flash(w, r, "success", "Producto creado correctamente")
	}
	http.Redirect(w, r, "/dashboard/productos", http.StatusSeeOther)
}

func (s *Server) handleProductoUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	form := parseProductoForm(r)
	if errs := form.Validate(); len(errs) > 0 {
		page := s.productosPageData(w, r)
		page.ShowForm = true
		page.EditID = id
		page.Form = form
		page.FormErrors = errs
		s.render(w, r, http.StatusUnprocessableEntity, "dashboard_productos.html", page)
		return
	}

	if _, err := s.api.UpdateProducto(r.Context(), s.token(r), id, form.Data()); err != nil {
		s.surfaceError(w, r, err, "Error al actualizar producto")
	} else {
		s.flash(w, r, "success", "Producto actualizado correctamente")
	}
	http.Redirect(w, r, "/dashboard/productos", http.StatusSeeOther)
}

func (s *Server) handleProductoDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.api.DeleteProducto(r.Context(), s.token(r), id); err != nil {
		s.surfaceError(w, r, err, "Error al eliminar producto")
	} else {
		s.flash(w, r, "success", "Producto eliminado correctamente")
	}
	http.Redirect(w, r, "/dashboard/productos", http.StatusSeeOther)
}
