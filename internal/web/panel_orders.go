package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ezequielleiter/admin-buffets-teo/internal/backend"
)

type panelOrdersPage struct {
	basePage
	Evento  *backend.Evento
	Ordenes []backend.Orden
	Total   int
	Filters backend.OrdenFilters
	Error   string

	Pendientes int
	Entregadas int
	Canceladas int
}

// handlePanelOrders is the orders tab: the evento's orders with their
// lines expanded and the estado transition buttons.
func (s *Server) handlePanelOrders(w http.ResponseWriter, r *http.Request) {
	eventoID := chi.URLParam(r, "eventoID")
	page := panelOrdersPage{basePage: s.newBase(w, r, "Órdenes")}

	evento, err := s.api.GetEvento(r.Context(), s.token(r), eventoID)
	if err != nil {
		page.Error = err.Error()
		s.render(w, r, http.StatusOK, "event_panel_orders.html", page)
		return
	}
	page.Evento = evento
	page.Title = "Órdenes · " + evento.Nombre

	filters := backend.OrdenFilters{
		EventoID:  eventoID,
		Estado:    r.URL.Query().Get("estado"),
		FormaPago: r.URL.Query().Get("forma_pago"),
		Limite:    queryInt(r, "limite"),
		Pagina:    queryInt(r, "pagina"),
	}
	if filters.Limite == 0 {
		filters.Limite = 100
	}
	if filters.Pagina == 0 {
		filters.Pagina = 1
	}
	page.Filters = filters

	ordenes, total, err := s.api.ListOrdenes(r.Context(), s.token(r), filters)
	if err != nil {
		page.Error = err.Error()
	}
	page.Ordenes = ordenes
	page.Total = total

	for _, o := range ordenes {
		switch o.Estado {
		case backend.EstadoPendiente:
			page.Pendientes++
		case backend.EstadoEntregado:
			page.Entregadas++
		case backend.EstadoCancelado:
			page.Canceladas++
		}
	}

	s.render(w, r, http.StatusOK, "event_panel_orders.html", page)
}

// handlePanelOrdenEstado applies a status transition to one order.
func (s *Server) handlePanelOrdenEstado(w http.ResponseWriter, r *http.Request) {
	eventoID := chi.URLParam(r, "eventoID")
	ordenID := chi.URLParam(r, "ordenID")
	estado := r.PostFormValue("estado")

	switch estado {
	case backend.EstadoPendiente, backend.EstadoEntregado, backend.EstadoCancelado:
	default:
		s.flash(w, r, "error", "Estado no válido")
		http.Redirect(w, r, panelURL(eventoID)+"/orders", http.StatusSeeOther)
		return
	}

	if err := s.api.UpdateOrdenEstado(r.Context(), s.token(r), ordenID, estado); err != nil {
		s.surfaceError(w, r, err, "Error al actualizar la orden")
	} else {
		s.flash(w, r, "success", "Orden actualizada correctamente")
	}
	http.Redirect(w, r, panelURL(eventoID)+"/orders", http.StatusSeeOther)
}
