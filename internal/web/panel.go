package web

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ezequielleiter/admin-buffets-teo/internal/backend"
	"github.com/ezequielleiter/admin-buffets-teo/internal/cart"
)

type panelPage struct {
	basePage
	Evento    *backend.Evento
	Productos []backend.Producto
	Promos    []backend.Promo
	Busqueda  string
	State     *panelState
	CartTotal float64
	Error     string
}

func panelURL(eventoID string) string {
	return "/event-panel/" + eventoID
}

// persistPanel saves the panel state and, when it no longer fits in the
// session cookie, tells the operator instead of dropping the cart.
func (s *Server) persistPanel(w http.ResponseWriter, r *http.Request, eventoID string, state *panelState) {
	if err := s.savePanel(w, r, eventoID, state); err != nil {
		slog.Error("guardando panel", "evento", eventoID, "error", err)
		s.flash(w, r, "error", "No se pudo guardar el carrito: hay demasiados productos. Quitá alguno e intentá de nuevo.")
	}
}

// handlePanelPage renders the POS view: catalog on one side, the working
// cart on the other.
func (s *Server) handlePanelPage(w http.ResponseWriter, r *http.Request) {
	eventoID := chi.URLParam(r, "eventoID")
	page := panelPage{basePage: s.newBase(w, r, "Panel de evento")}

	evento, err := s.api.GetEvento(r.Context(), s.token(r), eventoID)
	if err != nil {
		page.Error = err.Error()
		page.State = &panelState{MetodoPago: backend.PagoEfectivo}
		s.render(w, r, http.StatusOK, "event_panel.html", page)
		return
	}
	page.Evento = evento
	page.Title = evento.Nombre

	page.Busqueda = strings.TrimSpace(r.URL.Query().Get("q"))
	busqueda := strings.ToLower(page.Busqueda)

	productos, _, err := s.api.ListProductos(r.Context(), s.token(r), backend.ProductoFilters{BuffetID: evento.BuffetID, Limite: 200, Pagina: 1})
	if err != nil {
		page.Error = err.Error()
	}
	// Only disponible products are sellable from the panel.
	for _, p := range productos {
		if !p.Disponible {
			continue
		}
		if busqueda != "" && !strings.Contains(strings.ToLower(p.Nombre), busqueda) {
			continue
		}
		page.Productos = append(page.Productos, p)
	}

	if promos, _, err := s.api.ListPromos(r.Context(), s.token(r), backend.PromoFilters{BuffetID: evento.BuffetID, Limite: 200, Pagina: 1}); err == nil {
		for _, p := range promos {
			if busqueda != "" && !strings.Contains(strings.ToLower(p.Nombre), busqueda) {
				continue
			}
			page.Promos = append(page.Promos, p)
		}
	}

	page.State = s.loadPanel(r, eventoID)
	page.CartTotal = page.State.Cart.TotalFloat()

	s.render(w, r, http.StatusOK, "event_panel.html", page)
}

// handlePanelCartAdd adds one producto or promo to the cart. Price and name
// come from the backend, never from the form.
func (s *Server) handlePanelCartAdd(w http.ResponseWriter, r *http.Request) {
	eventoID := chi.URLParam(r, "eventoID")
	id := r.PostFormValue("id")
	tipo := r.PostFormValue("tipo")

	evento, err := s.api.GetEvento(r.Context(), s.token(r), eventoID)
	if err != nil {
		s.surfaceError(w, r, err, "Error al cargar evento")
		http.Redirect(w, r, panelURL(eventoID), http.StatusSeeOther)
		return
	}

	item, err := s.catalogItem(r, evento.BuffetID, id, tipo)
	if err != nil {
		s.surfaceError(w, r, err, "Error al cargar el producto")
		http.Redirect(w, r, panelURL(eventoID), http.StatusSeeOther)
		return
	}
	if item == nil {
		s.flash(w, r, "error", "Producto no encontrado")
		http.Redirect(w, r, panelURL(eventoID), http.StatusSeeOther)
		return
	}

	state := s.loadPanel(r, eventoID)
	state.Cart.Add(*item)
	s.persistPanel(w, r, eventoID, state)
	http.Redirect(w, r, panelURL(eventoID), http.StatusSeeOther)
}

// catalogItem resolves (id, tipo) against the buffet's catalog.
func (s *Server) catalogItem(r *http.Request, buffetID, id, tipo string) (*cart.Item, error) {
	switch tipo {
	case backend.TipoProducto:
		productos, _, err := s.api.ListProductos(r.Context(), s.token(r), backend.ProductoFilters{BuffetID: buffetID, Limite: 200, Pagina: 1})
		if err != nil {
			return nil, err
		}
		for _, p := range productos {
			if p.ID == id && p.Disponible {
				return &cart.Item{
					ID:          p.ID,
					Tipo:        backend.TipoProducto,
					Nombre:      p.Nombre,
					Precio:      p.Valor,
					Cantidad:    1,
					Descripcion: p.Descripcion,
					Imagen:      p.Imagen,
				}, nil
			}
		}
	case backend.TipoPromo:
		promos, _, err := s.api.ListPromos(r.Context(), s.token(r), backend.PromoFilters{BuffetID: buffetID, Limite: 200, Pagina: 1})
		if err != nil {
			return nil, err
		}
		for _, p := range promos {
			if p.ID == id {
				return &cart.Item{
					ID:          p.ID,
					Tipo:        backend.TipoPromo,
					Nombre:      p.Nombre,
					Precio:      p.Valor,
					Cantidad:    1,
					Descripcion: "Promoción especial",
				}, nil
			}
		}
	}
	return nil, nil
}

func (s *Server) handlePanelCartQuantity(w http.ResponseWriter, r *http.Request) {
	eventoID := chi.URLParam(r, "eventoID")
	cantidad, _ := strconv.Atoi(r.PostFormValue("cantidad"))

	state := s.loadPanel(r, eventoID)
	state.Cart.UpdateQuantity(r.PostFormValue("id"), r.PostFormValue("tipo"), cantidad)
	s.persistPanel(w, r, eventoID, state)
	http.Redirect(w, r, panelURL(eventoID), http.StatusSeeOther)
}

func (s *Server) handlePanelCartRemove(w http.ResponseWriter, r *http.Request) {
	eventoID := chi.URLParam(r, "eventoID")

	state := s.loadPanel(r, eventoID)
	state.Cart.Remove(r.PostFormValue("id"), r.PostFormValue("tipo"))
	s.persistPanel(w, r, eventoID, state)
	http.Redirect(w, r, panelURL(eventoID), http.StatusSeeOther)
}

func (s *Server) handlePanelCartClear(w http.ResponseWriter, r *http.Request) {
	eventoID := chi.URLParam(r, "eventoID")

	state := s.loadPanel(r, eventoID)
	state.Cart.Clear()
	s.persistPanel(w, r, eventoID, state)
	http.Redirect(w, r, panelURL(eventoID), http.StatusSeeOther)
}

// handlePanelFinalizar creates the order, or replaces the one being edited.
// The checkout fields are persisted first so a validation round-trip never
// loses what the operator typed.
func (s *Server) handlePanelFinalizar(w http.ResponseWriter, r *http.Request) {
	eventoID := chi.URLParam(r, "eventoID")

	state := s.loadPanel(r, eventoID)
	state.ClienteNombre = strings.TrimSpace(r.PostFormValue("cliente_nombre"))
	state.Nota = strings.TrimSpace(r.PostFormValue("nota"))
	if mp := r.PostFormValue("metodo_pago"); mp == backend.PagoEfectivo || mp == backend.PagoTransferencia {
		state.MetodoPago = mp
	}

	if err := state.Cart.Validate(state.ClienteNombre); err != nil {
		s.persistPanel(w, r, eventoID, state)
		s.flash(w, r, "error", err.Error())
		http.Redirect(w, r, panelURL(eventoID), http.StatusSeeOther)
		return
	}

	evento, err := s.api.GetEvento(r.Context(), s.token(r), eventoID)
	if err != nil {
		s.persistPanel(w, r, eventoID, state)
		s.surfaceError(w, r, err, "Error al cargar evento")
		http.Redirect(w, r, panelURL(eventoID), http.StatusSeeOther)
		return
	}

	data := state.Cart.BuildOrden(evento.BuffetID, eventoID, state.ClienteNombre, state.MetodoPago, state.Nota)

	if state.EditingID != "" {
		_, err = s.api.UpdateOrden(r.Context(), s.token(r), state.EditingID, data)
	} else {
		_, err = s.api.CreateOrden(r.Context(), s.token(r), data)
	}
	if err != nil {
		s.persistPanel(w, r, eventoID, state)
		s.surfaceError(w, r, err, "Error al crear orden")
		http.Redirect(w, r, panelURL(eventoID), http.StatusSeeOther)
		return
	}

	if state.EditingID != "" {
		s.flash(w, r, "success", "Orden actualizada correctamente")
	} else {
		s.flash(w, r, "success", "Orden creada correctamente")
	}
	s.clearPanel(w, r, eventoID)
	http.Redirect(w, r, panelURL(eventoID), http.StatusSeeOther)
}

// handlePanelEditar loads an existing pendiente order back into the cart.
func (s *Server) handlePanelEditar(w http.ResponseWriter, r *http.Request) {
	eventoID := chi.URLParam(r, "eventoID")
	ordenID := chi.URLParam(r, "ordenID")

	ordenes, _, err := s.api.ListOrdenes(r.Context(), s.token(r), backend.OrdenFilters{EventoID: eventoID, Limite: 200, Pagina: 1})
	if err != nil {
		s.surfaceError(w, r, err, "Error al cargar órdenes")
		http.Redirect(w, r, panelURL(eventoID)+"/orders", http.StatusSeeOther)
		return
	}

	var orden *backend.Orden
	for i := range ordenes {
		if ordenes[i].ID == ordenID {
			orden = &ordenes[i]
			break
		}
	}
	if orden == nil {
		s.flash(w, r, "error", "Orden no encontrada")
		http.Redirect(w, r, panelURL(eventoID)+"/orders", http.StatusSeeOther)
		return
	}

	state := &panelState{
		Cart:           *cart.RebuildFromOrden(*orden),
		ClienteNombre:  orden.ClienteNombre,
		Nota:           orden.Nota,
		MetodoPago:     orden.FormaPago,
		EditingID:      orden.ID,
		EditingCliente: orden.ClienteNombre,
	}
	if state.MetodoPago == "" {
		state.MetodoPago = backend.PagoEfectivo
	}
	s.persistPanel(w, r, eventoID, state)
	http.Redirect(w, r, panelURL(eventoID), http.StatusSeeOther)
}

func (s *Server) handlePanelCancelarEdicion(w http.ResponseWriter, r *http.Request) {
	eventoID := chi.URLParam(r, "eventoID")
	s.clearPanel(w, r, eventoID)
	http.Redirect(w, r, panelURL(eventoID), http.StatusSeeOther)
}
