package web

import (
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/ezequielleiter/admin-buffets-teo/internal/backend"
)

type menuPage struct {
	basePage
	Menu  *backend.BuffetMenu
	Error string
}

// handleBuffetMenu is the customer-facing menu: no session required.
func (s *Server) handleBuffetMenu(w http.ResponseWriter, r *http.Request) {
	buffetID := chi.URLParam(r, "buffetID")
	page := menuPage{basePage: s.newBase(w, r, "Menú")}

	menu, err := s.api.BuffetMenu(r.Context(), buffetID)
	if err != nil {
		page.Error = err.Error()
		s.render(w, r, http.StatusOK, "buffet_menu.html", page)
		return
	}

	// Customers only see what can be ordered right now.
	menu.Productos = disponibles(menu.Productos)
	page.Menu = menu
	page.Title = menu.Buffet.Nombre

	s.render(w, r, http.StatusOK, "buffet_menu.html", page)
}

func disponibles(productos []backend.Producto) []backend.Producto {
	out := productos[:0]
	for _, p := range productos {
		if p.Disponible {
			out = append(out, p)
		}
	}
	return out
}

type presentacionPage struct {
	basePage
	Menu  *backend.BuffetMenu
	Error string

	Section        string
	Now            time.Time
	Evento         *backend.Evento
	Banner         *backend.Banner
	BannerContrast string
	RefreshSeconds int
	MenuURL        string
	QRPath         string
}

// handlePresentacion is the kiosk slideshow: it alternates the menu and the
// promos pane, cycles today's eventos and the banners, and refreshes itself
// so the rotation advances without a browser loop.
func (s *Server) handlePresentacion(w http.ResponseWriter, r *http.Request) {
	buffetID := chi.URLParam(r, "buffetID")
	now := time.Now()

	page := presentacionPage{
		basePage:       s.newBase(w, r, "Presentación"),
		Section:        kioskSection(now),
		Now:            now,
		RefreshSeconds: kioskRefreshSeconds(),
		MenuURL:        s.cfg.FrontendURL + "/buffet-menu/" + buffetID,
		QRPath:         "/buffet-presentacion/" + buffetID + "/qr.png",
	}

	menu, err := s.api.BuffetMenu(r.Context(), buffetID)
	if err != nil {
		page.Error = err.Error()
		s.render(w, r, http.StatusOK, "presentacion.html", page)
		return
	}
	menu.Productos = disponibles(menu.Productos)
	page.Menu = menu
	page.Title = menu.Buffet.Nombre

	eventos := upcomingEventos(menu.Eventos, now)
	if len(eventos) > 0 {
		page.Evento = &eventos[rotationIndex(now, eventoPeriod, len(eventos))]
	}
	if len(menu.Banners) > 0 {
		banner := menu.Banners[rotationIndex(now, bannerPeriod, len(menu.Banners))]
		page.Banner = &banner
		page.BannerContrast = contrastColor(banner.Color)
	}

	s.render(w, r, http.StatusOK, "presentacion.html", page)
}

// upcomingEventos keeps eventos from today onward, soonest first.
func upcomingEventos(eventos []backend.Evento, now time.Time) []backend.Evento {
	hoy := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	var out []backend.Evento
	for _, ev := range eventos {
		if !ev.Fecha.Before(hoy) {
			out = append(out, ev)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Fecha.Before(out[j].Fecha) })
	return out
}

// handleMenuQR serves the QR the kiosk shows, pointing customers at the
// public menu.
func (s *Server) handleMenuQR(w http.ResponseWriter, r *http.Request) {
	buffetID := chi.URLParam(r, "buffetID")
	target := s.cfg.FrontendURL + "/buffet-menu/" + buffetID

	png, err := qrcode.Encode(target, qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write(png)
}
