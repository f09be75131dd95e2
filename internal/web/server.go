// Package web serves the dashboard, the POS event panel and the public
// menu/kiosk pages. Every piece of data comes from the external REST
// backend; this layer renders it and relays mutations.
package web

import (
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/ezequielleiter/admin-buffets-teo/internal/backend"
	"github.com/ezequielleiter/admin-buffets-teo/internal/config"
	"github.com/ezequielleiter/admin-buffets-teo/internal/teoauth"
)

type Server struct {
	cfg       config.Config
	auth      *teoauth.Client
	api       *backend.Client
	cookies   *sessions.CookieStore
	templates map[string]*template.Template
}

func NewServer(cfg config.Config, auth *teoauth.Client, api *backend.Client) (*Server, error) {
	templates, err := loadTemplates()
	if err != nil {
		return nil, err
	}

	cookies := sessions.NewCookieStore(cfg.SessionKey)
	cookies.Options.HttpOnly = true
	cookies.Options.Secure = cfg.CookieSecure
	cookies.Options.SameSite = http.SameSiteLaxMode
	cookies.Options.Path = "/"
	if cfg.CookieDomain != "" {
		cookies.Options.Domain = cfg.CookieDomain
	}

	return &Server{
		cfg:       cfg,
		auth:      auth,
		api:       api,
		cookies:   cookies,
		templates: templates,
	}, nil
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(requestLogger)
	r.Use(secureHeaders)

	r.Get("/", s.handleRoot)

	r.Group(func(r chi.Router) {
		r.Use(s.redirectIfAuthed)
		r.Get("/login", s.handleLoginPage)
		r.Post("/login", s.handleLoginSubmit)
	})
	r.Post("/logout", s.handleLogout)

	// Public pages: the customer-facing menu and the kiosk slideshow.
	r.Get("/buffet-menu/{buffetID}", s.handleBuffetMenu)
	r.Get("/buffet-presentacion/{buffetID}", s.handlePresentacion)
	r.Get("/buffet-presentacion/{buffetID}/qr.png", s.handleMenuQR)

	r.Group(func(r chi.Router) {
		r.Use(s.requireSession)

		r.Get("/debug/auth", s.handleAuthDebug)

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/", s.handleDashboardHome)

			r.Get("/eventos", s.handleEventosPage)
			r.Post("/eventos", s.handleEventoCreate)
			r.Post("/eventos/{id}", s.handleEventoUpdate)
			r.Post("/eventos/{id}/delete", s.handleEventoDelete)
			r.Get("/eventos/reporte/{eventoID}", s.handleReportePage)

			r.Get("/productos", s.handleProductosPage)
			r.Post("/productos", s.handleProductoCreate)
			r.Post("/productos/{id}", s.handleProductoUpdate)
			r.Post("/productos/{id}/delete", s.handleProductoDelete)

			r.Get("/promos", s.handlePromosPage)
			r.Post("/promos", s.handlePromoCreate)
			r.Post("/promos/{id}", s.handlePromoUpdate)
			r.Post("/promos/{id}/delete", s.handlePromoDelete)

			r.Get("/banners", s.handleBannersPage)
			r.Post("/banners", s.handleBannerCreate)
			r.Post("/banners/{id}", s.handleBannerUpdate)
			r.Post("/banners/{id}/delete", s.handleBannerDelete)
		})

		r.Route("/event-panel/{eventoID}", func(r chi.Router) {
			r.Get("/", s.handlePanelPage)
			r.Post("/cart/add", s.handlePanelCartAdd)
			r.Post("/cart/quantity", s.handlePanelCartQuantity)
			r.Post("/cart/remove", s.handlePanelCartRemove)
			r.Post("/cart/clear", s.handlePanelCartClear)
			r.Post("/finalizar", s.handlePanelFinalizar)
			r.Post("/editar/{ordenID}", s.handlePanelEditar)
			r.Post("/cancelar-edicion", s.handlePanelCancelarEdicion)
			r.Get("/orders", s.handlePanelOrders)
			r.Post("/orders/{ordenID}/estado", s.handlePanelOrdenEstado)
		})
	})

	return r
}

// handleRoot sends the visitor wherever their session says they belong.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(authSessionName); err == nil && c.Value != "" {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
