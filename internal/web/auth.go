package web

import (
	"net/http"
	"strings"

	"github.com/ezequielleiter/admin-buffets-teo/internal/httpx"
	"github.com/ezequielleiter/admin-buffets-teo/internal/teoauth"
)

type loginPage struct {
	basePage
	Email string
	Error string
}

func (s *Server) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "login.html", loginPage{
		basePage: s.newBase(w, r, "Iniciar sesión"),
	})
}

func (s *Server) handleLoginSubmit(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.PostFormValue("email"))
	password := r.PostFormValue("password")

	if email == "" || password == "" {
		s.render(w, r, http.StatusUnprocessableEntity, "login.html", loginPage{
			basePage: s.newBase(w, r, "Iniciar sesión"),
			Email:    email,
			Error:    "Email y contraseña son requeridos",
		})
		return
	}

	result, session, err := s.auth.Authenticate(r.Context(), email, password)
	if err != nil {
		s.render(w, r, http.StatusBadGateway, "login.html", loginPage{
			basePage: s.newBase(w, r, "Iniciar sesión"),
			Email:    email,
			Error:    "Error de conexión",
		})
		return
	}
	if !result.Success {
		s.render(w, r, http.StatusUnauthorized, "login.html", loginPage{
			basePage: s.newBase(w, r, "Iniciar sesión"),
			Email:    email,
			Error:    result.Error,
		})
		return
	}

	if err := s.sessionStore(w, r).Set(session); err != nil {
		s.render(w, r, http.StatusInternalServerError, "login.html", loginPage{
			basePage: s.newBase(w, r, "Iniciar sesión"),
			Email:    email,
			Error:    "No se pudo guardar la sesión",
		})
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	_ = s.auth.SignOut(s.sessionStore(w, r))
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// handleAuthDebug exposes the connectivity/session panel the dashboard used
// to poll. JSON on purpose: it is a diagnostic surface, not a page.
func (s *Server) handleAuthDebug(w http.ResponseWriter, r *http.Request) {
	session := sessionFromContext(r.Context())
	info := s.auth.DebugInfo(session)
	info["backendConnected"] = s.auth.CheckConnection(r.Context())
	info["nextVerifyIn"] = teoauth.NextVerifyIn(session).String()
	httpx.WriteJSON(w, http.StatusOK, info)
}
