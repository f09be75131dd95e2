package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/csrf"

	"github.com/ezequielleiter/admin-buffets-teo/internal/teoauth"
)

//go:embed templates/*.html
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"money": func(v float64) string {
		return fmt.Sprintf("$%.0f", v)
	},
	"mul": func(precio float64, cantidad int) float64 {
		return precio * float64(cantidad)
	},
	"contrast": contrastColor,
	"fechaCorta": func(t time.Time) string {
		return t.Format("02/01/2006")
	},
	"fechaHora": func(t time.Time) string {
		return t.Format("02/01/2006 15:04")
	},
	"hora": func(t time.Time) string {
		return t.Format("15:04")
	},
	"datetimeLocal": func(t time.Time) string {
		return t.Format("2006-01-02T15:04")
	},
	"has": func(list []string, v string) bool {
		for _, item := range list {
			if item == v {
				return true
			}
		}
		return false
	},
	"title": func(s string) string {
		if s == "" {
			return s
		}
		return strings.ToUpper(s[:1]) + s[1:]
	},
}

// loadTemplates parses every page against the base layout, crochet-style:
// one compiled set per page so pages can define the same blocks.
func loadTemplates() (map[string]*template.Template, error) {
	pages, err := templateFS.ReadDir("templates")
	if err != nil {
		return nil, err
	}

	cache := make(map[string]*template.Template)
	for _, page := range pages {
		name := page.Name()
		if name == "base.html" {
			continue
		}
		tmpl, err := template.New(name).Funcs(templateFuncs).ParseFS(templateFS, "templates/base.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parseando %s: %w", name, err)
		}
		cache[name] = tmpl
	}
	return cache, nil
}

// basePage is embedded by every page's view model.
type basePage struct {
	Title   string
	User    teoauth.User
	Flashes []FlashMessage
	CSRF    template.HTML
}

func (s *Server) newBase(w http.ResponseWriter, r *http.Request, title string) basePage {
	page := basePage{
		Title:   title,
		Flashes: s.popFlashes(w, r),
		CSRF:    csrf.TemplateField(r),
	}
	if session := sessionFromContext(r.Context()); session != nil {
		page.User = session.User
	}
	return page
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	tmpl, ok := s.templates[page]
	if !ok {
		slog.Error("template no encontrado", "page", page)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	// Render to a buffer first so a template error never emits a half page.
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base", data); err != nil {
		slog.Error("renderizando template", "page", page, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
