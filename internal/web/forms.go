package web

import (
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ezequielleiter/admin-buffets-teo/internal/backend"
)

// Form validation mirrors what the dashboard always enforced before
// submitting: required fields and URL shape. Business rules stay with the
// backend.

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func isValidURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

type eventoForm struct {
	Nombre      string
	Fecha       string
	BuffetID    string
	Imagen      string
	Descripcion string
	Instagram   string
	Facebook    string
	Spotify     string
	Youtube     string
}

func parseEventoForm(r *http.Request) eventoForm {
	return eventoForm{
		Nombre:      strings.TrimSpace(r.PostFormValue("nombre")),
		Fecha:       strings.TrimSpace(r.PostFormValue("fecha")),
		BuffetID:    strings.TrimSpace(r.PostFormValue("buffet_id")),
		Imagen:      strings.TrimSpace(r.PostFormValue("imagen")),
		Descripcion: strings.TrimSpace(r.PostFormValue("descripcion")),
		Instagram:   strings.TrimSpace(r.PostFormValue("instagram")),
		Facebook:    strings.TrimSpace(r.PostFormValue("facebook")),
		Spotify:     strings.TrimSpace(r.PostFormValue("spotify")),
		Youtube:     strings.TrimSpace(r.PostFormValue("youtube")),
	}
}

func (f eventoForm) Validate() map[string]string {
	errs := map[string]string{}
	if f.Nombre == "" {
		errs["nombre"] = "El nombre del evento es requerido"
	}
	if f.Fecha == "" {
		errs["fecha"] = "La fecha es requerida"
	} else if _, err := parseFecha(f.Fecha); err != nil {
		errs["fecha"] = "La fecha no es válida"
	}
	if f.BuffetID == "" {
		errs["buffet_id"] = "El buffet es requerido"
	}
	if f.Imagen == "" {
		errs["imagen"] = "La URL de la imagen es requerida"
	} else if !isValidURL(f.Imagen) {
		errs["imagen"] = "La URL de la imagen no es válida"
	}
	for field, val := range map[string]string{
		"instagram": f.Instagram,
		"facebook":  f.Facebook,
		"spotify":   f.Spotify,
		"youtube":   f.Youtube,
	} {
		if val != "" && !isValidURL(val) {
			errs[field] = "La URL no es válida"
		}
	}
	return errs
}

func (f eventoForm) Data() backend.CreateEventoData {
	fecha, _ := parseFecha(f.Fecha)
	data := backend.CreateEventoData{
		Nombre:      f.Nombre,
		Fecha:       fecha.UTC().Format(time.RFC3339),
		BuffetID:    f.BuffetID,
		Imagen:      f.Imagen,
		Descripcion: f.Descripcion,
	}
	if f.Instagram != "" || f.Facebook != "" || f.Spotify != "" || f.Youtube != "" {
		data.RedesArtista = &backend.RedesArtista{
			Instagram: f.Instagram,
			Facebook:  f.Facebook,
			Spotify:   f.Spotify,
			Youtube:   f.Youtube,
		}
	}
	return data
}

// parseFecha accepts what a datetime-local input posts plus full RFC 3339.
func parseFecha(raw string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Parse("2006-01-02", raw)
}

type productoForm struct {
	BuffetID    string
	Nombre      string
	Valor       float64
	ValorRaw    string
	Descripcion string
	Imagen      string
	Disponible  bool
}

func parseProductoForm(r *http.Request) productoForm {
	raw := strings.TrimSpace(r.PostFormValue("valor"))
	valor, _ := strconv.ParseFloat(raw, 64)
	return productoForm{
		BuffetID:    strings.TrimSpace(r.PostFormValue("buffet_id")),
		Nombre:      strings.TrimSpace(r.PostFormValue("nombre")),
		Valor:       valor,
		ValorRaw:    raw,
		Descripcion: strings.TrimSpace(r.PostFormValue("descripcion")),
		Imagen:      strings.TrimSpace(r.PostFormValue("imagen")),
		Disponible:  r.PostFormValue("disponible") == "on" || r.PostFormValue("disponible") == "true",
	}
}

func (f productoForm) Validate() map[string]string {
	errs := map[string]string{}
	if f.BuffetID == "" {
		errs["buffet_id"] = "El buffet es requerido"
	}
	if f.Nombre == "" {
		errs["nombre"] = "El nombre es requerido"
	}
	if f.Valor <= 0 {
		errs["valor"] = "El valor debe ser mayor a 0"
	}
	if f.Descripcion == "" {
		errs["descripcion"] = "La descripción es requerida"
	}
	if f.Imagen != "" && !isValidURL(f.Imagen) {
		errs["imagen"] = "La URL de la imagen no es válida"
	}
	return errs
}

func (f productoForm) Data() backend.CreateProductoData {
	disponible := f.Disponible
	return backend.CreateProductoData{
		BuffetID:    f.BuffetID,
		Nombre:      f.Nombre,
		Valor:       f.Valor,
		Descripcion: f.Descripcion,
		Imagen:      f.Imagen,
		Disponible:  &disponible,
	}
}

type promoForm struct {
	BuffetID  string
	Nombre    string
	Productos []string
	Valor     float64
	ValorRaw  string
}

func parsePromoForm(r *http.Request) promoForm {
	raw := strings.TrimSpace(r.PostFormValue("valor"))
	valor, _ := strconv.ParseFloat(raw, 64)
	var productos []string
	for _, id := range r.PostForm["productos"] {
		if id = strings.TrimSpace(id); id != "" {
			productos = append(productos, id)
		}
	}
	return promoForm{
		BuffetID:  strings.TrimSpace(r.PostFormValue("buffet_id")),
		Nombre:    strings.TrimSpace(r.PostFormValue("nombre")),
		Productos: productos,
		Valor:     valor,
		ValorRaw:  raw,
	}
}

func (f promoForm) Validate() map[string]string {
	errs := map[string]string{}
	if f.BuffetID == "" {
		errs["buffet_id"] = "El buffet es requerido"
	}
	if f.Nombre == "" {
		errs["nombre"] = "El nombre es requerido"
	}
	if len(f.Productos) < 2 {
		errs["productos"] = "Debe seleccionar al menos 2 productos"
	}
	if f.Valor <= 0 {
		errs["valor"] = "El valor debe ser mayor a 0"
	}
	return errs
}

func (f promoForm) Data() backend.CreatePromoData {
	return backend.CreatePromoData{
		BuffetID:  f.BuffetID,
		Nombre:    f.Nombre,
		Productos: f.Productos,
		Valor:     f.Valor,
	}
}

type bannerForm struct {
	BuffetID string
	Mensaje  string
	Color    string
	Link     string
}

func parseBannerForm(r *http.Request) bannerForm {
	return bannerForm{
		BuffetID: strings.TrimSpace(r.PostFormValue("buffet_id")),
		Mensaje:  strings.TrimSpace(r.PostFormValue("mensaje")),
		Color:    strings.TrimSpace(r.PostFormValue("color")),
		Link:     strings.TrimSpace(r.PostFormValue("link")),
	}
}

func (f bannerForm) Validate() map[string]string {
	errs := map[string]string{}
	if f.BuffetID == "" {
		errs["buffet_id"] = "El buffet es requerido"
	}
	if f.Mensaje == "" {
		errs["mensaje"] = "El mensaje es requerido"
	}
	if f.Color == "" {
		errs["color"] = "El color es requerido"
	} else if !hexColorRe.MatchString(f.Color) {
		errs["color"] = "El color debe tener formato #rrggbb"
	}
	if f.Link != "" && !isValidURL(f.Link) {
		errs["link"] = "La URL no es válida"
	}
	return errs
}

func (f bannerForm) Data() backend.CreateBannerData {
	return backend.CreateBannerData{
		BuffetID: f.BuffetID,
		Mensaje:  f.Mensaje,
		Color:    f.Color,
		Link:     f.Link,
	}
}
