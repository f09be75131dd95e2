package backend

import (
	"net/url"
	"strconv"
)

// Filters translate to the API's query string. Only keys with a defined,
// non-empty value are emitted; url.Values handles percent-encoding.
type Filters interface {
	Encode() string
}

type BuffetFilters struct {
	Nombre string
	Lugar  string
	UserID string
	Limite int
	Pagina int
}

func (f BuffetFilters) Encode() string {
	q := url.Values{}
	addStr(q, "nombre", f.Nombre)
	addStr(q, "lugar", f.Lugar)
	addStr(q, "user_id", f.UserID)
	addInt(q, "limite", f.Limite)
	addInt(q, "pagina", f.Pagina)
	return asQuery(q)
}

type EventoFilters struct {
	BuffetID   string
	UserID     string
	FechaDesde string
	FechaHasta string
	Limite     int
	Pagina     int
}

func (f EventoFilters) Encode() string {
	q := url.Values{}
	addStr(q, "buffet_id", f.BuffetID)
	addStr(q, "user_id", f.UserID)
	addStr(q, "fecha_desde", f.FechaDesde)
	addStr(q, "fecha_hasta", f.FechaHasta)
	addInt(q, "limite", f.Limite)
	addInt(q, "pagina", f.Pagina)
	return asQuery(q)
}

type ProductoFilters struct {
	BuffetID string
	UserID   string
	Nombre   string
	Limite   int
	Pagina   int
}

func (f ProductoFilters) Encode() string {
	q := url.Values{}
	addStr(q, "buffet_id", f.BuffetID)
	addStr(q, "user_id", f.UserID)
	addStr(q, "nombre", f.Nombre)
	addInt(q, "limite", f.Limite)
	addInt(q, "pagina", f.Pagina)
	return asQuery(q)
}

type PromoFilters struct {
	BuffetID string
	UserID   string
	Nombre   string
	Limite   int
	Pagina   int
}

func (f PromoFilters) Encode() string {
	q := url.Values{}
	addStr(q, "buffet_id", f.BuffetID)
	addStr(q, "user_id", f.UserID)
	addStr(q, "nombre", f.Nombre)
	addInt(q, "limite", f.Limite)
	addInt(q, "pagina", f.Pagina)
	return asQuery(q)
}

type BannerFilters struct {
	BuffetID string
	UserID   string
	Limite   int
	Pagina   int
}

func (f BannerFilters) Encode() string {
	q := url.Values{}
	addStr(q, "buffet_id", f.BuffetID)
	addStr(q, "user_id", f.UserID)
	addInt(q, "limite", f.Limite)
	addInt(q, "pagina", f.Pagina)
	return asQuery(q)
}

type OrdenFilters struct {
	BuffetID   string
	EventoID   string
	UserID     string
	Estado     string
	FormaPago  string
	Nota       string
	FechaDesde string
	FechaHasta string
	TotalMin   *float64
	TotalMax   *float64
	Limite     int
	Pagina     int
}

func (f OrdenFilters) Encode() string {
	q := url.Values{}
	addStr(q, "buffet_id", f.BuffetID)
	addStr(q, "evento_id", f.EventoID)
	addStr(q, "user_id", f.UserID)
	addStr(q, "estado", f.Estado)
	addStr(q, "forma_pago", f.FormaPago)
	addStr(q, "nota", f.Nota)
	addStr(q, "fecha_desde", f.FechaDesde)
	addStr(q, "fecha_hasta", f.FechaHasta)
	addFloat(q, "total_min", f.TotalMin)
	addFloat(q, "total_max", f.TotalMax)
	addInt(q, "limite", f.Limite)
	addInt(q, "pagina", f.Pagina)
	return asQuery(q)
}

func addStr(q url.Values, key, val string) {
	if val != "" {
		q.Set(key, val)
	}
}

func addInt(q url.Values, key string, val int) {
	if val > 0 {
		q.Set(key, strconv.Itoa(val))
	}
}

func addFloat(q url.Values, key string, val *float64) {
	if val != nil {
		q.Set(key, strconv.FormatFloat(*val, 'f', -1, 64))
	}
}

func asQuery(q url.Values) string {
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}
