// Package backend is the typed client for the admin-buffets REST API. The
// API owns all persistence and validation; this package only moves records
// and surfaces the backend's `{error}` messages.
package backend

import "time"

type Buffet struct {
	ID                 string    `json:"_id,omitempty"`
	Nombre             string    `json:"nombre"`
	Lugar              string    `json:"lugar"`
	Descripcion        string    `json:"descripcion"`
	UserID             string    `json:"user_id,omitempty"`
	Logo               string    `json:"logo,omitempty"`
	FechaCreacion      time.Time `json:"fechaCreacion,omitempty"`
	FechaActualizacion time.Time `json:"fechaActualizacion,omitempty"`
}

// RedesArtista holds the optional social links attached to an evento.
type RedesArtista struct {
	Instagram string `json:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Spotify   string `json:"spotify,omitempty"`
	Youtube   string `json:"youtube,omitempty"`
}

type Evento struct {
	ID                 string        `json:"_id,omitempty"`
	Nombre             string        `json:"nombre"`
	Fecha              time.Time     `json:"fecha"`
	BuffetID           string        `json:"buffet_id"`
	UserID             string        `json:"user_id,omitempty"`
	Imagen             string        `json:"imagen,omitempty"`
	Descripcion        string        `json:"descripcion,omitempty"`
	RedesArtista       *RedesArtista `json:"redes_artista,omitempty"`
	FechaCreacion      time.Time     `json:"fechaCreacion,omitempty"`
	FechaActualizacion time.Time     `json:"fechaActualizacion,omitempty"`

	Buffet *Buffet `json:"buffet,omitempty"`
}

type Producto struct {
	ID                 string    `json:"_id,omitempty"`
	BuffetID           string    `json:"buffet_id"`
	UserID             string    `json:"user_id,omitempty"`
	Nombre             string    `json:"nombre"`
	Valor              float64   `json:"valor"`
	Descripcion        string    `json:"descripcion"`
	Imagen             string    `json:"imagen,omitempty"`
	Disponible         bool      `json:"disponible"`
	FechaCreacion      time.Time `json:"fechaCreacion,omitempty"`
	FechaActualizacion time.Time `json:"fechaActualizacion,omitempty"`

	Buffet *Buffet `json:"buffet,omitempty"`
}

type Promo struct {
	ID                 string    `json:"_id,omitempty"`
	BuffetID           string    `json:"buffet_id"`
	UserID             string    `json:"user_id,omitempty"`
	Nombre             string    `json:"nombre"`
	Productos          []string  `json:"productos"`
	Valor              float64   `json:"valor"`
	FechaCreacion      time.Time `json:"fechaCreacion,omitempty"`
	FechaActualizacion time.Time `json:"fechaActualizacion,omitempty"`

	Buffet           *Buffet    `json:"buffet,omitempty"`
	ProductosDetalle []Producto `json:"productosDetalle,omitempty"`
}

type Banner struct {
	ID                 string    `json:"_id,omitempty"`
	BuffetID           string    `json:"buffet_id"`
	UserID             string    `json:"user_id,omitempty"`
	Mensaje            string    `json:"mensaje"`
	Color              string    `json:"color"`
	Link               string    `json:"link,omitempty"`
	FechaCreacion      time.Time `json:"fechaCreacion,omitempty"`
	FechaActualizacion time.Time `json:"fechaActualizacion,omitempty"`
}

const (
	TipoProducto = "producto"
	TipoPromo    = "promo"
)

const (
	EstadoPendiente = "pendiente"
	EstadoEntregado = "entregado"
	EstadoCancelado = "cancelado"
)

const (
	PagoEfectivo      = "efectivo"
	PagoTransferencia = "transferencia"
)

// ItemProducto is an order line as stored by the backend.
type ItemProducto struct {
	Tipo           string  `json:"tipo"`
	ID             string  `json:"id"`
	Cantidad       int     `json:"cantidad"`
	PrecioUnitario float64 `json:"precio_unitario"`
}

// ProductoExpandido is the display view of a line; the backend expands promos
// into their member products here. There is no stable key tying an expanded
// entry back to its ItemProducto.
type ProductoExpandido struct {
	Nombre         string  `json:"nombre"`
	Cantidad       int     `json:"cantidad"`
	PrecioUnitario float64 `json:"precio_unitario"`
	Origen         string  `json:"origen,omitempty"`
	PromoNombre    string  `json:"promo_nombre,omitempty"`
	Imagen         string  `json:"imagen,omitempty"`
}

type Orden struct {
	ID                  string              `json:"_id,omitempty"`
	BuffetID            string              `json:"buffet_id"`
	EventoID            string              `json:"evento_id"`
	UserID              string              `json:"user_id,omitempty"`
	ClienteNombre       string              `json:"cliente_nombre"`
	Productos           []ItemProducto      `json:"productos"`
	ProductosExpandidos []ProductoExpandido `json:"productosExpandidos,omitempty"`
	Total               float64             `json:"total"`
	FormaPago           string              `json:"forma_pago"`
	Nota                string              `json:"nota,omitempty"`
	Estado              string              `json:"estado"`
	FechaCreacion       time.Time           `json:"fechaCreacion,omitempty"`
	FechaActualizacion  time.Time           `json:"fechaActualizacion,omitempty"`
}

// CreateOrdenData is the POST/PUT payload for ordenes.
type CreateOrdenData struct {
	BuffetID      string         `json:"buffet_id"`
	EventoID      string         `json:"evento_id"`
	ClienteNombre string         `json:"cliente_nombre"`
	Productos     []ItemProducto `json:"productos"`
	Total         float64        `json:"total"`
	FormaPago     string         `json:"forma_pago"`
	Nota          string         `json:"nota,omitempty"`
	Estado        string         `json:"estado"`
}

// Reporte aggregates sales for one evento.
type Reporte struct {
	TotalVendido       float64       `json:"totalVendido"`
	TotalEfectivo      float64       `json:"totalEfectivo"`
	TotalTransferencia float64       `json:"totalTransferencia"`
	CantidadOrdenes    int           `json:"cantidadOrdenes"`
	TopProductos       []ReporteItem `json:"topProductos,omitempty"`
	TopPromos          []ReporteItem `json:"topPromos,omitempty"`
}

type ReporteItem struct {
	Nombre   string `json:"nombre"`
	Cantidad int    `json:"cantidad"`
}

// BuffetMenu is the public menu payload consumed by the menu and kiosk pages.
type BuffetMenu struct {
	Buffet    Buffet     `json:"buffet"`
	Productos []Producto `json:"productos"`
	Promos    []Promo    `json:"promos"`
	Eventos   []Evento   `json:"eventos"`
	Banners   []Banner   `json:"banners"`
}
