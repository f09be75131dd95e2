package backend

import (
	"context"
	"net/http"
	"net/url"
)

const ordenesPath = "/api/admin-buffets/ordenes"

func (c *Client) ListOrdenes(ctx context.Context, token string, filters OrdenFilters) ([]Orden, int, error) {
	var out struct {
		Ordenes []Orden `json:"ordenes"`
		Total   int     `json:"total"`
	}
	err := c.do(ctx, token, http.MethodGet, ordenesPath+filters.Encode(), nil, &out, "Error al cargar órdenes")
	if err != nil {
		return nil, 0, err
	}
	return out.Ordenes, out.Total, nil
}

func (c *Client) CreateOrden(ctx context.Context, token string, data CreateOrdenData) (*Orden, error) {
	var out struct {
		Orden Orden `json:"orden"`
	}
	err := c.do(ctx, token, http.MethodPost, ordenesPath, data, &out, "Error al crear orden")
	if err != nil {
		return nil, err
	}
	return &out.Orden, nil
}

func (c *Client) UpdateOrden(ctx context.Context, token, id string, data CreateOrdenData) (*Orden, error) {
	var out struct {
		Orden Orden `json:"orden"`
	}
	err := c.do(ctx, token, http.MethodPut, ordenesPath+"/"+id, data, &out, "Error al actualizar la orden")
	if err != nil {
		return nil, err
	}
	return &out.Orden, nil
}

// UpdateOrdenEstado is the partial PUT used by the status-transition buttons.
func (c *Client) UpdateOrdenEstado(ctx context.Context, token, id, estado string) error {
	payload := map[string]string{"estado": estado}
	return c.do(ctx, token, http.MethodPut, ordenesPath+"/"+id, payload, nil, "Error al actualizar la orden")
}

func (c *Client) DeleteOrden(ctx context.Context, token, id string) error {
	return c.do(ctx, token, http.MethodDelete, ordenesPath+"/"+id, nil, nil, "Error al eliminar orden")
}

// Reporte fetches the sales aggregates for one evento.
func (c *Client) Reporte(ctx context.Context, token, eventoID string) (*Reporte, error) {
	var out Reporte
	path := "/api/admin-buffets/reporte?evento_id=" + url.QueryEscape(eventoID)
	if err := c.do(ctx, token, http.MethodGet, path, nil, &out, "Error al cargar el reporte"); err != nil {
		return nil, err
	}
	return &out, nil
}

// BuffetMenu is the public, unauthenticated payload behind the menu and
// kiosk pages.
func (c *Client) BuffetMenu(ctx context.Context, buffetID string) (*BuffetMenu, error) {
	var out BuffetMenu
	path := "/api/admin-buffets/buffet-menu/" + url.PathEscape(buffetID)
	if err := c.do(ctx, "", http.MethodGet, path, nil, &out, "Error al cargar el buffet"); err != nil {
		return nil, err
	}
	return &out, nil
}
