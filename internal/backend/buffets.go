package backend

import (
	"context"
	"net/http"
)

const buffetsPath = "/api/admin-buffets/buffets"

type CreateBuffetData struct {
	Nombre      string `json:"nombre"`
	Lugar       string `json:"lugar"`
	Descripcion string `json:"descripcion"`
}

func (c *Client) ListBuffets(ctx context.Context, token string, filters BuffetFilters) ([]Buffet, int, error) {
	var out struct {
		Buffets []Buffet `json:"buffets"`
		Total   int      `json:"total"`
	}
	err := c.do(ctx, token, http.MethodGet, buffetsPath+filters.Encode(), nil, &out, "Error al cargar buffets")
	if err != nil {
		return nil, 0, err
	}
	return out.Buffets, out.Total, nil
}

func (c *Client) CreateBuffet(ctx context.Context, token string, data CreateBuffetData) (*Buffet, error) {
	var out struct {
		Buffet Buffet `json:"buffet"`
	}
	err := c.do(ctx, token, http.MethodPost, buffetsPath, data, &out, "Error al crear buffet")
	if err != nil {
		return nil, err
	}
	return &out.Buffet, nil
}

func (c *Client) UpdateBuffet(ctx context.Context, token, id string, data CreateBuffetData) (*Buffet, error) {
	var out struct {
		Buffet Buffet `json:"buffet"`
	}
	err := c.do(ctx, token, http.MethodPut, buffetsPath+"/"+id, data, &out, "Error al actualizar buffet")
	if err != nil {
		return nil, err
	}
	return &out.Buffet, nil
}

func (c *Client) DeleteBuffet(ctx context.Context, token, id string) error {
	return c.do(ctx, token, http.MethodDelete, buffetsPath+"/"+id, nil, nil, "Error al eliminar buffet")
}
