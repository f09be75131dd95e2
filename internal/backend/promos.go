package backend

import (
	"context"
	"net/http"
)

const promosPath = "/api/admin-buffets/promos"

type CreatePromoData struct {
	BuffetID  string   `json:"buffet_id"`
	Nombre    string   `json:"nombre"`
	Productos []string `json:"productos"`
	Valor     float64  `json:"valor"`
}

func (c *Client) ListPromos(ctx context.Context, token string, filters PromoFilters) ([]Promo, int, error) {
	var out struct {
		Promos []Promo `json:"promos"`
		Total  int     `json:"total"`
	}
	err := c.do(ctx, token, http.MethodGet, promosPath+filters.Encode(), nil, &out, "Error al cargar promos")
	if err != nil {
		return nil, 0, err
	}
	return out.Promos, out.Total, nil
}

func (c *Client) CreatePromo(ctx context.Context, token string, data CreatePromoData) (*Promo, error) {
	var out struct {
		Promo Promo `json:"promo"`
	}
	err := c.do(ctx, token, http.MethodPost, promosPath, data, &out, "Error al crear promo")
	if err != nil {
		return nil, err
	}
	return &out.Promo, nil
}

func (c *Client) UpdatePromo(ctx context.Context, token, id string, data CreatePromoData) (*Promo, error) {
	var out struct {
		Promo Promo `json:"promo"`
	}
	err := c.do(ctx, token, http.MethodPut, promosPath+"/"+id, data, &out, "Error al actualizar promo")
	if err != nil {
		return nil, err
	}
	return &out.Promo, nil
}

func (c *Client) DeletePromo(ctx context.Context, token, id string) error {
	return c.do(ctx, token, http.MethodDelete, promosPath+"/"+id, nil, nil, "Error al eliminar promo")
}
