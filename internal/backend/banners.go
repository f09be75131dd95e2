package backend

import (
	"context"
	"net/http"
)

const bannersPath = "/api/admin-buffets/banners"

type CreateBannerData struct {
	BuffetID string `json:"buffet_id"`
	Mensaje  string `json:"mensaje"`
	Color    string `json:"color"`
	Link     string `json:"link,omitempty"`
}

func (c *Client) ListBanners(ctx context.Context, token string, filters BannerFilters) ([]Banner, int, error) {
	var out struct {
		Banners []Banner `json:"banners"`
		Total   int      `json:"total"`
	}
	err := c.do(ctx, token, http.MethodGet, bannersPath+filters.Encode(), nil, &out, "Error al cargar banners")
	if err != nil {
		return nil, 0, err
	}
	return out.Banners, out.Total, nil
}

func (c *Client) CreateBanner(ctx context.Context, token string, data CreateBannerData) (*Banner, error) {
	var out struct {
		Banner Banner `json:"banner"`
	}
	err := c.do(ctx, token, http.MethodPost, bannersPath, data, &out, "Error al crear banner")
	if err != nil {
		return nil, err
	}
	return &out.Banner, nil
}

func (c *Client) UpdateBanner(ctx context.Context, token, id string, data CreateBannerData) (*Banner, error) {
	var out struct {
		Banner Banner `json:"banner"`
	}
	err := c.do(ctx, token, http.MethodPut, bannersPath+"/"+id, data, &out, "Error al actualizar banner")
	if err != nil {
		return nil, err
	}
	return &out.Banner, nil
}

func (c *Client) DeleteBanner(ctx context.Context, token, id string) error {
	return c.do(ctx, token, http.MethodDelete, bannersPath+"/"+id, nil, nil, "Error al eliminar banner")
}
