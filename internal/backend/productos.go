package backend

import (
	"context"
	"net/http"
)

const productosPath = "/api/admin-buffets/productos"

type CreateProductoData struct {
	BuffetID    string  `json:"buffet_id"`
	Nombre      string  `json:"nombre"`
	Valor       float64 `json:"valor"`
	Descripcion string  `json:"descripcion"`
	Imagen      string  `json:"imagen,omitempty"`
	Disponible  *bool   `json:"disponible,omitempty"`
}

func (c *Client) ListProductos(ctx context.Context, token string, filters ProductoFilters) ([]Producto, int, error) {
	var out struct {
		Productos []Producto `json:"productos"`
		Total     int        `json:"total"`
	}
	err := c.do(ctx, token, http.MethodGet, productosPath+filters.Encode(), nil, &out, "Error al cargar productos")
	if err != nil {
		return nil, 0, err
	}
	return out.Productos, out.Total, nil
}

func (c *Client) CreateProducto(ctx context.Context, token string, data CreateProductoData) (*Producto, error) {
	var out struct {
		Producto Producto `json:"producto"`
	}
	err := c.do(ctx, token, http.MethodPost, productosPath, data, &out, "Error al crear producto")
	if err != nil {
		return nil, err
	}
	return &out.Producto, nil
}

func (c *Client) UpdateProducto(ctx context.Context, token, id string, data CreateProductoData) (*Producto, error) {
	var out struct {
		Producto Producto `json:"producto"`
	}
	err := c.do(ctx, token, http.MethodPut, productosPath+"/"+id, data, &out, "Error al actualizar producto")
	if err != nil {
		return nil, err
	}
	return &out.Producto, nil
}

func (c *Client) DeleteProducto(ctx context.Context, token, id string) error {
	return c.do(ctx, token, http.MethodDelete, productosPath+"/"+id, nil, nil, "Error al eliminar producto")
}
