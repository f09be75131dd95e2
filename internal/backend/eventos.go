package backend

import (
	"context"
	"net/http"
)

const eventosPath = "/api/admin-buffets/eventos"

type CreateEventoData struct {
	Nombre       string        `json:"nombre"`
	Fecha        string        `json:"fecha"` // ISO 8601
	BuffetID     string        `json:"buffet_id"`
	Imagen       string        `json:"imagen"`
	Descripcion  string        `json:"descripcion,omitempty"`
	RedesArtista *RedesArtista `json:"redes_artista,omitempty"`
}

func (c *Client) ListEventos(ctx context.Context, token string, filters EventoFilters) ([]Evento, int, error) {
	var out struct {
		Eventos []Evento `json:"eventos"`
		Total   int      `json:"total"`
	}
	err := c.do(ctx, token, http.MethodGet, eventosPath+filters.Encode(), nil, &out, "Error al cargar eventos")
	if err != nil {
		return nil, 0, err
	}
	return out.Eventos, out.Total, nil
}

// GetEvento fetches one evento. The API has no GET /:id, so this lists and
// picks, the same way the event panel always has.
func (c *Client) GetEvento(ctx context.Context, token, id string) (*Evento, error) {
	eventos, _, err := c.ListEventos(ctx, token, EventoFilters{Limite: 100, Pagina: 1})
	if err != nil {
		return nil, err
	}
	for i := range eventos {
		if eventos[i].ID == id {
			return &eventos[i], nil
		}
	}
	return nil, &APIError{Status: http.StatusNotFound, Message: "Evento no encontrado"}
}

func (c *Client) CreateEvento(ctx context.Context, token string, data CreateEventoData) (*Evento, error) {
	var out struct {
		Evento Evento `json:"evento"`
	}
	err := c.do(ctx, token, http.MethodPost, eventosPath, data, &out, "Error al crear evento")
	if err != nil {
		return nil, err
	}
	return &out.Evento, nil
}

func (c *Client) UpdateEvento(ctx context.Context, token, id string, data CreateEventoData) (*Evento, error) {
	var out struct {
		Evento Evento `json:"evento"`
	}
	err := c.do(ctx, token, http.MethodPut, eventosPath+"/"+id, data, &out, "Error al actualizar evento")
	if err != nil {
		return nil, err
	}
	return &out.Evento, nil
}

func (c *Client) DeleteEvento(ctx context.Context, token, id string) error {
	return c.do(ctx, token, http.MethodDelete, eventosPath+"/"+id, nil, nil, "Error al eliminar evento")
}
