package cart

import (
	"strings"

	"github.com/ezequielleiter/admin-buffets-teo/internal/backend"
)

// BuildOrden assembles the create/update payload for the backend. Validate
// must have passed first; estado always starts (or stays) pendiente here,
// status transitions go through their own partial update.
func (c *Cart) BuildOrden(buffetID, eventoID, clienteNombre, formaPago, nota string) backend.CreateOrdenData {
	return backend.CreateOrdenData{
		BuffetID:      buffetID,
		EventoID:      eventoID,
		ClienteNombre: strings.TrimSpace(clienteNombre),
		Productos:     c.Lines(),
		Total:         c.TotalFloat(),
		FormaPago:     formaPago,
		Nota:          strings.TrimSpace(nota),
		Estado:        backend.EstadoPendiente,
	}
}

// RebuildFromOrden reconstructs a cart from an existing order for editing.
// The backend gives no stable key from a line item to its expanded display
// entry, so lines are matched by (cantidad, precio_unitario) — ambiguous
// when two lines share both. When no display entry matches, the line keeps
// its ids and a placeholder name rather than being dropped.
func RebuildFromOrden(orden backend.Orden) *Cart {
	c := &Cart{}
	for _, line := range orden.Productos {
		item := Item{
			ID:       line.ID,
			Tipo:     line.Tipo,
			Nombre:   "Producto desconocido",
			Precio:   line.PrecioUnitario,
			Cantidad: line.Cantidad,
		}
		if line.Tipo == backend.TipoProducto {
			item.Descripcion = "Producto"
		} else {
			item.Descripcion = "Promoción especial"
		}
		for _, exp := range orden.ProductosExpandidos {
			if exp.Cantidad == line.Cantidad && exp.PrecioUnitario == line.PrecioUnitario {
				item.Nombre = exp.Nombre
				item.Imagen = exp.Imagen
				break
			}
		}
		c.Items = append(c.Items, item)
	}
	return c
}
