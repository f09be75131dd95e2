// Package cart holds the POS panel's order-in-progress. It is plain state
// plus arithmetic; the order lifecycle itself lives in the backend.
package cart

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/ezequielleiter/admin-buffets-teo/internal/backend"
)

var (
	ErrEmpty         = errors.New("el carrito está vacío")
	ErrNombreCliente = errors.New("Por favor ingresa el nombre del cliente")
	ErrItemInvalido  = errors.New("hay productos sin información completa en el carrito")
)

// Item is one cart line. Producto and promo lines with the same ID are
// distinct entries: identity is the (ID, Tipo) pair.
type Item struct {
	ID       string  `json:"id"`
	Tipo     string  `json:"tipo"`
	Nombre   string  `json:"nombre"`
	Precio   float64 `json:"precio"`
	Cantidad int     `json:"cantidad"`
	// Catalog metadata for the request that added the line. The session
	// cookie has a 4KB ceiling, so neither field is persisted.
	Descripcion string `json:"-"`
	Imagen      string `json:"-"`
}

type Cart struct {
	Items []Item `json:"items"`
}

// Add merges by (ID, Tipo): a repeated add bumps cantidad instead of
// appending a duplicate entry.
func (c *Cart) Add(item Item) {
	for i := range c.Items {
		if c.Items[i].ID == item.ID && c.Items[i].Tipo == item.Tipo {
			c.Items[i].Cantidad++
			return
		}
	}
	if item.Cantidad <= 0 {
		item.Cantidad = 1
	}
	c.Items = append(c.Items, item)
}

// UpdateQuantity sets a line's cantidad; zero or below removes the line.
func (c *Cart) UpdateQuantity(id, tipo string, cantidad int) {
	if cantidad <= 0 {
		c.Remove(id, tipo)
		return
	}
	for i := range c.Items {
		if c.Items[i].ID == id && c.Items[i].Tipo == tipo {
			c.Items[i].Cantidad = cantidad
			return
		}
	}
}

func (c *Cart) Remove(id, tipo string) {
	kept := c.Items[:0]
	for _, item := range c.Items {
		if item.ID == id && item.Tipo == tipo {
			continue
		}
		kept = append(kept, item)
	}
	c.Items = kept
}

func (c *Cart) Clear() {
	c.Items = nil
}

func (c *Cart) Len() int {
	return len(c.Items)
}

// Total is Σ precio×cantidad, computed with decimals so float drift never
// shows up on a ticket. The sum is independent of line order.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		line := decimal.NewFromFloat(item.Precio).Mul(decimal.NewFromInt(int64(item.Cantidad)))
		total = total.Add(line)
	}
	return total
}

// TotalFloat is the wire value for the order payload; the API speaks JSON
// numbers.
func (c *Cart) TotalFloat() float64 {
	f, _ := c.Total().Float64()
	return f
}

// Lines maps the cart to backend order lines.
func (c *Cart) Lines() []backend.ItemProducto {
	lines := make([]backend.ItemProducto, 0, len(c.Items))
	for _, item := range c.Items {
		lines = append(lines, backend.ItemProducto{
			Tipo:           item.Tipo,
			ID:             item.ID,
			Cantidad:       item.Cantidad,
			PrecioUnitario: item.Precio,
		})
	}
	return lines
}

// Validate gates the finalize action: at least one line, a customer name,
// and every line carrying id and tipo.
func (c *Cart) Validate(clienteNombre string) error {
	if len(c.Items) == 0 {
		return ErrEmpty
	}
	if clienteNombre == "" {
		return ErrNombreCliente
	}
	for _, item := range c.Items {
		if item.ID == "" || item.Tipo == "" {
			return ErrItemInvalido
		}
	}
	return nil
}
