package cart

import (
	"testing"

	"github.com/ezequielleiter/admin-buffets-teo/internal/backend"
)

func producto(id, nombre string, precio float64) Item {
	return Item{ID: id, Tipo: backend.TipoProducto, Nombre: nombre, Precio: precio, Cantidad: 1}
}

func TestAddMergesByIDAndTipo(t *testing.T) {
	c := &Cart{}
	c.Add(producto("p1", "Pizza", 5000))
	c.Add(producto("p1", "Pizza", 5000))
	c.Add(Item{ID: "p1", Tipo: backend.TipoPromo, Nombre: "Promo Pizza", Precio: 8000, Cantidad: 1})

	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (producto y promo con el mismo id son líneas distintas)", c.Len())
	}
	if c.Items[0].Cantidad != 2 {
		t.Errorf("cantidad del producto = %d, want 2", c.Items[0].Cantidad)
	}
	if c.Items[1].Cantidad != 1 {
		t.Errorf("cantidad de la promo = %d, want 1", c.Items[1].Cantidad)
	}
}

func TestAddDefaultsCantidad(t *testing.T) {
	c := &Cart{}
	c.Add(Item{ID: "p1", Tipo: backend.TipoProducto, Precio: 100})
	if c.Items[0].Cantidad != 1 {
		t.Errorf("cantidad = %d, want 1", c.Items[0].Cantidad)
	}
}

func TestUpdateQuantityZeroRemoves(t *testing.T) {
	c := &Cart{}
	c.Add(producto("p1", "Pizza", 5000))
	c.Add(producto("p2", "Empanada", 1200))

	c.UpdateQuantity("p1", backend.TipoProducto, 3)
	if c.Items[0].Cantidad != 3 {
		t.Errorf("cantidad = %d, want 3", c.Items[0].Cantidad)
	}

	c.UpdateQuantity("p1", backend.TipoProducto, 0)
	if c.Len() != 1 || c.Items[0].ID != "p2" {
		t.Errorf("la línea con cantidad 0 debería eliminarse, quedó %+v", c.Items)
	}

	c.UpdateQuantity("p2", backend.TipoProducto, -5)
	if c.Len() != 0 {
		t.Errorf("cantidad negativa debería eliminar, quedó %+v", c.Items)
	}
}

func TestTotalIsOrderIndependent(t *testing.T) {
	a := &Cart{}
	a.Add(Item{ID: "p1", Tipo: backend.TipoProducto, Precio: 0.1, Cantidad: 3})
	a.Add(Item{ID: "p2", Tipo: backend.TipoProducto, Precio: 0.2, Cantidad: 1})

	b := &Cart{}
	b.Add(Item{ID: "p2", Tipo: backend.TipoProducto, Precio: 0.2, Cantidad: 1})
	b.Add(Item{ID: "p1", Tipo: backend.TipoProducto, Precio: 0.1, Cantidad: 3})

	if !a.Total().Equal(b.Total()) {
		t.Errorf("Total() depende del orden: %s vs %s", a.Total(), b.Total())
	}
	if a.TotalFloat() != 0.5 {
		t.Errorf("TotalFloat() = %v, want 0.5", a.TotalFloat())
	}
}

func TestValidate(t *testing.T) {
	empty := &Cart{}
	if err := empty.Validate("Ana"); err != ErrEmpty {
		t.Errorf("Validate(vacío) = %v, want ErrEmpty", err)
	}

	c := &Cart{}
	c.Add(producto("p1", "Pizza", 5000))
	if err := c.Validate(""); err != ErrNombreCliente {
		t.Errorf("Validate(sin nombre) = %v, want ErrNombreCliente", err)
	}
	if err := c.Validate("Ana"); err != nil {
		t.Errorf("Validate(ok) = %v, want nil", err)
	}

	c.Add(Item{ID: "", Tipo: backend.TipoProducto, Precio: 100, Cantidad: 1})
	if err := c.Validate("Ana"); err != ErrItemInvalido {
		t.Errorf("Validate(línea sin id) = %v, want ErrItemInvalido", err)
	}
}

func TestBuildOrden(t *testing.T) {
	c := &Cart{}
	c.Add(Item{ID: "p1", Tipo: backend.TipoProducto, Nombre: "Pizza", Precio: 5000, Cantidad: 2})
	c.Add(Item{ID: "pr1", Tipo: backend.TipoPromo, Nombre: "Combo", Precio: 8000, Cantidad: 1})

	data := c.BuildOrden("b1", "e1", "  Ana  ", backend.PagoTransferencia, " sin cebolla ")

	if data.ClienteNombre != "Ana" {
		t.Errorf("ClienteNombre = %q, want %q", data.ClienteNombre, "Ana")
	}
	if data.Nota != "sin cebolla" {
		t.Errorf("Nota = %q, want %q", data.Nota, "sin cebolla")
	}
	if data.Estado != backend.EstadoPendiente {
		t.Errorf("Estado = %q, want pendiente", data.Estado)
	}
	if data.Total != 18000 {
		t.Errorf("Total = %v, want 18000", data.Total)
	}
	if len(data.Productos) != 2 {
		t.Fatalf("Productos = %d líneas, want 2", len(data.Productos))
	}
	if data.Productos[0].Tipo != backend.TipoProducto || data.Productos[0].Cantidad != 2 {
		t.Errorf("línea 0 incorrecta: %+v", data.Productos[0])
	}
}

func TestRebuildFromOrden(t *testing.T) {
	orden := backend.Orden{
		ID:            "o1",
		ClienteNombre: "Ana",
		Productos: []backend.ItemProducto{
			{Tipo: backend.TipoProducto, ID: "p1", Cantidad: 2, PrecioUnitario: 5000},
			{Tipo: backend.TipoPromo, ID: "pr1", Cantidad: 1, PrecioUnitario: 8000},
		},
		ProductosExpandidos: []backend.ProductoExpandido{
			{Nombre: "Pizza", Cantidad: 2, PrecioUnitario: 5000, Imagen: "img.jpg"},
		},
	}

	c := RebuildFromOrden(orden)
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}

	if c.Items[0].Nombre != "Pizza" || c.Items[0].Imagen != "img.jpg" {
		t.Errorf("línea emparejada incorrecta: %+v", c.Items[0])
	}
	// Without a match the line keeps ids and gets a placeholder, never drops.
	if c.Items[1].Nombre != "Producto desconocido" {
		t.Errorf("línea sin match = %q, want placeholder", c.Items[1].Nombre)
	}
	if c.Items[1].ID != "pr1" || c.Items[1].Tipo != backend.TipoPromo {
		t.Errorf("la línea sin match perdió identidad: %+v", c.Items[1])
	}
	if c.Items[1].Descripcion != "Promoción especial" {
		t.Errorf("Descripcion = %q", c.Items[1].Descripcion)
	}

	if c.TotalFloat() != 18000 {
		t.Errorf("TotalFloat() = %v, want 18000", c.TotalFloat())
	}
}
