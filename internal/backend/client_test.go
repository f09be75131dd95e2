package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProductosSendsTokenAndFilters(t *testing.T) {
	var gotAuth, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.RawQuery
		require.Equal(t, "/api/admin-buffets/productos", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"productos": []Producto{{ID: "p1", Nombre: "Choripán", Valor: 3500}},
			"total":     1,
		})
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	productos, total, err := c.ListProductos(context.Background(), "tok-123", ProductoFilters{BuffetID: "b1", Limite: 50, Pagina: 1})
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "buffet_id=b1&limite=50&pagina=1", gotQuery)
	assert.Equal(t, 1, total)
	require.Len(t, productos, 1)
	assert.Equal(t, "Choripán", productos[0].Nombre)
}

func TestCreateEventoPostsPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var data CreateEventoData
		require.NoError(t, json.NewDecoder(r.Body).Decode(&data))
		assert.Equal(t, "Noche de rock", data.Nombre)
		assert.Equal(t, "b1", data.BuffetID)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"evento": Evento{ID: "e1", Nombre: data.Nombre, BuffetID: data.BuffetID},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	evento, err := c.CreateEvento(context.Background(), "tok", CreateEventoData{
		Nombre:   "Noche de rock",
		Fecha:    "2026-09-12T21:00:00Z",
		BuffetID: "b1",
		Imagen:   "https://img.example/rock.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, "e1", evento.ID)
}

func TestAPIErrorUsesBackendMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "El buffet no existe"})
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	_, err := c.CreateProducto(context.Background(), "tok", CreateProductoData{Nombre: "x"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "El buffet no existe", apiErr.Message)
	assert.Equal(t, "El buffet no existe", err.Error())
}

func TestAPIErrorFallsBackWhenBodyUnparseable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<html>boom</html>"))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	_, _, err := c.ListPromos(context.Background(), "tok", PromoFilters{})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Error al cargar promos", apiErr.Message)
}

func TestConnErrorOnTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	c := New(srv.URL, nil)
	_, _, err := c.ListBanners(context.Background(), "tok", BannerFilters{})

	var connErr *ConnError
	require.ErrorAs(t, err, &connErr)
	assert.Equal(t, "Error de conexión", err.Error())
	assert.Error(t, connErr.Unwrap())
}

func TestUpdateOrdenEstadoSendsPartialPut(t *testing.T) {
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/admin-buffets/ordenes/o1", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]any{"orden": Orden{ID: "o1"}})
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	require.NoError(t, c.UpdateOrdenEstado(context.Background(), "tok", "o1", EstadoEntregado))
	assert.Equal(t, map[string]string{"estado": "entregado"}, gotBody)
}

func TestGetEventoPicksFromList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"eventos": []Evento{{ID: "e1", Nombre: "Uno"}, {ID: "e2", Nombre: "Dos"}},
			"total":   2,
		})
	}))
	defer srv.Close()

	c := New(srv.URL, nil)

	evento, err := c.GetEvento(context.Background(), "tok", "e2")
	require.NoError(t, err)
	assert.Equal(t, "Dos", evento.Nombre)

	_, err = c.GetEvento(context.Background(), "tok", "no-existe")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Evento no encontrado", apiErr.Message)
}

func TestReporteQueriesByEvento(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/admin-buffets/reporte", r.URL.Path)
		require.Equal(t, "e1", r.URL.Query().Get("evento_id"))
		_ = json.NewEncoder(w).Encode(Reporte{
			TotalVendido:    12000,
			TotalEfectivo:   8000,
			CantidadOrdenes: 7,
			TopProductos:    []ReporteItem{{Nombre: "Choripán", Cantidad: 10}},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	reporte, err := c.Reporte(context.Background(), "tok", "e1")
	require.NoError(t, err)
	assert.Equal(t, float64(12000), reporte.TotalVendido)
	assert.Equal(t, 7, reporte.CantidadOrdenes)
	require.Len(t, reporte.TopProductos, 1)
}

func TestBuffetMenuIsPublic(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/admin-buffets/buffet-menu/b1", r.URL.Path)
		// No session on the public endpoint.
		require.Empty(t, r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(BuffetMenu{
			Buffet:    Buffet{ID: "b1", Nombre: "La Juanita"},
			Productos: []Producto{{ID: "p1", Nombre: "Pizza", Disponible: true}},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	menu, err := c.BuffetMenu(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, "La Juanita", menu.Buffet.Nombre)
	require.Len(t, menu.Productos, 1)
}
