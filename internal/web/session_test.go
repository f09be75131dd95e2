package web

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezequielleiter/admin-buffets-teo/internal/backend"
	"github.com/ezequielleiter/admin-buffets-teo/internal/cart"
	"github.com/ezequielleiter/admin-buffets-teo/internal/config"
	"github.com/ezequielleiter/admin-buffets-teo/internal/teoauth"
)

func newSessionServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.Config{
		Addr:        ":0",
		APIBaseURL:  "http://api.test",
		FrontendURL: "http://frontend.test",
		SessionKey:  []byte("0123456789abcdef0123456789abcdef"),
		CSRFKey:     []byte("fedcba9876543210fedcba9876543210"),
	}
	s, err := NewServer(cfg, teoauth.New(cfg.APIBaseURL, nil), backend.New(cfg.APIBaseURL, nil))
	require.NoError(t, err)
	return s
}

// replayRequest builds a fresh request carrying the cookies a previous
// response set, the way a browser does between the POST and the redirect GET.
func replayRequest(w *httptest.ResponseRecorder, target string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, target, nil)
	latest := map[string]*http.Cookie{}
	for _, c := range w.Result().Cookies() {
		latest[c.Name] = c
	}
	for _, c := range latest {
		r.AddCookie(c)
	}
	return r
}

func TestPanelStateSurvivesRedirect(t *testing.T) {
	s := newSessionServer(t)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/event-panel/e1", nil)

	state := s.loadPanel(r, "e1")
	require.Equal(t, backend.PagoEfectivo, state.MetodoPago)
	state.Cart.Add(cart.Item{ID: "p1", Tipo: backend.TipoProducto, Nombre: "Choripán", Precio: 3500, Cantidad: 2})
	state.ClienteNombre = "Ana"
	state.MetodoPago = backend.PagoTransferencia
	require.NoError(t, s.savePanel(w, r, "e1", state))

	got := s.loadPanel(replayRequest(w, "/event-panel/e1"), "e1")
	require.Len(t, got.Cart.Items, 1)
	assert.Equal(t, "Choripán", got.Cart.Items[0].Nombre)
	assert.Equal(t, 2, got.Cart.Items[0].Cantidad)
	assert.Equal(t, "Ana", got.ClienteNombre)
	assert.Equal(t, backend.PagoTransferencia, got.MetodoPago)
}

func TestPanelStateIsPerEvento(t *testing.T) {
	s := newSessionServer(t)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/event-panel/e1", nil)

	state := s.loadPanel(r, "e1")
	state.Cart.Add(cart.Item{ID: "p1", Tipo: backend.TipoProducto, Nombre: "Pizza", Precio: 5000, Cantidad: 1})
	require.NoError(t, s.savePanel(w, r, "e1", state))

	r2 := replayRequest(w, "/event-panel/e2")
	assert.Empty(t, s.loadPanel(r2, "e2").Cart.Items)
	assert.Len(t, s.loadPanel(r2, "e1").Cart.Items, 1)
}

// A long sale with catalog descriptions and image URLs on every line must
// still fit the cookie: only the fields the panel renders get persisted.
func TestLargeCartStaysWithinCookieLimit(t *testing.T) {
	s := newSessionServer(t)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/event-panel/e1", nil)

	state := s.loadPanel(r, "e1")
	for i := 0; i < 25; i++ {
		state.Cart.Add(cart.Item{
			ID:          fmt.Sprintf("p%02d", i),
			Tipo:        backend.TipoProducto,
			Nombre:      fmt.Sprintf("P%02d", i),
			Precio:      1500,
			Cantidad:    2,
			Descripcion: strings.Repeat("muy rico ", 60),
			Imagen:      "https://cdn.example.com/" + strings.Repeat("x", 400) + ".jpg",
		})
	}
	require.NoError(t, s.savePanel(w, r, "e1", state))

	got := s.loadPanel(replayRequest(w, "/event-panel/e1"), "e1")
	require.Len(t, got.Cart.Items, 25)
	assert.Equal(t, "P00", got.Cart.Items[0].Nombre)
	assert.Equal(t, 2, got.Cart.Items[24].Cantidad)
}

// When the cart genuinely exceeds what a cookie can carry, the save must
// fail visibly: the previous state stays intact and the operator sees a
// flash instead of a silently emptied cart.
func TestOversizedCartFailsLoudly(t *testing.T) {
	s := newSessionServer(t)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/event-panel/e1", nil)

	small := s.loadPanel(r, "e1")
	small.Cart.Add(cart.Item{ID: "p1", Tipo: backend.TipoProducto, Nombre: "Choripán", Precio: 3500, Cantidad: 1})
	require.NoError(t, s.savePanel(w, r, "e1", small))

	huge := s.loadPanel(r, "e1")
	for i := 0; i < 25; i++ {
		huge.Cart.Add(cart.Item{
			ID:       fmt.Sprintf("q%02d", i),
			Tipo:     backend.TipoProducto,
			Nombre:   strings.Repeat("n", 300),
			Precio:   1500,
			Cantidad: 1,
		})
	}
	require.Error(t, s.savePanel(w, r, "e1", huge))

	// The session stays writable after the failed save, so the error
	// actually reaches the operator.
	s.flash(w, r, "error", "No se pudo guardar el carrito")

	r2 := replayRequest(w, "/event-panel/e1")
	w2 := httptest.NewRecorder()

	got := s.loadPanel(r2, "e1")
	require.Len(t, got.Cart.Items, 1)
	assert.Equal(t, "Choripán", got.Cart.Items[0].Nombre)

	flashes := s.popFlashes(w2, r2)
	require.NotEmpty(t, flashes)
	assert.Equal(t, "error", flashes[0].Type)
	assert.Equal(t, "No se pudo guardar el carrito", flashes[0].Message)
}
