package web

import (
	"encoding/gob"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/ezequielleiter/admin-buffets-teo/internal/cart"
	"github.com/ezequielleiter/admin-buffets-teo/internal/teoauth"
)

// authSessionName doubles as the cookie the route gating inspects; its name
// is the same key the dashboard has always stored its session under.
const authSessionName = teoauth.SessionKey

// appSessionName carries flashes and the POS panel state.
const appSessionName = "teo-app"

const sessionValueKey = "session"

type FlashMessage struct {
	Type    string
	Message string
}

func init() {
	gob.Register(FlashMessage{})
}

// cookieSessionStore adapts a gorilla cookie session to teoauth.SessionStore
// for the lifetime of one request.
type cookieSessionStore struct {
	store *sessions.CookieStore
	w     http.ResponseWriter
	r     *http.Request
}

func (s *Server) sessionStore(w http.ResponseWriter, r *http.Request) teoauth.SessionStore {
	return &cookieSessionStore{store: s.cookies, w: w, r: r}
}

func (c *cookieSessionStore) Get() (*teoauth.Session, error) {
	sess, err := c.store.Get(c.r, authSessionName)
	if err != nil {
		// A cookie signed with an old key decodes as a fresh session.
		return nil, nil
	}
	raw, ok := sess.Values[sessionValueKey].(string)
	if !ok || raw == "" {
		return nil, nil
	}
	var out teoauth.Session
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, nil
	}
	return &out, nil
}

func (c *cookieSessionStore) Set(session *teoauth.Session) error {
	blob, err := json.Marshal(session)
	if err != nil {
		return err
	}
	sess, _ := c.store.Get(c.r, authSessionName)
	sess.Values[sessionValueKey] = string(blob)
	sess.Options.MaxAge = int(teoauth.SessionTTL.Seconds())
	return sess.Save(c.r, c.w)
}

func (c *cookieSessionStore) Clear() error {
	sess, _ := c.store.Get(c.r, authSessionName)
	delete(sess.Values, sessionValueKey)
	sess.Options.MaxAge = -1
	return sess.Save(c.r, c.w)
}

func (s *Server) flash(w http.ResponseWriter, r *http.Request, kind, message string) {
	sess, _ := s.cookies.Get(r, appSessionName)
	sess.AddFlash(FlashMessage{Type: kind, Message: message})
	if err := sess.Save(r, w); err != nil {
		slog.Error("guardando flash", "error", err)
	}
}

func (s *Server) popFlashes(w http.ResponseWriter, r *http.Request) []FlashMessage {
	sess, _ := s.cookies.Get(r, appSessionName)
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	_ = sess.Save(r, w)
	out := make([]FlashMessage, 0, len(raw))
	for _, f := range raw {
		if fm, ok := f.(FlashMessage); ok {
			out = append(out, fm)
		}
	}
	return out
}

// panelState is the POS panel's per-evento working state: the cart plus the
// checkout fields and, while editing, the order being replaced.
type panelState struct {
	Cart           cart.Cart `json:"cart"`
	ClienteNombre  string    `json:"clienteNombre"`
	Nota           string    `json:"nota"`
	MetodoPago     string    `json:"metodoPago"`
	EditingID      string    `json:"editingId,omitempty"`
	EditingCliente string    `json:"editingCliente,omitempty"`
}

func panelKey(eventoID string) string {
	return "panel:" + eventoID
}

func (s *Server) loadPanel(r *http.Request, eventoID string) *panelState {
	sess, _ := s.cookies.Get(r, appSessionName)
	raw, ok := sess.Values[panelKey(eventoID)].(string)
	state := &panelState{MetodoPago: "efectivo"}
	if !ok || raw == "" {
		return state
	}
	if err := json.Unmarshal([]byte(raw), state); err != nil {
		return &panelState{MetodoPago: "efectivo"}
	}
	if state.MetodoPago == "" {
		state.MetodoPago = "efectivo"
	}
	return state
}

// savePanel persists the panel state. Cookie sessions have a hard size
// limit (securecookie rejects anything over 4096 bytes), so a cart that no
// longer fits must fail loudly instead of vanishing on the next page load.
// On failure the previous value is restored in the request-cached session,
// keeping it writable for the error flash.
func (s *Server) savePanel(w http.ResponseWriter, r *http.Request, eventoID string, state *panelState) error {
	blob, err := json.Marshal(state)
	if err != nil {
		return err
	}
	sess, _ := s.cookies.Get(r, appSessionName)
	prev, hadPrev := sess.Values[panelKey(eventoID)]
	sess.Values[panelKey(eventoID)] = string(blob)
	if err := sess.Save(r, w); err != nil {
		if hadPrev {
			sess.Values[panelKey(eventoID)] = prev
		} else {
			delete(sess.Values, panelKey(eventoID))
		}
		return err
	}
	return nil
}

func (s *Server) clearPanel(w http.ResponseWriter, r *http.Request, eventoID string) {
	sess, _ := s.cookies.Get(r, appSessionName)
	delete(sess.Values, panelKey(eventoID))
	_ = sess.Save(r, w)
}
