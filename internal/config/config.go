package config

import (
	"crypto/rand"
	"encoding/base64"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Config carries everything the server needs from the environment. The app
// owns no storage: API_URL points at the backend that persists buffets,
// eventos, productos, promos, banners and ordenes.
type Config struct {
	Addr         string
	APIBaseURL   string
	FrontendURL  string
	SessionKey   []byte
	CSRFKey      []byte
	CookieSecure bool
	CookieDomain string
}

func Load() Config {
	port := getenv("PORT", "8080")

	cfg := Config{
		Addr:         ":" + port,
		APIBaseURL:   strings.TrimRight(getenv("API_URL", "http://localhost:3000"), "/"),
		FrontendURL:  strings.TrimRight(getenv("FRONTEND_URL", "http://localhost:"+port), "/"),
		CookieSecure: getenv("COOKIE_SECURE", "false") == "true",
		CookieDomain: os.Getenv("COOKIE_DOMAIN"),
	}

	cfg.SessionKey = keyFromEnv("SESSION_KEY")
	cfg.CSRFKey = keyFromEnv("CSRF_KEY")

	if _, err := strconv.Atoi(port); err != nil {
		slog.Error("PORT invalido, usando 8080", "PORT", port)
		cfg.Addr = ":8080"
	}

	return cfg
}

// keyFromEnv decodes a base64 key of at least 32 bytes. Missing or malformed
// keys fall back to a random per-process key so development still works;
// sessions then reset on restart.
func keyFromEnv(name string) []byte {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		slog.Warn("clave no configurada, generando una aleatoria para desarrollo", "env", name)
		return randomKey(32)
	}
	decoded, err := base64.StdEncoding.DecodeString(raw)
	if err != nil || len(decoded) < 32 {
		slog.Warn("clave invalida o demasiado corta, generando una aleatoria", "env", name)
		return randomKey(32)
	}
	return decoded
}

func randomKey(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic("config: no se pudo leer crypto/rand: " + err.Error())
	}
	return b
}

func getenv(key, fallback string) string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	return val
}
