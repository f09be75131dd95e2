package config

import (
	"bytes"
	"encoding/base64"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("API_URL", "")
	t.Setenv("FRONTEND_URL", "")

	cfg := Load()

	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Addr)
	}
	if cfg.APIBaseURL != "http://localhost:3000" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if len(cfg.SessionKey) < 32 || len(cfg.CSRFKey) < 32 {
		t.Errorf("las claves generadas deben tener al menos 32 bytes")
	}
}

func TestLoadTrimsTrailingSlash(t *testing.T) {
	t.Setenv("API_URL", "https://api.example.com/")
	t.Setenv("FRONTEND_URL", "https://menu.example.com/")

	cfg := Load()

	if cfg.APIBaseURL != "https://api.example.com" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.FrontendURL != "https://menu.example.com" {
		t.Errorf("FrontendURL = %q", cfg.FrontendURL)
	}
}

func TestKeyFromEnv(t *testing.T) {
	want := bytes.Repeat([]byte{0xAB}, 32)
	t.Setenv("TEST_KEY", base64.StdEncoding.EncodeToString(want))
	if got := keyFromEnv("TEST_KEY"); !bytes.Equal(got, want) {
		t.Errorf("keyFromEnv no decodificó la clave configurada")
	}

	// Malformed or short keys fall back to a random 32-byte key.
	t.Setenv("TEST_KEY", "no-es-base64!!!")
	if got := keyFromEnv("TEST_KEY"); len(got) != 32 {
		t.Errorf("clave inválida: len = %d, want 32", len(got))
	}

	t.Setenv("TEST_KEY", base64.StdEncoding.EncodeToString([]byte("corta")))
	if got := keyFromEnv("TEST_KEY"); len(got) != 32 {
		t.Errorf("clave corta: len = %d, want 32", len(got))
	}
}

func TestLoadInvalidPortFallsBack(t *testing.T) {
	t.Setenv("PORT", "ochenta")
	cfg := Load()
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Addr)
	}
}
