package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.App.Port != "8080" {
		t.Errorf("App.Port = %q, want 8080", cfg.App.Port)
	}
	if cfg.Upstream.BaseURL != "http://localhost:3005" {
		t.Errorf("Upstream.BaseURL = %q", cfg.Upstream.BaseURL)
	}
	if cfg.Upstream.Timeout != 15*time.Second {
		t.Errorf("Upstream.Timeout = %v", cfg.Upstream.Timeout)
	}
	if cfg.Session.CookieName != "backoffice_session" {
		t.Errorf("Session.CookieName = %q", cfg.Session.CookieName)
	}
	if cfg.Session.TTL != 720*time.Hour {
		t.Errorf("Session.TTL = %v", cfg.Session.TTL)
	}
	if cfg.Pages.Customers != 10 || cfg.Pages.Expenses != 5 || cfg.Pages.Receipts != 10 {
		t.Errorf("page sizes = %+v", cfg.Pages)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("UPSTREAM_BASE_URL", "http://backend.internal:9000")
	t.Setenv("SESSION_COOKIE_NAME", "bo_sess")
	t.Setenv("PAGE_SIZE_EXPENSES", "25")

	cfg := Load()

	if cfg.Upstream.BaseURL != "http://backend.internal:9000" {
		t.Errorf("Upstream.BaseURL = %q", cfg.Upstream.BaseURL)
	}
	if cfg.Session.CookieName != "bo_sess" {
		t.Errorf("Session.CookieName = %q", cfg.Session.CookieName)
	}
	if cfg.Pages.Expenses != 25 {
		t.Errorf("Pages.Expenses = %d", cfg.Pages.Expenses)
	}
}
