package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/velvetrope/events-site/internal/domain"
)

func writeCatalog(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "events.json")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

const testCatalog = `[
  {"id": "midnight-gala", "title": "Midnight Gala", "date": "2024-09-15", "time": "23:00",
   "location": "The Obsidian Ballroom", "theme": "dark", "password": "shadows"},
  {"id": "golden-circle", "title": "The Golden Circle", "date": "2024-10-01", "time": "20:00",
   "location": "Private Residence", "theme": "gold", "password": "midas"}
]`

func TestLoadAndVerifyPassword(t *testing.T) {
	c, err := Load(writeCatalog(t, testCatalog))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}

	ev, err := c.VerifyPassword("shadows")
	if err != nil {
		t.Fatalf("VerifyPassword: %v", err)
	}
	if ev.ID != "midnight-gala" {
		t.Errorf("matched %q, want midnight-gala", ev.ID)
	}

	ev, err = c.VerifyPassword("midas")
	if err != nil {
		t.Fatalf("VerifyPassword: %v", err)
	}
	if ev.ID != "golden-circle" {
		t.Errorf("matched %q, want golden-circle", ev.ID)
	}
}

func TestVerifyPasswordNoMatch(t *testing.T) {
	c, err := Load(writeCatalog(t, testCatalog))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if _, err := c.VerifyPassword("wrong"); !errors.Is(err, domain.ErrInvalidPassword) {
		t.Errorf("err = %v, want ErrInvalidPassword", err)
	}
}

func TestHashesAreNotPlaintext(t *testing.T) {
	c, err := Load(writeCatalog(t, testCatalog))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	ev, _ := c.ByID("midnight-gala")
	if ev.PasswordHash == "shadows" || ev.PasswordHash == "" {
		t.Errorf("password stored without hashing: %q", ev.PasswordHash)
	}
}

func TestByID(t *testing.T) {
	c, err := Load(writeCatalog(t, testCatalog))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if _, ok := c.ByID("midnight-gala"); !ok {
		t.Error("ByID(midnight-gala) not found")
	}
	if _, ok := c.ByID("nonexistent"); ok {
		t.Error("ByID(nonexistent) found")
	}
}

func TestLoadRejectsBadCatalogs(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{"not json", `{{{`},
		{"missing id", `[{"title": "X", "password": "p"}]`},
		{"missing password", `[{"id": "x", "title": "X"}]`},
		{"duplicate id", `[{"id": "x", "password": "a"}, {"id": "x", "password": "b"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeCatalog(t, tt.contents)); err == nil {
				t.Error("Load succeeded, want error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("Load succeeded, want error")
	}
}
