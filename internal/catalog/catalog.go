// Package catalog holds the static event catalog: every event the
// process serves, keyed by slug, with its shared-password hash.
// Loaded once at startup and read-only afterwards.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alexedwards/argon2id"
	"github.com/velvetrope/events-site/internal/domain"
)

// entry is the on-disk shape. Passwords arrive in plaintext and are
// hashed at load; only the hash is retained.
type entry struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Theme       string `json:"theme"`
	Description string `json:"description"`
	Password    string `json:"password"`
}

type Catalog struct {
	events []*domain.Event
	byID   map[string]*domain.Event
}

// Load reads the catalog file and hashes every event password.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	var entries []entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	return build(entries)
}

func build(entries []entry) (*Catalog, error) {
	c := &Catalog{byID: make(map[string]*domain.Event, len(entries))}

	for i, e := range entries {
		if e.ID == "" {
			return nil, fmt.Errorf("catalog entry %d: missing id", i)
		}
		if e.Password == "" {
			return nil, fmt.Errorf("catalog entry %q: missing password", e.ID)
		}
		if _, dup := c.byID[e.ID]; dup {
			return nil, fmt.Errorf("catalog entry %q: duplicate id", e.ID)
		}

		hash, err := argon2id.CreateHash(e.Password, argon2id.DefaultParams)
		if err != nil {
			return nil, fmt.Errorf("catalog entry %q: hash password: %w", e.ID, err)
		}

		ev := &domain.Event{
			ID:           e.ID,
			Title:        e.Title,
			Date:         e.Date,
			Time:         e.Time,
			Location:     e.Location,
			Theme:        e.Theme,
			Description:  e.Description,
			PasswordHash: hash,
		}
		c.events = append(c.events, ev)
		c.byID[ev.ID] = ev
	}

	return c, nil
}

// VerifyPassword scans the catalog for an event whose hash matches the
// candidate. Event IDs are never chosen by the caller, only passwords,
// so a linear scan over the small catalog is the lookup.
// Returns domain.ErrInvalidPassword when nothing matches; a corrupt
// hash surfaces as a distinct system error.
func (c *Catalog) VerifyPassword(password string) (*domain.Event, error) {
	for _, ev := range c.events {
		match, err := argon2id.ComparePasswordAndHash(password, ev.PasswordHash)
		if err != nil {
			return nil, fmt.Errorf("compare hash for event %q: %w", ev.ID, err)
		}
		if match {
			return ev, nil
		}
	}
	return nil, domain.ErrInvalidPassword
}

func (c *Catalog) ByID(id string) (*domain.Event, bool) {
	ev, ok := c.byID[id]
	return ev, ok
}

func (c *Catalog) Len() int {
	return len(c.events)
}
