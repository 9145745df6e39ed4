package service_test

import (
	"context"
	"sort"
	"time"

	"github.com/velvetrope/events-site/internal/domain"
)

// ---------- Mocks ----------

type mockCatalog struct {
	events []*domain.Event
}

func (m *mockCatalog) VerifyPassword(password string) (*domain.Event, error) {
	for _, ev := range m.events {
		// Mock stores the plaintext in PasswordHash for simplicity.
		if ev.PasswordHash == password {
			return ev, nil
		}
	}
	return nil, domain.ErrInvalidPassword
}

func (m *mockCatalog) ByID(id string) (*domain.Event, bool) {
	for _, ev := range m.events {
		if ev.ID == id {
			return ev, true
		}
	}
	return nil, false
}

type mockRSVPRepo struct {
	nextID      int64
	records     []*domain.RSVP
	upsertErr   error
	listErr     error
	countsErr   error
	upsertCalls int
}

func newMockRSVPRepo() *mockRSVPRepo {
	return &mockRSVPRepo{nextID: 1}
}

func (m *mockRSVPRepo) Upsert(_ context.Context, eventID, guestName string, status domain.RSVPStatus) (*domain.RSVP, error) {
	m.upsertCalls++
	if m.upsertErr != nil {
		return nil, m.upsertErr
	}
	for _, rec := range m.records {
		if rec.EventID == eventID && rec.GuestName == guestName {
			rec.Status = status
			rec.CreatedAt = time.Now()
			cp := *rec
			return &cp, nil
		}
	}
	rec := &domain.RSVP{
		ID:        m.nextID,
		EventID:   eventID,
		GuestName: guestName,
		Status:    status,
		CreatedAt: time.Now(),
	}
	m.nextID++
	m.records = append(m.records, rec)
	cp := *rec
	return &cp, nil
}

func (m *mockRSVPRepo) ListForEvent(_ context.Context, eventID string) ([]domain.RSVP, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]domain.RSVP, 0)
	for _, rec := range m.records {
		if rec.EventID == eventID {
			out = append(out, *rec)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (m *mockRSVPRepo) CountsForEvent(_ context.Context, eventID string) (domain.RSVPCounts, error) {
	if m.countsErr != nil {
		return domain.RSVPCounts{}, m.countsErr
	}
	var counts domain.RSVPCounts
	for _, rec := range m.records {
		if rec.EventID != eventID {
			continue
		}
		switch rec.Status {
		case domain.RSVPYes:
			counts.Yes++
		case domain.RSVPNo:
			counts.No++
		case domain.RSVPMaybe:
			counts.Maybe++
		}
		counts.Total++
	}
	return counts, nil
}

func (m *mockRSVPRepo) ClearAll(context.Context) error {
	m.records = nil
	return nil
}

type mockPublisher struct {
	subjects []string
	payloads []interface{}
	err      error
}

func (m *mockPublisher) Publish(_ context.Context, subject string, data interface{}) error {
	m.subjects = append(m.subjects, subject)
	m.payloads = append(m.payloads, data)
	return m.err
}

func (m *mockPublisher) Close() error { return nil }
