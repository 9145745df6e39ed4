package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/velvetrope/events-site/internal/domain"
)

type RSVPRepo interface {
	Upsert(ctx context.Context, eventID, guestName string, status domain.RSVPStatus) (*domain.RSVP, error)
	ListForEvent(ctx context.Context, eventID string) ([]domain.RSVP, error)
	CountsForEvent(ctx context.Context, eventID string) (domain.RSVPCounts, error)
	ClearAll(ctx context.Context) error
}

type RSVPRepoImpl struct{ pool *pgxpool.Pool }

func NewRSVPRepo(pool *pgxpool.Pool) *RSVPRepoImpl { return &RSVPRepoImpl{pool: pool} }

const rsvpCols = `id, event_id, guest_name, status, created_at`

// Upsert inserts or, on conflict over (event_id, guest_name), replaces
// status and created_at in place. The surrogate id is stable across
// updates; the unique constraint serializes concurrent writers on the
// same pair.
func (r *RSVPRepoImpl) Upsert(ctx context.Context, eventID, guestName string, status domain.RSVPStatus) (*domain.RSVP, error) {
	const q = `INSERT INTO rsvps (event_id, guest_name, status, created_at)
  VALUES ($1, $2, $3, now())
  ON CONFLICT (event_id, guest_name)
  DO UPDATE SET status = EXCLUDED.status, created_at = now()
  RETURNING ` + rsvpCols

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var rec domain.RSVP
	err := r.pool.QueryRow(ctx, q, eventID, guestName, status).Scan(
		&rec.ID, &rec.EventID, &rec.GuestName, &rec.Status, &rec.CreatedAt,
	)
	if err != nil {
		return nil, storageErr("upsert rsvp", err)
	}
	return &rec, nil
}

// ListForEvent returns all records for the event, most recent response
// first; id breaks created_at ties since timestamps may coincide.
func (r *RSVPRepoImpl) ListForEvent(ctx context.Context, eventID string) ([]domain.RSVP, error) {
	const q = `SELECT ` + rsvpCols + ` FROM rsvps WHERE event_id = $1 ORDER BY created_at DESC, id DESC`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q, eventID)
	if err != nil {
		return nil, storageErr("list rsvps", err)
	}
	defer rows.Close()

	rsvps := make([]domain.RSVP, 0)
	for rows.Next() {
		var rec domain.RSVP
		if err := rows.Scan(&rec.ID, &rec.EventID, &rec.GuestName, &rec.Status, &rec.CreatedAt); err != nil {
			return nil, storageErr("scan rsvp", err)
		}
		rsvps = append(rsvps, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list rsvps", err)
	}
	return rsvps, nil
}

// CountsForEvent tallies current records by status. Statuses with no
// records stay zero.
func (r *RSVPRepoImpl) CountsForEvent(ctx context.Context, eventID string) (domain.RSVPCounts, error) {
	const q = `SELECT status, COUNT(*) FROM rsvps WHERE event_id = $1 GROUP BY status`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var counts domain.RSVPCounts
	rows, err := r.pool.Query(ctx, q, eventID)
	if err != nil {
		return counts, storageErr("count rsvps", err)
	}
	defer rows.Close()

	for rows.Next() {
		var status domain.RSVPStatus
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return domain.RSVPCounts{}, storageErr("scan count", err)
		}
		switch status {
		case domain.RSVPYes:
			counts.Yes = n
		case domain.RSVPNo:
			counts.No = n
		case domain.RSVPMaybe:
			counts.Maybe = n
		}
		counts.Total += n
	}
	if err := rows.Err(); err != nil {
		return domain.RSVPCounts{}, storageErr("count rsvps", err)
	}
	return counts, nil
}

// ClearAll deletes every record across every event. Test/reset paths
// only; never routed.
func (r *RSVPRepoImpl) ClearAll(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if _, err := r.pool.Exec(ctx, `DELETE FROM rsvps`); err != nil {
		return storageErr("clear rsvps", err)
	}
	return nil
}

func storageErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrStorageUnavailable, op, err)
}
