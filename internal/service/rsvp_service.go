package service

import (
	"context"
	"time"

	"github.com/velvetrope/events-site/internal/domain"
	"github.com/velvetrope/events-site/internal/repo/postgres"
	"github.com/velvetrope/events-site/pkg/events"
	"github.com/velvetrope/events-site/pkg/logger"
)

type RSVPService interface {
	Submit(ctx context.Context, req *domain.SubmitRSVPRequest) (domain.RSVPCounts, error)
	List(ctx context.Context, eventID string) ([]domain.RSVP, domain.RSVPCounts, error)
}

type rsvpService struct {
	repo     postgres.RSVPRepo
	eventBus events.Publisher
}

func NewRSVPService(repo postgres.RSVPRepo, eventBus events.Publisher) RSVPService {
	return &rsvpService{
		repo:     repo,
		eventBus: eventBus,
	}
}

// Submit validates and upserts one guest's response, then returns the
// fresh tally so the caller can render without a second round trip.
// Input is rejected before anything touches storage.
func (s *rsvpService) Submit(ctx context.Context, req *domain.SubmitRSVPRequest) (domain.RSVPCounts, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return domain.RSVPCounts{}, err
	}

	status, _ := domain.ParseRSVPStatus(req.Status)
	rec, err := s.repo.Upsert(ctx, req.EventID, req.GuestName, status)
	if err != nil {
		return domain.RSVPCounts{}, err
	}

	counts, err := s.repo.CountsForEvent(ctx, req.EventID)
	if err != nil {
		return domain.RSVPCounts{}, err
	}

	if err := s.eventBus.Publish(ctx, events.RSVPSubmitted, events.RSVPSubmittedEvent{
		EventID:     rec.EventID,
		GuestName:   rec.GuestName,
		Status:      string(rec.Status),
		SubmittedAt: time.Now(),
	}); err != nil {
		logger.WarnContext(ctx, "Failed to publish event", "subject", events.RSVPSubmitted, "error", err)
	}

	return counts, nil
}

// List returns the current records and tally for one event. An event
// nobody has responded to yields an empty list and zero counts, not
// an error.
func (s *rsvpService) List(ctx context.Context, eventID string) ([]domain.RSVP, domain.RSVPCounts, error) {
	rsvps, err := s.repo.ListForEvent(ctx, eventID)
	if err != nil {
		return nil, domain.RSVPCounts{}, err
	}

	counts, err := s.repo.CountsForEvent(ctx, eventID)
	if err != nil {
		return nil, domain.RSVPCounts{}, err
	}

	return rsvps, counts, nil
}
