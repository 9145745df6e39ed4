package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/velvetrope/events-site/internal/domain"
	"github.com/velvetrope/events-site/pkg/auth"
	"github.com/velvetrope/events-site/pkg/config"
	"github.com/velvetrope/events-site/pkg/events"
	"github.com/velvetrope/events-site/pkg/logger"
)

// EventCatalog is the read-only credential store the gate consults.
type EventCatalog interface {
	VerifyPassword(password string) (*domain.Event, error)
	ByID(id string) (*domain.Event, bool)
}

type AccessService interface {
	Login(ctx context.Context, req *domain.LoginRequest) (*domain.LoginResponse, error)
	Verify(ctx context.Context, token string) (*domain.EventPublic, error)
}

type accessService struct {
	catalog  EventCatalog
	eventBus events.Publisher
	config   *config.Config
}

func NewAccessService(catalog EventCatalog, eventBus events.Publisher, config *config.Config) AccessService {
	return &accessService{
		catalog:  catalog,
		eventBus: eventBus,
		config:   config,
	}
}

// Login verifies the shared password against every event's hash and,
// on a match, mints a time-bound token for that event. A miss costs
// the configured delay before the error returns: with no username to
// lock out, the delay is the throttle against online guessing. The
// sleep holds no lock, so unrelated logins are not serialized.
func (s *accessService) Login(ctx context.Context, req *domain.LoginRequest) (*domain.LoginResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	event, err := s.catalog.VerifyPassword(req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPassword) {
			s.publish(ctx, events.LoginFailed, events.LoginFailedEvent{At: time.Now()})
			time.Sleep(s.config.Auth.LoginFailDelay)
			return nil, domain.ErrInvalidPassword
		}
		return nil, fmt.Errorf("verify password: %w", err)
	}

	token, _, err := auth.NewEventToken(event.ID, s.config.Auth.JWTSecret, s.config.Auth.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to create access token: %w", err)
	}

	s.publish(ctx, events.LoginSucceeded, events.LoginSucceededEvent{EventID: event.ID, At: time.Now()})

	return &domain.LoginResponse{
		Success:   true,
		Token:     token,
		ExpiresIn: int64(s.config.Auth.TokenTTL.Seconds()),
		Event:     event.ToPublic(),
	}, nil
}

// Verify validates the token and resolves the event it names. An id
// that no longer exists in the catalog reads as an invalid token, so
// responses never reveal catalog structure.
func (s *accessService) Verify(ctx context.Context, token string) (*domain.EventPublic, error) {
	claims, err := auth.ParseEventToken(token, s.config.Auth.JWTSecret)
	if err != nil {
		return nil, err
	}

	event, ok := s.catalog.ByID(claims.EventID)
	if !ok {
		return nil, auth.ErrTokenInvalid
	}

	return event.ToPublic(), nil
}

func (s *accessService) publish(ctx context.Context, subject string, payload interface{}) {
	if err := s.eventBus.Publish(ctx, subject, payload); err != nil {
		logger.WarnContext(ctx, "Failed to publish event", "subject", subject, "error", err)
	}
}
