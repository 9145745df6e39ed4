package domain

import (
	"strings"
	"time"
)

type RSVPStatus string

const (
	RSVPYes   RSVPStatus = "yes"
	RSVPNo    RSVPStatus = "no"
	RSVPMaybe RSVPStatus = "maybe"
)

func ParseRSVPStatus(s string) (RSVPStatus, bool) {
	switch RSVPStatus(s) {
	case RSVPYes, RSVPNo, RSVPMaybe:
		return RSVPStatus(s), true
	default:
		return "", false
	}
}

const MaxGuestNameLen = 100

// RSVP is one guest's current response to an event. The pair
// (EventID, GuestName) is unique; resubmission replaces Status and
// CreatedAt in place and keeps the surrogate ID.
type RSVP struct {
	ID        int64      `json:"id"`
	EventID   string     `json:"eventId"`
	GuestName string     `json:"guestName"`
	Status    RSVPStatus `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
}

// RSVPCounts is derived from current records, never stored.
type RSVPCounts struct {
	Yes   int `json:"yes"`
	No    int `json:"no"`
	Maybe int `json:"maybe"`
	Total int `json:"total"`
}

type SubmitRSVPRequest struct {
	EventID   string `json:"eventId"`
	GuestName string `json:"guestName"`
	Status    string `json:"status"`
}

func (r *SubmitRSVPRequest) Normalize() {
	r.EventID = strings.TrimSpace(r.EventID)
	r.GuestName = strings.TrimSpace(r.GuestName)
	r.Status = strings.TrimSpace(r.Status)
}

func (r *SubmitRSVPRequest) Validate() error {
	var fields []FieldError
	if r.EventID == "" {
		fields = append(fields, FieldError{Field: "eventId", Message: "Event ID is required"})
	}
	if r.GuestName == "" || len(r.GuestName) > MaxGuestNameLen {
		fields = append(fields, FieldError{Field: "guestName", Message: "Guest name is required and must be 1-100 characters"})
	}
	if _, ok := ParseRSVPStatus(r.Status); !ok {
		fields = append(fields, FieldError{Field: "status", Message: "Status must be yes, no, or maybe"})
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

const MaxPasswordLen = 100

type LoginRequest struct {
	Password string `json:"password"`
}

func (r *LoginRequest) Normalize() {
	r.Password = strings.TrimSpace(r.Password)
}

func (r *LoginRequest) Validate() error {
	if r.Password == "" || len(r.Password) > MaxPasswordLen {
		return &ValidationError{Fields: []FieldError{
			{Field: "password", Message: "Password is required"},
		}}
	}
	return nil
}
