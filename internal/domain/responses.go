package domain

// LoginResponse is the body returned on successful authentication.
// ExpiresIn is seconds until the token stops verifying.
type LoginResponse struct {
	Success   bool         `json:"success"`
	Token     string       `json:"token"`
	ExpiresIn int64        `json:"expiresIn"`
	Event     *EventPublic `json:"event"`
}

type VerifyResponse struct {
	Valid bool         `json:"valid"`
	Event *EventPublic `json:"event"`
}

type SubmitRSVPResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Counts  RSVPCounts `json:"counts"`
}

type RSVPListResponse struct {
	Success bool       `json:"success"`
	RSVPs   []RSVP     `json:"rsvps"`
	Counts  RSVPCounts `json:"counts"`
}
