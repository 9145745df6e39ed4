package domain

// Event is one password-gated event page. Built once at startup from
// the catalog file and never mutated afterwards.
type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Theme       string `json:"theme"`
	Description string `json:"description,omitempty"`

	// PasswordHash never leaves the process.
	PasswordHash string `json:"-"`
}

// EventPublic is the client-visible view of an event.
type EventPublic struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Theme       string `json:"theme"`
	Description string `json:"description,omitempty"`
}

func (e *Event) ToPublic() *EventPublic {
	return &EventPublic{
		ID:          e.ID,
		Title:       e.Title,
		Date:        e.Date,
		Time:        e.Time,
		Location:    e.Location,
		Theme:       e.Theme,
		Description: e.Description,
	}
}
