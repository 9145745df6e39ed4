package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestParseRSVPStatus(t *testing.T) {
	for _, s := range []string{"yes", "no", "maybe"} {
		if _, ok := ParseRSVPStatus(s); !ok {
			t.Errorf("ParseRSVPStatus(%q) not ok", s)
		}
	}
	for _, s := range []string{"", "YES", "perhaps", "y"} {
		if _, ok := ParseRSVPStatus(s); ok {
			t.Errorf("ParseRSVPStatus(%q) ok, want rejection", s)
		}
	}
}

func TestSubmitRSVPRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     SubmitRSVPRequest
		wantErr bool
		field   string
	}{
		{"valid", SubmitRSVPRequest{EventID: "midnight-gala", GuestName: "Alice", Status: "yes"}, false, ""},
		{"missing event", SubmitRSVPRequest{GuestName: "Alice", Status: "yes"}, true, "eventId"},
		{"missing guest", SubmitRSVPRequest{EventID: "midnight-gala", Status: "yes"}, true, "guestName"},
		{"guest too long", SubmitRSVPRequest{EventID: "midnight-gala", GuestName: strings.Repeat("a", 101), Status: "yes"}, true, "guestName"},
		{"guest at limit", SubmitRSVPRequest{EventID: "midnight-gala", GuestName: strings.Repeat("a", 100), Status: "yes"}, false, ""},
		{"bad status", SubmitRSVPRequest{EventID: "midnight-gala", GuestName: "Alice", Status: "perhaps"}, true, "status"},
		{"whitespace guest", SubmitRSVPRequest{EventID: "midnight-gala", GuestName: "   ", Status: "yes"}, true, "guestName"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.req.Normalize()
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("err %T, want *ValidationError", err)
			}
			found := false
			for _, f := range ve.Fields {
				if f.Field == tt.field {
					found = true
				}
			}
			if !found {
				t.Errorf("ValidationError missing field %q: %v", tt.field, ve.Fields)
			}
		})
	}
}

func TestSubmitRSVPRequestNormalizeTrims(t *testing.T) {
	req := SubmitRSVPRequest{EventID: " midnight-gala ", GuestName: "  Alice  ", Status: " yes "}
	req.Normalize()
	if req.EventID != "midnight-gala" || req.GuestName != "Alice" || req.Status != "yes" {
		t.Errorf("Normalize() = %+v", req)
	}
}

func TestEventToPublicOmitsHash(t *testing.T) {
	e := &Event{ID: "midnight-gala", Title: "Midnight Gala", PasswordHash: "secret-hash"}
	pub := e.ToPublic()
	if pub.ID != e.ID || pub.Title != e.Title {
		t.Errorf("ToPublic() = %+v", pub)
	}
}
