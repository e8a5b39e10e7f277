package services

import (
	"testing"
	"time"

	"github.com/gautham-here/hackathon-centre/models"
)

func TestNumericFromString(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"₹50,000", 50000},
		{"TBA", 0},
		{"Free", 0},
		{"", 0},
		{"₹500", 500},
		{"Rs. 1,00,000 pool", 100000},
		{"100 per head", 100},
	}
	for _, tt := range tests {
		if got := NumericFromString(tt.in); got != tt.want {
			t.Errorf("NumericFromString(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestIsRegistrationOpen(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		deadline string
		open     string
		want     bool
	}{
		{"future deadline, no open time", "2099-01-01", "", true},
		{"past deadline", "2020-01-01", "", false},
		{"missing deadline", "", "", false},
		{"unparseable deadline", "soon", "", false},
		{"open time in the future", "2099-01-01", "2098-01-01", false},
		{"inside the window", "2099-01-01", "2020-01-01", true},
		{"open time with clock component", "2026-06-15T18:00", "2026-06-15T09:00", true},
		{"deadline with clock already passed", "2026-06-15T09:00", "", false},
		{"unparseable open time treated as absent", "2099-01-01", "whenever", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := models.Event{RegDeadline: tt.deadline, RegOpen: tt.open}
			if got := IsRegistrationOpen(ev, now); got != tt.want {
				t.Errorf("IsRegistrationOpen(deadline=%q, open=%q) = %v, want %v",
					tt.deadline, tt.open, got, tt.want)
			}
		})
	}
}

func TestFilterEventsDomains(t *testing.T) {
	now := time.Now()
	events := []models.Event{
		{ID: 1, Title: "a", DomainsJSON: `["AI/ML","FinTech"]`},
		{ID: 2, Title: "b", DomainsJSON: `["Web Development"]`},
		{ID: 3, Title: "c", DomainsJSON: `["ai/ml"]`},
		{ID: 4, Title: "d", DomainsJSON: ``},
	}

	got := FilterEvents(events, QuerySpec{Domains: []string{"AI/ML"}}, now)
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("domain filter returned %v, want events 1 and 3", ids(got))
	}

	// OR across requested tags
	got = FilterEvents(events, QuerySpec{Domains: []string{"FinTech", "Web Development"}}, now)
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 2 {
		t.Fatalf("multi-domain filter returned %v, want events 1 and 2", ids(got))
	}
}

func TestFilterEventsPredicatesAnd(t *testing.T) {
	now := time.Now()
	events := []models.Event{
		{ID: 1, Title: "Smart India Hackathon", Organizer: "AICTE", Mode: "offline", Intercollege: "Yes", Eligibility: "UG students only"},
		{ID: 2, Title: "CodeFest", Organizer: "IIT", Mode: "online", Intercollege: "Yes"},
		{ID: 3, Title: "smartathon", Mode: "offline", Intercollege: "No"},
	}

	got := FilterEvents(events, QuerySpec{Q: "smart", Mode: "OFFLINE", Intercollege: "yes"}, now)
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("AND filter returned %v, want only event 1", ids(got))
	}

	got = FilterEvents(events, QuerySpec{Eligibility: "ug"}, now)
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("eligibility filter returned %v, want only event 1", ids(got))
	}

	// no constraints: everything, input order preserved
	got = FilterEvents(events, QuerySpec{}, now)
	if len(got) != 3 {
		t.Fatalf("empty spec returned %d events, want 3", len(got))
	}
}

func TestFilterEventsRegStatus(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	events := []models.Event{
		{ID: 1, RegDeadline: "2099-01-01"},
		{ID: 2, RegDeadline: "2020-01-01"},
		{ID: 3, RegDeadline: ""},
	}

	open := FilterEvents(events, QuerySpec{RegStatus: "open"}, now)
	if len(open) != 1 || open[0].ID != 1 {
		t.Fatalf("open filter returned %v, want only event 1", ids(open))
	}
	closed := FilterEvents(events, QuerySpec{RegStatus: "closed"}, now)
	if len(closed) != 2 || closed[0].ID != 2 || closed[1].ID != 3 {
		t.Fatalf("closed filter returned %v, want events 2 and 3", ids(closed))
	}
}

func TestFilterEventsDateRange(t *testing.T) {
	now := time.Now()
	events := []models.Event{
		{ID: 1, StartDT: "2026-03-01", EndDT: "2026-03-02"},
		{ID: 2, StartDT: "2026-06-10", EndDT: "2026-06-12"},
		{ID: 3, StartDT: "2026-09-20", EndDT: "2026-09-21"},
	}

	got := FilterEvents(events, QuerySpec{From: "2026-05-01", To: "2026-07-01"}, now)
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("date range returned %v, want only event 2", ids(got))
	}
}

func TestFilterEventsSort(t *testing.T) {
	now := time.Now()
	events := []models.Event{
		{ID: 1, Fee: "₹500", Prize: "₹10,000", RegDeadline: "2026-05-01", StartDT: "2026-07-01"},
		{ID: 2, Fee: "Free", Prize: "TBA", RegDeadline: "2026-03-01", StartDT: "2026-04-01"},
		{ID: 3, Fee: "₹100", Prize: "₹50,000", RegDeadline: "2026-04-01", StartDT: "2026-05-01"},
	}

	fee := FilterEvents(events, QuerySpec{Sort: "fee"}, now)
	if ids(fee) != [3]uint{2, 3, 1} {
		t.Errorf("fee sort order = %v, want [2 3 1]", ids(fee))
	}
	prize := FilterEvents(events, QuerySpec{Sort: "prize"}, now)
	if ids(prize) != [3]uint{3, 1, 2} {
		t.Errorf("prize sort order = %v, want [3 1 2]", ids(prize))
	}
	deadline := FilterEvents(events, QuerySpec{Sort: "deadline"}, now)
	if ids(deadline) != [3]uint{2, 3, 1} {
		t.Errorf("deadline sort order = %v, want [2 3 1]", ids(deadline))
	}
	start := FilterEvents(events, QuerySpec{Sort: "start"}, now)
	if ids(start) != [3]uint{2, 3, 1} {
		t.Errorf("start sort order = %v, want [2 3 1]", ids(start))
	}
}

func ids(events []models.Event) [3]uint {
	var out [3]uint
	for i, ev := range events {
		if i >= 3 {
			break
		}
		out[i] = ev.ID
	}
	return out
}
