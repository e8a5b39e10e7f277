package dto

import (
	"encoding/json"
	"strconv"
	"strings"
)

// EventForm carries the raw submission/add/edit form fields. Decoding is
// total: Normalize never fails, it defaults whatever is missing or
// malformed so the public form stays frictionless.
type EventForm struct {
	Title       string `form:"title"`
	Description string `form:"description"`

	StartDT     string `form:"start_dt"`
	EndDT       string `form:"end_dt"`
	RegDeadline string `form:"reg_deadline"`
	RegOpen     string `form:"reg_open"`

	TeamMinRaw string `form:"team_min"`
	TeamMaxRaw string `form:"team_max"`
	TeamStatus string `form:"team_status"`

	Intercollege    string `form:"intercollege"`
	Interdepartment string `form:"interdepartment"`
	Interyear       string `form:"interyear"`

	Mode          string `form:"mode"`
	Venue         string `form:"venue"`
	Accommodation string `form:"accommodation"`

	Sponsor     string `form:"sponsor"`
	Organizer   string `form:"organizer"`
	Prize       string `form:"prize"`
	Fee         string `form:"fee"`
	Eligibility string `form:"eligibility"`

	// Arrays/objects posted as JSON strings by the front-end.
	RoundsJSON   string `form:"rounds_json"`
	LevelsJSON   string `form:"levels_json"`
	ProblemsJSON string `form:"problems_json"`
	ExtraJSON    string `form:"extra_json"`
	DomainsJSON  string `form:"domains_json"`

	// Populated by Normalize from the raw team fields.
	TeamMin int `form:"-"`
	TeamMax int `form:"-"`
}

// Normalize applies defaults and makes every field well-formed. Integer
// fields parse leniently to 0; JSON-shaped fields are syntax-checked and
// replaced with their empty container on malformed input.
func (f *EventForm) Normalize() {
	f.Title = strings.TrimSpace(f.Title)
	f.Description = strings.TrimSpace(f.Description)

	f.TeamMin = lenientInt(f.TeamMinRaw)
	f.TeamMax = lenientInt(f.TeamMaxRaw)
	if f.TeamStatus == "" {
		f.TeamStatus = "Not sure"
	}

	if f.Intercollege == "" {
		f.Intercollege = "Not sure"
	}
	if f.Interdepartment == "" {
		f.Interdepartment = "Not sure"
	}
	if f.Interyear == "" {
		f.Interyear = "Not sure"
	}
	if f.Mode == "" {
		f.Mode = "Not sure"
	}

	f.RoundsJSON = validJSON(f.RoundsJSON, "[]")
	f.LevelsJSON = validJSON(f.LevelsJSON, "[]")
	f.ProblemsJSON = validJSON(f.ProblemsJSON, "[]")
	f.ExtraJSON = validJSON(f.ExtraJSON, "{}")
	f.DomainsJSON = validJSON(f.DomainsJSON, "[]")
}

// EventResp is the public JSON shape: serialized columns decoded back
// into arrays/objects, created_at in RFC3339.
type EventResp struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`

	StartDT     string `json:"start_dt"`
	EndDT       string `json:"end_dt"`
	RegDeadline string `json:"reg_deadline"`
	RegOpen     string `json:"reg_open"`

	TeamMin    int    `json:"team_min"`
	TeamMax    int    `json:"team_max"`
	TeamStatus string `json:"team_status"`

	Intercollege    string `json:"intercollege"`
	Interdepartment string `json:"interdepartment"`
	Interyear       string `json:"interyear"`

	Mode          string `json:"mode"`
	Venue         string `json:"venue"`
	Accommodation string `json:"accommodation"`

	Rounds   []any          `json:"rounds"`
	Levels   []any          `json:"levels"`
	Problems []any          `json:"problems"`
	Extra    map[string]any `json:"extra"`
	Domains  []string       `json:"domains"`

	Sponsor     string `json:"sponsor"`
	Organizer   string `json:"organizer"`
	Prize       string `json:"prize"`
	Fee         string `json:"fee"`
	Eligibility string `json:"eligibility"`

	Upvotes     int    `json:"upvotes"`
	Status      string `json:"status"`
	SubmittedBy string `json:"submitted_by"`
	CreatedAt   string `json:"created_at"`
}

func lenientInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func validJSON(s, fallback string) string {
	if s == "" {
		return fallback
	}
	if !json.Valid([]byte(s)) {
		return fallback
	}
	return s
}
