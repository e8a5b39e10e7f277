package mappers

import (
	"encoding/json"
	"time"

	"github.com/gautham-here/hackathon-centre/dto"
	"github.com/gautham-here/hackathon-centre/models"
)

func MapFormToEvent(f dto.EventForm) models.Event {
	return models.Event{
		Title:           f.Title,
		Description:     f.Description,
		StartDT:         f.StartDT,
		EndDT:           f.EndDT,
		RegDeadline:     f.RegDeadline,
		RegOpen:         f.RegOpen,
		TeamMin:         f.TeamMin,
		TeamMax:         f.TeamMax,
		TeamStatus:      f.TeamStatus,
		Intercollege:    f.Intercollege,
		Interdepartment: f.Interdepartment,
		Interyear:       f.Interyear,
		Mode:            f.Mode,
		Venue:           f.Venue,
		Accommodation:   f.Accommodation,
		RoundsJSON:      f.RoundsJSON,
		LevelsJSON:      f.LevelsJSON,
		ProblemsJSON:    f.ProblemsJSON,
		ExtraJSON:       f.ExtraJSON,
		DomainsJSON:     f.DomainsJSON,
		Sponsor:         f.Sponsor,
		Organizer:       f.Organizer,
		Prize:           f.Prize,
		Fee:             f.Fee,
		Eligibility:     f.Eligibility,
	}
}

// ApplyFormToEvent overwrites every form-backed field of ev in place.
// Identity, status, upvotes and created_at are untouched.
func ApplyFormToEvent(f dto.EventForm, ev *models.Event) {
	ev.Title = f.Title
	ev.Description = f.Description
	ev.StartDT = f.StartDT
	ev.EndDT = f.EndDT
	ev.RegDeadline = f.RegDeadline
	ev.RegOpen = f.RegOpen
	ev.TeamMin = f.TeamMin
	ev.TeamMax = f.TeamMax
	ev.TeamStatus = f.TeamStatus
	ev.Intercollege = f.Intercollege
	ev.Interdepartment = f.Interdepartment
	ev.Interyear = f.Interyear
	ev.Mode = f.Mode
	ev.Venue = f.Venue
	ev.Accommodation = f.Accommodation
	ev.RoundsJSON = f.RoundsJSON
	ev.LevelsJSON = f.LevelsJSON
	ev.ProblemsJSON = f.ProblemsJSON
	ev.ExtraJSON = f.ExtraJSON
	ev.DomainsJSON = f.DomainsJSON
	ev.Sponsor = f.Sponsor
	ev.Organizer = f.Organizer
	ev.Prize = f.Prize
	ev.Fee = f.Fee
	ev.Eligibility = f.Eligibility
}

// MapEventToForm prefills the edit form with an event's current values.
func MapEventToForm(ev models.Event) dto.EventForm {
	return dto.EventForm{
		Title:           ev.Title,
		Description:     ev.Description,
		StartDT:         ev.StartDT,
		EndDT:           ev.EndDT,
		RegDeadline:     ev.RegDeadline,
		RegOpen:         ev.RegOpen,
		TeamMin:         ev.TeamMin,
		TeamMax:         ev.TeamMax,
		TeamStatus:      ev.TeamStatus,
		Intercollege:    ev.Intercollege,
		Interdepartment: ev.Interdepartment,
		Interyear:       ev.Interyear,
		Mode:            ev.Mode,
		Venue:           ev.Venue,
		Accommodation:   ev.Accommodation,
		RoundsJSON:      ev.RoundsJSON,
		LevelsJSON:      ev.LevelsJSON,
		ProblemsJSON:    ev.ProblemsJSON,
		ExtraJSON:       ev.ExtraJSON,
		DomainsJSON:     ev.DomainsJSON,
		Sponsor:         ev.Sponsor,
		Organizer:       ev.Organizer,
		Prize:           ev.Prize,
		Fee:             ev.Fee,
		Eligibility:     ev.Eligibility,
	}
}

func MapEventToResp(ev models.Event) dto.EventResp {
	return dto.EventResp{
		ID:              ev.ID,
		Title:           ev.Title,
		Description:     ev.Description,
		StartDT:         ev.StartDT,
		EndDT:           ev.EndDT,
		RegDeadline:     ev.RegDeadline,
		RegOpen:         ev.RegOpen,
		TeamMin:         ev.TeamMin,
		TeamMax:         ev.TeamMax,
		TeamStatus:      ev.TeamStatus,
		Intercollege:    ev.Intercollege,
		Interdepartment: ev.Interdepartment,
		Interyear:       ev.Interyear,
		Mode:            ev.Mode,
		Venue:           ev.Venue,
		Accommodation:   ev.Accommodation,
		Rounds:          loadList(ev.RoundsJSON),
		Levels:          loadList(ev.LevelsJSON),
		Problems:        loadList(ev.ProblemsJSON),
		Extra:           loadMap(ev.ExtraJSON),
		Domains:         loadStrings(ev.DomainsJSON),
		Sponsor:         ev.Sponsor,
		Organizer:       ev.Organizer,
		Prize:           ev.Prize,
		Fee:             ev.Fee,
		Eligibility:     ev.Eligibility,
		Upvotes:         ev.Upvotes,
		Status:          string(ev.Status),
		SubmittedBy:     string(ev.SubmittedBy),
		CreatedAt:       ev.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func MapEventsToResp(events []models.Event) []dto.EventResp {
	out := make([]dto.EventResp, 0, len(events))
	for _, ev := range events {
		out = append(out, MapEventToResp(ev))
	}
	return out
}

// Safe JSON decoders: stored text is normalized at write time, but a
// hand-edited database must not break the read path.
func loadList(s string) []any {
	out := []any{}
	if s == "" {
		return out
	}
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return []any{}
	}
	return out
}

func loadMap(s string) map[string]any {
	out := map[string]any{}
	if s == "" {
		return out
	}
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return map[string]any{}
	}
	return out
}

func loadStrings(s string) []string {
	out := []string{}
	if s == "" {
		return out
	}
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return []string{}
	}
	return out
}
