package mappers

import (
	"testing"
	"time"

	"github.com/gautham-here/hackathon-centre/dto"
	"github.com/gautham-here/hackathon-centre/models"
)

func TestMapFormToEventCarriesEveryField(t *testing.T) {
	form := dto.EventForm{
		Title:       "Hack the North East",
		Description: "desc",
		StartDT:     "2099-03-01T09:00",
		EndDT:       "2099-03-02T18:00",
		RegDeadline: "2099-02-20",
		TeamMin:     2,
		TeamMax:     5,
		TeamStatus:  "Fixed",
		Mode:        "hybrid",
		RoundsJSON:  `[{"name":"Finals"}]`,
		DomainsJSON: `["AI/ML"]`,
		ExtraJSON:   `{"wifi":"yes"}`,
		Prize:       "₹50,000",
		Fee:         "Free",
	}

	ev := MapFormToEvent(form)
	if ev.Title != form.Title || ev.TeamMin != 2 || ev.TeamMax != 5 {
		t.Errorf("basic fields not mapped: %+v", ev)
	}
	if ev.RoundsJSON != form.RoundsJSON || ev.DomainsJSON != form.DomainsJSON {
		t.Errorf("serialized fields not mapped: %+v", ev)
	}
	if ev.Status != "" || ev.Upvotes != 0 {
		t.Errorf("mapper must not assign moderation state: %+v", ev)
	}
}

func TestApplyFormPreservesIdentityAndStatus(t *testing.T) {
	ev := models.Event{
		ID:          42,
		Title:       "Old",
		Status:      models.StatusApproved,
		SubmittedBy: models.SubmittedByUser,
		Upvotes:     9,
	}
	ApplyFormToEvent(dto.EventForm{Title: "New"}, &ev)

	if ev.Title != "New" {
		t.Errorf("title not overwritten: %q", ev.Title)
	}
	if ev.ID != 42 || ev.Status != models.StatusApproved || ev.Upvotes != 9 {
		t.Errorf("identity/moderation fields disturbed: %+v", ev)
	}
}

func TestMapEventToRespDecodesSerializedColumns(t *testing.T) {
	ev := models.Event{
		ID:          7,
		Title:       "T",
		RoundsJSON:  `[{"name":"Qualifier"}]`,
		ExtraJSON:   `{"contact":"x@y.z"}`,
		DomainsJSON: `["AI/ML","FinTech"]`,
		Status:      models.StatusApproved,
		SubmittedBy: models.SubmittedByAdmin,
		CreatedAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	resp := MapEventToResp(ev)
	if len(resp.Rounds) != 1 || len(resp.Domains) != 2 || resp.Extra["contact"] != "x@y.z" {
		t.Errorf("serialized columns not decoded: %+v", resp)
	}
	if resp.CreatedAt != "2026-01-02T03:04:05Z" {
		t.Errorf("created_at = %q, want RFC3339", resp.CreatedAt)
	}

	// hand-edited garbage in storage must not break the read path
	broken := models.Event{RoundsJSON: "{oops", ExtraJSON: "[", DomainsJSON: "x"}
	resp = MapEventToResp(broken)
	if resp.Rounds == nil || resp.Extra == nil || resp.Domains == nil {
		t.Errorf("broken storage decoded to nil instead of empty: %+v", resp)
	}
	if len(resp.Rounds) != 0 || len(resp.Extra) != 0 || len(resp.Domains) != 0 {
		t.Errorf("broken storage decoded to non-empty: %+v", resp)
	}
}
