package services

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gautham-here/hackathon-centre/models"
)

// QuerySpec is the recognized listing query. Zero values mean "no
// constraint"; all present predicates combine with AND.
type QuerySpec struct {
	Q            string   // substring over title+description+organizer
	Mode         string   // online / offline / hybrid
	Intercollege string   // Yes / No / Not sure
	Domains      []string // OR over tags
	Eligibility  string   // substring over the eligibility text
	RegStatus    string   // open | closed, computed from the registration window
	From         string   // lexicographic lower bound on start_dt
	To           string   // lexicographic upper bound on end_dt
	Sort         string   // prize | fee | deadline | start
}

// FilterEvents applies spec to events and returns the matching, ordered
// subset. Input order (descending creation time) is preserved unless a
// sort option is given; sorting is stable.
//
// The from/to range and the deadline/start sorts compare raw date
// strings lexicographically. That is only correct when every stored
// value shares the same format and zero-padding; it is kept that way
// deliberately because true date parsing would change which events
// match.
func FilterEvents(events []models.Event, spec QuerySpec, now time.Time) []models.Event {
	filtered := make([]models.Event, 0, len(events))
	for _, ev := range events {
		if matches(ev, spec, now) {
			filtered = append(filtered, ev)
		}
	}

	switch spec.Sort {
	case "prize":
		sort.SliceStable(filtered, func(i, j int) bool {
			return NumericFromString(filtered[i].Prize) > NumericFromString(filtered[j].Prize)
		})
	case "fee":
		sort.SliceStable(filtered, func(i, j int) bool {
			return NumericFromString(filtered[i].Fee) < NumericFromString(filtered[j].Fee)
		})
	case "deadline":
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].RegDeadline < filtered[j].RegDeadline
		})
	case "start":
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].StartDT < filtered[j].StartDT
		})
	}

	return filtered
}

func matches(ev models.Event, spec QuerySpec, now time.Time) bool {
	if spec.Q != "" {
		txt := strings.ToLower(ev.Title + " " + ev.Description + " " + ev.Organizer)
		if !strings.Contains(txt, strings.ToLower(spec.Q)) {
			return false
		}
	}
	if spec.Mode != "" && !strings.EqualFold(ev.Mode, spec.Mode) {
		return false
	}
	if spec.Intercollege != "" && !strings.EqualFold(ev.Intercollege, spec.Intercollege) {
		return false
	}
	if len(spec.Domains) > 0 && !hasAnyDomain(ev, spec.Domains) {
		return false
	}
	if spec.Eligibility != "" &&
		!strings.Contains(strings.ToLower(ev.Eligibility), strings.ToLower(spec.Eligibility)) {
		return false
	}
	switch spec.RegStatus {
	case "open":
		if !IsRegistrationOpen(ev, now) {
			return false
		}
	case "closed":
		if IsRegistrationOpen(ev, now) {
			return false
		}
	}
	if spec.From != "" && ev.StartDT < spec.From {
		return false
	}
	if spec.To != "" && ev.EndDT > spec.To {
		return false
	}
	return true
}

func hasAnyDomain(ev models.Event, wanted []string) bool {
	have := map[string]bool{}
	for _, d := range ev.DomainList() {
		have[strings.ToLower(d)] = true
	}
	for _, w := range wanted {
		if have[strings.ToLower(w)] {
			return true
		}
	}
	return false
}

var numberRun = regexp.MustCompile(`\d+`)

// NumericFromString extracts the first integer run from a free-text
// amount like "₹50,000"; commas are stripped first, anything without
// digits ("TBA", "Free", "") yields 0.
func NumericFromString(s string) int {
	if s == "" {
		return 0
	}
	m := numberRun.FindString(strings.ReplaceAll(s, ",", ""))
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return n
}

// IsRegistrationOpen computes the registration window at time now. A
// missing or unparseable deadline means closed. When a parseable
// reg_open is present the window is [open, deadline]; otherwise it is
// (-inf, deadline].
func IsRegistrationOpen(ev models.Event, now time.Time) bool {
	deadline, ok := parseLoose(ev.RegDeadline)
	if !ok {
		return false
	}
	if open, ok := parseLoose(ev.RegOpen); ok {
		return !now.Before(open) && !now.After(deadline)
	}
	return !now.After(deadline)
}

// parseLoose accepts the two shapes the datetime-local inputs produce:
// a date with time, or a bare calendar date.
func parseLoose(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
