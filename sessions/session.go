package sessions

import "context"

// Flash is a one-shot notice queued for the next rendered page.
type Flash struct {
	Message  string `json:"message"`
	Category string `json:"category"` // success | info | warning | danger
}

// Session is the server-side state for one browsing session: the admin
// flag, the per-session voted-event dedup set, and pending flashes. It
// is loaded by middleware, mutated by handlers, and saved after the
// request; nothing here is a process-wide singleton.
type Session struct {
	ID          string  `json:"id"`
	Admin       bool    `json:"admin"`
	AdminUser   string  `json:"admin_user"`
	VotedEvents []uint  `json:"voted_events"`
	Flashes     []Flash `json:"flashes"`

	dirty bool
}

func (s *Session) HasVoted(eventID uint) bool {
	for _, id := range s.VotedEvents {
		if id == eventID {
			return true
		}
	}
	return false
}

func (s *Session) MarkVoted(eventID uint) {
	if s.HasVoted(eventID) {
		return
	}
	s.VotedEvents = append(s.VotedEvents, eventID)
	s.dirty = true
}

func (s *Session) SetAdmin(username string) {
	s.Admin = true
	s.AdminUser = username
	s.dirty = true
}

func (s *Session) Flash(message, category string) {
	s.Flashes = append(s.Flashes, Flash{Message: message, Category: category})
	s.dirty = true
}

// Clear wipes everything but the session id.
func (s *Session) Clear() {
	s.Admin = false
	s.AdminUser = ""
	s.VotedEvents = nil
	s.Flashes = nil
	s.dirty = true
}

// ConsumeFlashes drains the queued notices.
func (s *Session) ConsumeFlashes() []Flash {
	out := s.Flashes
	if len(out) > 0 {
		s.Flashes = nil
		s.dirty = true
	}
	return out
}

// Dirty reports whether the session changed since it was loaded.
func (s *Session) Dirty() bool { return s.dirty }

// Store persists sessions by id. Get returns (nil, nil) for an unknown
// or expired id.
type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, sess *Session) error
	Delete(ctx context.Context, id string) error
}
