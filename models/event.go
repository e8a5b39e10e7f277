package models

import (
	"encoding/json"
	"time"
)

type EventStatus string
type Submitter string

const (
	StatusPending  EventStatus = "pending"
	StatusApproved EventStatus = "approved"

	SubmittedByAdmin Submitter = "admin"
	SubmittedByUser  Submitter = "user"
)

// Event is the single listed competition/hackathon record. Date fields
// are kept as the loosely validated datetime-local strings the form
// posts; rounds/levels/problems/extra/domains are serialized JSON text.
type Event struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	Title       string `gorm:"size:300;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`

	StartDT     string `gorm:"size:40;not null" json:"start_dt"`
	EndDT       string `gorm:"size:40;not null" json:"end_dt"`
	RegDeadline string `gorm:"size:40;not null" json:"reg_deadline"`
	RegOpen     string `gorm:"size:40;default:''" json:"reg_open"`

	TeamMin    int    `gorm:"default:0" json:"team_min"`
	TeamMax    int    `gorm:"default:0" json:"team_max"`
	TeamStatus string `gorm:"size:30" json:"team_status"`

	// Yes | No | Not sure
	Intercollege    string `gorm:"size:30" json:"intercollege"`
	Interdepartment string `gorm:"size:30" json:"interdepartment"`
	Interyear       string `gorm:"size:30" json:"interyear"`

	Mode          string `gorm:"size:30" json:"mode"`
	Venue         string `gorm:"size:300" json:"venue"`
	Accommodation string `gorm:"size:30" json:"accommodation"` // Yes | No | To be confirmed

	RoundsJSON   string `gorm:"type:text" json:"-"`
	LevelsJSON   string `gorm:"type:text" json:"-"`
	ProblemsJSON string `gorm:"type:text" json:"-"`
	ExtraJSON    string `gorm:"type:text" json:"-"`
	DomainsJSON  string `gorm:"type:text" json:"-"`

	Sponsor     string `gorm:"size:200" json:"sponsor"`
	Organizer   string `gorm:"size:200" json:"organizer"`
	Prize       string `gorm:"size:100" json:"prize"` // free text: "₹50,000" or "TBA"
	Fee         string `gorm:"size:100" json:"fee"`   // free text: "Free" or "₹500"
	Eligibility string `gorm:"type:text" json:"eligibility"`

	Upvotes     int         `gorm:"default:0" json:"upvotes"`
	Status      EventStatus `gorm:"size:20;default:'approved'" json:"status"`
	SubmittedBy Submitter   `gorm:"size:30;default:'admin'" json:"submitted_by"`
	CreatedAt   time.Time   `json:"created_at"`
}

func (Event) TableName() string {
	return "events"
}

// DomainList decodes the serialized domain tags; malformed or empty
// storage yields an empty list, never an error.
func (e *Event) DomainList() []string {
	var out []string
	if e.DomainsJSON == "" {
		return out
	}
	if err := json.Unmarshal([]byte(e.DomainsJSON), &out); err != nil {
		return nil
	}
	return out
}
