// Package model defines domain entities used by services and repositories.
package model

import "time"

// Role is a user's dashboard role. Transitions are monotone toward
// RoleOrganizer: creating an event promotes, nothing here demotes.
type Role string

const (
	// RoleNone marks a plain participant with no organizer rights.
	RoleNone Role = ""
	// RoleOrganizer marks a user who has created at least one event.
	RoleOrganizer Role = "organizer"
)

// Event is a single shared event record. ID, OrganizerID and UserID are
// immutable once the record is written.
type Event struct {
	ID          string `json:"id"` // short client-generated identifier
	Name        string `json:"name"`
	Date        string `json:"date"` // ISO calendar date, e.g. 2025-01-01
	Description string `json:"description,omitempty"`
	CoverImage  string `json:"coverImage,omitempty"` // public URL, empty when no cover was uploaded

	PhotoCount int `json:"photoCount"`
	VideoCount int `json:"videoCount"`
	GuestCount int `json:"guestCount"`

	// Three historically accreted owner fields. UserEmail is the legacy
	// participant field kept for backward compatibility; OrganizerID and
	// UserID are both set to the creator's identifier at creation time.
	UserEmail   string `json:"userEmail"`
	OrganizerID string `json:"organizerId"`
	UserID      string `json:"userId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// User is a dashboard account keyed by email address (used
// interchangeably with the provider-issued subject ID).
type User struct {
	Email  string
	Name   string
	Mobile string // may be empty pending later collection
	Role   Role
	// CreatedEvents holds IDs of events this user created, in creation
	// order, append-only, no duplicates.
	CreatedEvents []string
}

// EventDraft is the caller-supplied input for event creation.
type EventDraft struct {
	Name        string `validate:"required"`
	Date        string `validate:"required,datetime=2006-01-02"`
	Description string
	// Optional cover image body and its content type.
	CoverImage     []byte
	CoverImageType string
}

// HasCover reports whether a cover image was supplied with the draft.
func (d EventDraft) HasCover() bool { return len(d.CoverImage) > 0 }

// Membership is a bitmask of the independent ways a user identifier can
// be associated with an event record.
type Membership uint8

const (
	// MemberParticipant matches the legacy userEmail field.
	MemberParticipant Membership = 1 << iota
	// MemberOrganizer matches organizerId.
	MemberOrganizer
	// MemberCreator matches userId.
	MemberCreator
)

// Has reports whether m includes the given role bits.
func (m Membership) Has(r Membership) bool { return m&r != 0 }

// EventMembership pairs an event with every discovery role that
// returned it for the current user.
type EventMembership struct {
	Event Event
	Roles Membership
}

// Stats is the roll-up counter snapshot for one user, recomputed on
// demand and never cached.
type Stats struct {
	EventCount int `json:"eventCount"`
	PhotoCount int `json:"photoCount"`
	VideoCount int `json:"videoCount"`
	GuestCount int `json:"guestCount"`
}

// CreateResult reports the outcome of event provisioning. RoleLinked is
// false when the best-effort user-record update failed: the event
// exists but the creator's createdEvents list is missing the new ID.
type CreateResult struct {
	Event      Event
	RoleLinked bool
}
