package models

// Trip groups participants, expenses and transfers.
type Trip struct {
	// ID is the unique identifier for the trip (UUID format).
	ID string

	// Name is the display name of the trip (e.g., "Lisbon 2026").
	Name string

	// Location is an optional free-form place name.
	Location string

	// StartDate and EndDate are optional calendar dates (YYYY-MM-DD).
	StartDate string
	EndDate   string

	// IsArchived hides the trip from the active list without deleting it.
	IsArchived bool

	// CreatedAt and UpdatedAt are Unix timestamps maintained by the store.
	CreatedAt int64
	UpdatedAt int64
}

// TripUpdate carries a partial update. Nil fields are left unchanged.
type TripUpdate struct {
	Name       *string
	Location   *string
	StartDate  *string
	EndDate    *string
	IsArchived *bool
}

// Participant is a member of one trip's roster.
type Participant struct {
	// ID is the unique identifier for the participant (UUID format).
	ID string

	// TripID is the trip this participant belongs to.
	TripID string

	// Name is the display name, unique only by convention.
	Name string
}
