package api

// Trip is the wire form of a trip.
type Trip struct {
	Id         string `json:"id"`
	Name       string `json:"name"`
	Location   string `json:"location,omitempty"`
	StartDate  string `json:"startDate,omitempty"`
	EndDate    string `json:"endDate,omitempty"`
	IsArchived bool   `json:"isArchived"`
	CreatedAt  int64  `json:"createdAt"`
	UpdatedAt  int64  `json:"updatedAt"`
}

// Participant is the wire form of a roster entry.
type Participant struct {
	Id     string `json:"id"`
	TripId string `json:"tripId"`
	Name   string `json:"name"`
}

type CreateTripRequest struct {
	Name      string `json:"name"`
	Location  string `json:"location,omitempty"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

type CreateTripResponse struct {
	Trip *Trip `json:"trip"`
}

type GetTripRequest struct {
	TripId string `json:"tripId"`
}

type GetTripResponse struct {
	Trip         *Trip          `json:"trip"`
	Participants []*Participant `json:"participants"`
}

type ListTripsRequest struct {
	IncludeArchived bool `json:"includeArchived,omitempty"`
}

type ListTripsResponse struct {
	Trips []*Trip `json:"trips"`
}

// UpdateTripRequest changes only the fields that are present.
type UpdateTripRequest struct {
	TripId     string  `json:"tripId"`
	Name       *string `json:"name,omitempty"`
	Location   *string `json:"location,omitempty"`
	StartDate  *string `json:"startDate,omitempty"`
	EndDate    *string `json:"endDate,omitempty"`
	IsArchived *bool   `json:"isArchived,omitempty"`
}

type UpdateTripResponse struct {
	Trip *Trip `json:"trip"`
}

type DeleteTripRequest struct {
	TripId string `json:"tripId"`
}

type DeleteTripResponse struct{}

type AddParticipantRequest struct {
	TripId string `json:"tripId"`
	Name   string `json:"name"`
}

type AddParticipantResponse struct {
	Participant *Participant `json:"participant"`
}

type ListParticipantsRequest struct {
	TripId string `json:"tripId"`
}

type ListParticipantsResponse struct {
	Participants []*Participant `json:"participants"`
}

type RenameParticipantRequest struct {
	ParticipantId string `json:"participantId"`
	Name          string `json:"name"`
}

type RenameParticipantResponse struct {
	Participant *Participant `json:"participant"`
}

type RemoveParticipantRequest struct {
	ParticipantId string `json:"participantId"`
}

type RemoveParticipantResponse struct{}
