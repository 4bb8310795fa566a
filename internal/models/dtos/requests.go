package dtos

type ManualSeatAssignmentReq struct {
	PassengerID int64  `json:"passenger_id" validate:"required,gt=0"`
	SeatNumber  string `json:"seat_number" validate:"required,max=8"`
	// ValidateSeat checks the seat against the aircraft's plan. Off by default so operators can override.
	ValidateSeat bool `json:"validate_seat"`
}

type CrewAssignmentReq struct {
	PilotIDs     []int64 `json:"pilot_ids" validate:"required,min=1,dive,gt=0"`
	CabinCrewIDs []int64 `json:"cabin_crew_ids" validate:"required,min=1,dive,gt=0"`
}

type AffiliatedSeatingReq struct {
	MainPassengerID       int64 `json:"main_passenger_id" validate:"required,gt=0"`
	AffiliatedPassengerID int64 `json:"affiliated_passenger_id" validate:"required,gt=0"`
}

type InfantParentReq struct {
	InfantPassengerID int64 `json:"infant_passenger_id" validate:"required,gt=0"`
	ParentPassengerID int64 `json:"parent_passenger_id" validate:"required,gt=0"`
}
