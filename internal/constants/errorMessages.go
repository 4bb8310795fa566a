package constants

import "fmt"

const (
	MsgAllPassengersSeated = "All passengers already have seats."
	MsgSeatAssigned        = "Seat assigned successfully."
	MsgCrewSaved           = "Crew assignment saved successfully."
	MsgCrewFetched         = "Crew assignment retrieved successfully."
	MsgSeatMapFetched      = "Seat map retrieved successfully."

	MsgAffiliatedCreated  = "Affiliated seating created successfully."
	MsgAffiliatedDeleted  = "Affiliated seating deleted successfully."
	MsgAffiliatedListed   = "Affiliated seating retrieved successfully."
	MsgInfantParentCreate = "Infant-parent relationship created successfully."
	MsgInfantParentDelete = "Infant-parent relationship deleted successfully."
	MsgInfantParentListed = "Infant-parent relationships retrieved successfully."
)

const (
	MsgInvalidBody     = "Invalid request body"
	MsgInvalidID       = "Invalid id"
	MsgInternalError   = "Internal server error"
	MsgTooManyRequests = "Too many requests"
)

// MsgSeatsAssigned is the auto-assign success message for n newly seated passengers
func MsgSeatsAssigned(n int) string {
	return fmt.Sprintf("Successfully assigned seats to %d passengers.", n)
}

// MsgSeatTaken is the conflict message for a manual assignment
func MsgSeatTaken(seat string) string {
	return fmt.Sprintf("Seat %s is already occupied by another passenger.", seat)
}
