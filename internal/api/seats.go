package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"airline-ops/seatcrew/internal/common"
	"airline-ops/seatcrew/internal/constants"
	"airline-ops/seatcrew/internal/models/dtos"
	"airline-ops/seatcrew/internal/services"
)

// AutoAssignSeatsHandler handles POST /api/v1/flights/{flightNumber}/seats/auto-assign
func AutoAssignSeatsHandler(svc SeatAssigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		result, err := svc.AutoAssign(r.Context(), chi.URLParam(r, "flightNumber"))
		if err != nil {
			common.RespondDomainError(w, r, initTime, err)
			return
		}

		msg := constants.MsgSeatsAssigned(result.Assigned)
		if result.NothingToDo() {
			msg = constants.MsgAllPassengersSeated
		}
		common.RespondSuccess(w, initTime, msg, result)
	}
}

// AssignSeatHandler handles PUT /api/v1/flights/{flightNumber}/seats/assign
func AssignSeatHandler(svc SeatAssigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.ManualSeatAssignmentReq
		if err := common.DecodeAndValidate(r, &req); err != nil {
			common.RespondDomainError(w, r, initTime, err)
			return
		}

		result, err := svc.AssignSeat(r.Context(), services.ManualAssignment{
			FlightNumber:       chi.URLParam(r, "flightNumber"),
			PassengerID:        req.PassengerID,
			SeatNumber:         req.SeatNumber,
			SkipPlanValidation: !req.ValidateSeat,
		})
		if err != nil {
			common.RespondDomainError(w, r, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, constants.MsgSeatAssigned, result)
	}
}

// SeatMapHandler handles GET /api/v1/flights/{flightNumber}/seats
func SeatMapHandler(svc SeatAssigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		seatMap, err := svc.SeatMap(r.Context(), chi.URLParam(r, "flightNumber"))
		if err != nil {
			common.RespondDomainError(w, r, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, constants.MsgSeatMapFetched, seatMap)
	}
}
