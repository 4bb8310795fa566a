package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"airline-ops/seatcrew/internal/common"
	"airline-ops/seatcrew/internal/constants"
	"airline-ops/seatcrew/internal/models/dtos"
)

// SaveCrewHandler handles POST /api/v1/flights/{flightNumber}/crew
func SaveCrewHandler(svc CrewRoster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.CrewAssignmentReq
		if err := common.DecodeAndValidate(r, &req); err != nil {
			common.RespondDomainError(w, r, initTime, err)
			return
		}

		crew, err := svc.SaveCrew(r.Context(), chi.URLParam(r, "flightNumber"), req.PilotIDs, req.CabinCrewIDs)
		if err != nil {
			common.RespondDomainError(w, r, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, constants.MsgCrewSaved, crew)
	}
}

// GetCrewHandler handles GET /api/v1/flights/{flightNumber}/crew
func GetCrewHandler(svc CrewRoster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		crew, err := svc.GetCrew(r.Context(), chi.URLParam(r, "flightNumber"))
		if err != nil {
			common.RespondDomainError(w, r, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, constants.MsgCrewFetched, crew)
	}
}
