package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"airline-ops/seatcrew/internal/common"
	"airline-ops/seatcrew/internal/constants"
	"airline-ops/seatcrew/internal/domain"
	"airline-ops/seatcrew/internal/models/dtos"
)

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ValidationError{Field: "id", Msg: constants.MsgInvalidID}
	}
	return id, nil
}

// CreateAffiliatedSeatingHandler handles POST /api/v1/flights/{flightNumber}/affiliated-seating
func CreateAffiliatedSeatingHandler(svc RelationshipRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.AffiliatedSeatingReq
		if err := common.DecodeAndValidate(r, &req); err != nil {
			common.RespondDomainError(w, r, initTime, err)
			return
		}

		rel, err := svc.CreateAffiliated(r.Context(), chi.URLParam(r, "flightNumber"), req.MainPassengerID, req.AffiliatedPassengerID)
		if err != nil {
			common.RespondDomainError(w, r, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, constants.MsgAffiliatedCreated, rel, http.StatusCreated)
	}
}

// ListAffiliatedSeatingHandler handles GET /api/v1/flights/{flightNumber}/affiliated-seating
func ListAffiliatedSeatingHandler(svc RelationshipRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		rels, err := svc.ListAffiliated(r.Context(), chi.URLParam(r, "flightNumber"))
		if err != nil {
			common.RespondDomainError(w, r, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, constants.MsgAffiliatedListed, rels)
	}
}

// DeleteAffiliatedSeatingHandler handles DELETE /api/v1/affiliated-seating/{id}
func DeleteAffiliatedSeatingHandler(svc RelationshipRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r)
		if err == nil {
			err = svc.DeleteAffiliated(r.Context(), id)
		}
		if err != nil {
			common.RespondDomainError(w, r, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, constants.MsgAffiliatedDeleted, nil)
	}
}

// CreateInfantParentHandler handles POST /api/v1/flights/{flightNumber}/infant-parent
func CreateInfantParentHandler(svc RelationshipRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.InfantParentReq
		if err := common.DecodeAndValidate(r, &req); err != nil {
			common.RespondDomainError(w, r, initTime, err)
			return
		}

		rel, err := svc.CreateInfantParent(r.Context(), chi.URLParam(r, "flightNumber"), req.InfantPassengerID, req.ParentPassengerID)
		if err != nil {
			common.RespondDomainError(w, r, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, constants.MsgInfantParentCreate, rel, http.StatusCreated)
	}
}

// ListInfantParentHandler handles GET /api/v1/flights/{flightNumber}/infant-parent
func ListInfantParentHandler(svc RelationshipRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		rels, err := svc.ListInfantParent(r.Context(), chi.URLParam(r, "flightNumber"))
		if err != nil {
			common.RespondDomainError(w, r, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, constants.MsgInfantParentListed, rels)
	}
}

// DeleteInfantParentHandler handles DELETE /api/v1/infant-parent/{id}
func DeleteInfantParentHandler(svc RelationshipRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r)
		if err == nil {
			err = svc.DeleteInfantParent(r.Context(), id)
		}
		if err != nil {
			common.RespondDomainError(w, r, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, constants.MsgInfantParentDelete, nil)
	}
}
