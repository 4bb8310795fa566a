package api

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"airline-ops/seatcrew/internal/domain"
	"airline-ops/seatcrew/internal/models/dtos"
)

// Mock RelationshipRegistry; unset funcs are never reached by the tests using it
type mockRelationships struct {
	createAffiliatedFunc   func(ctx context.Context, flightNumber string, mainID, affiliatedID int64) (*dtos.AffiliatedSeatingResponse, error)
	listAffiliatedFunc     func(ctx context.Context, flightNumber string) ([]dtos.AffiliatedSeatingResponse, error)
	deleteAffiliatedFunc   func(ctx context.Context, id int64) error
	createInfantParentFunc func(ctx context.Context, flightNumber string, infantID, parentID int64) (*dtos.InfantParentResponse, error)
	listInfantParentFunc   func(ctx context.Context, flightNumber string) ([]dtos.InfantParentResponse, error)
	deleteInfantParentFunc func(ctx context.Context, id int64) error
}

func (m *mockRelationships) CreateAffiliated(ctx context.Context, flightNumber string, mainID, affiliatedID int64) (*dtos.AffiliatedSeatingResponse, error) {
	return m.createAffiliatedFunc(ctx, flightNumber, mainID, affiliatedID)
}

func (m *mockRelationships) ListAffiliated(ctx context.Context, flightNumber string) ([]dtos.AffiliatedSeatingResponse, error) {
	return m.listAffiliatedFunc(ctx, flightNumber)
}

func (m *mockRelationships) DeleteAffiliated(ctx context.Context, id int64) error {
	return m.deleteAffiliatedFunc(ctx, id)
}

func (m *mockRelationships) CreateInfantParent(ctx context.Context, flightNumber string, infantID, parentID int64) (*dtos.InfantParentResponse, error) {
	return m.createInfantParentFunc(ctx, flightNumber, infantID, parentID)
}

func (m *mockRelationships) ListInfantParent(ctx context.Context, flightNumber string) ([]dtos.InfantParentResponse, error) {
	return m.listInfantParentFunc(ctx, flightNumber)
}

func (m *mockRelationships) DeleteInfantParent(ctx context.Context, id int64) error {
	return m.deleteInfantParentFunc(ctx, id)
}

func TestCreateAffiliatedSeatingHandler(t *testing.T) {
	svc := &mockRelationships{
		createAffiliatedFunc: func(ctx context.Context, flightNumber string, mainID, affiliatedID int64) (*dtos.AffiliatedSeatingResponse, error) {
			return &dtos.AffiliatedSeatingResponse{ID: 9, MainPassengerID: mainID, AffiliatedPassengerID: affiliatedID, FlightNumber: flightNumber}, nil
		},
	}

	rr, response := serve(t, "POST", "/flights/{flightNumber}/affiliated-seating", "/flights/AB1234/affiliated-seating",
		dtos.AffiliatedSeatingReq{MainPassengerID: 1, AffiliatedPassengerID: 2}, CreateAffiliatedSeatingHandler(svc))

	if rr.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", rr.Code)
	}
	if response.Message != "Affiliated seating created successfully." {
		t.Errorf("Unexpected message %q", response.Message)
	}
}

func TestCreateAffiliatedSeatingHandler_StorageFailure(t *testing.T) {
	svc := &mockRelationships{
		createAffiliatedFunc: func(ctx context.Context, flightNumber string, mainID, affiliatedID int64) (*dtos.AffiliatedSeatingResponse, error) {
			return nil, domain.InternalError{Msg: "failed to create affiliated seating", Err: errors.New("disk full")}
		},
	}

	rr, response := serve(t, "POST", "/flights/{flightNumber}/affiliated-seating", "/flights/AB1234/affiliated-seating",
		dtos.AffiliatedSeatingReq{MainPassengerID: 1, AffiliatedPassengerID: 2}, CreateAffiliatedSeatingHandler(svc))

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", rr.Code)
	}
	if response.Message != "Internal server error" {
		t.Errorf("Storage details leaked: %q", response.Message)
	}
}

func TestDeleteAffiliatedSeatingHandler(t *testing.T) {
	var deleted int64
	svc := &mockRelationships{
		deleteAffiliatedFunc: func(ctx context.Context, id int64) error {
			if id != 9 {
				return domain.NotFoundError{Resource: "Affiliated seating"}
			}
			deleted = id
			return nil
		},
	}

	rr, response := serve(t, "DELETE", "/affiliated-seating/{id}", "/affiliated-seating/9", nil, DeleteAffiliatedSeatingHandler(svc))
	if rr.Code != http.StatusOK || response.Message != "Affiliated seating deleted successfully." || deleted != 9 {
		t.Errorf("Unexpected delete result %d %+v", rr.Code, response)
	}

	rr, _ = serve(t, "DELETE", "/affiliated-seating/{id}", "/affiliated-seating/10", nil, DeleteAffiliatedSeatingHandler(svc))
	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rr.Code)
	}

	rr, _ = serve(t, "DELETE", "/affiliated-seating/{id}", "/affiliated-seating/abc", nil, DeleteAffiliatedSeatingHandler(svc))
	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
}

func TestInfantParentHandlers(t *testing.T) {
	svc := &mockRelationships{
		createInfantParentFunc: func(ctx context.Context, flightNumber string, infantID, parentID int64) (*dtos.InfantParentResponse, error) {
			return &dtos.InfantParentResponse{ID: 4, InfantPassengerID: infantID, ParentPassengerID: parentID, FlightNumber: flightNumber}, nil
		},
		listInfantParentFunc: func(ctx context.Context, flightNumber string) ([]dtos.InfantParentResponse, error) {
			return []dtos.InfantParentResponse{{ID: 4, FlightNumber: flightNumber}}, nil
		},
		deleteInfantParentFunc: func(ctx context.Context, id int64) error { return nil },
	}

	rr, response := serve(t, "POST", "/flights/{flightNumber}/infant-parent", "/flights/AB1234/infant-parent",
		dtos.InfantParentReq{InfantPassengerID: 3, ParentPassengerID: 2}, CreateInfantParentHandler(svc))
	if rr.Code != http.StatusCreated || response.Message != "Infant-parent relationship created successfully." {
		t.Errorf("Unexpected create result %d %+v", rr.Code, response)
	}

	rr, _ = serve(t, "POST", "/flights/{flightNumber}/infant-parent", "/flights/AB1234/infant-parent",
		`{"infant_passenger_id":3}`, CreateInfantParentHandler(svc))
	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}

	rr, response = serve(t, "GET", "/flights/{flightNumber}/infant-parent", "/flights/AB1234/infant-parent", nil, ListInfantParentHandler(svc))
	if rr.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rr.Code)
	}
	if list, ok := response.Data.([]any); !ok || len(list) != 1 {
		t.Errorf("Unexpected list %+v", response.Data)
	}

	rr, response = serve(t, "DELETE", "/infant-parent/{id}", "/infant-parent/4", nil, DeleteInfantParentHandler(svc))
	if rr.Code != http.StatusOK || response.Message != "Infant-parent relationship deleted successfully." {
		t.Errorf("Unexpected delete result %d %+v", rr.Code, response)
	}
}
