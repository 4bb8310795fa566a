package common

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airline-ops/seatcrew/internal/domain"
	"airline-ops/seatcrew/internal/models/dtos"
)

func TestDecodeAndValidate(t *testing.T) {
	cases := []struct {
		name string
		body string
		dst  any
		msg  string
	}{
		{"bad json", `{"passenger_id":`, &dtos.ManualSeatAssignmentReq{}, "Invalid request body"},
		{"missing passenger", `{"seat_number":"1A"}`, &dtos.ManualSeatAssignmentReq{}, "passenger_id is required"},
		{"missing seat", `{"passenger_id":4}`, &dtos.ManualSeatAssignmentReq{}, "seat_number is required"},
		{"negative passenger", `{"passenger_id":-4,"seat_number":"1A"}`, &dtos.ManualSeatAssignmentReq{}, "passenger_id must be a positive id"},
		{"absent pilots", `{"cabin_crew_ids":[3]}`, &dtos.CrewAssignmentReq{}, "pilot_ids is required"},
		{"empty cabin crew", `{"pilot_ids":[1],"cabin_crew_ids":[]}`, &dtos.CrewAssignmentReq{}, "cabin_crew_ids must not be empty"},
		{"zero pilot id", `{"pilot_ids":[1,0],"cabin_crew_ids":[3]}`, &dtos.CrewAssignmentReq{}, "pilot_ids[1] must be a positive id"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/", strings.NewReader(tc.body))
			err := DecodeAndValidate(req, tc.dst)
			require.Error(t, err)
			assert.True(t, domain.IsValidation(err))
			assert.Equal(t, tc.msg, err.Error())
		})
	}
}

func TestDecodeAndValidate_Accepts(t *testing.T) {
	req := httptest.NewRequest("PUT", "/", strings.NewReader(`{"passenger_id":4,"seat_number":"12C","validate_seat":true}`))

	var body dtos.ManualSeatAssignmentReq
	require.NoError(t, DecodeAndValidate(req, &body))
	assert.Equal(t, int64(4), body.PassengerID)
	assert.Equal(t, "12C", body.SeatNumber)
	assert.True(t, body.ValidateSeat)
}
