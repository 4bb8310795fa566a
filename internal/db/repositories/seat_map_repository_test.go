package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airline-ops/seatcrew/internal/constants"
)

func newMockSeatMapRepo(t *testing.T) (*SeatMapRepo, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return NewSeatMapRepo(sqlx.NewDb(conn, "postgres")), mock
}

func TestSeatMapRepo_GetFlightLayout(t *testing.T) {
	repo, mock := newMockSeatMapRepo(t)

	plan := []byte(`{"business":{"rows":1,"seats_per_row":2}}`)
	mock.ExpectQuery(regexp.QuoteMeta(constants.GetFlightLayoutByNumber)).
		WithArgs("AB1234").
		WillReturnRows(sqlmock.NewRows([]string{"flight_id", "flight_number", "type_name", "seating_plan"}).
			AddRow(int64(7), "AB1234", "A320", plan))

	layout, err := repo.GetFlightLayout(context.Background(), "AB1234")
	require.NoError(t, err)
	require.NotNil(t, layout)
	assert.Equal(t, int64(7), layout.FlightID)
	assert.Equal(t, "A320", layout.TypeName)
	assert.JSONEq(t, string(plan), string(layout.SeatingPlan))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeatMapRepo_GetFlightLayout_Unknown(t *testing.T) {
	repo, mock := newMockSeatMapRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(constants.GetFlightLayoutByNumber)).
		WithArgs("ZZ9999").
		WillReturnRows(sqlmock.NewRows([]string{"flight_id", "flight_number", "type_name", "seating_plan"}))

	layout, err := repo.GetFlightLayout(context.Background(), "ZZ9999")
	require.NoError(t, err)
	assert.Nil(t, layout)
}

func TestSeatMapRepo_ListManifest(t *testing.T) {
	repo, mock := newMockSeatMapRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(constants.ListFlightManifest)).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"assignment_id", "passenger_id", "name", "seat_type", "seat_number", "is_infant"}).
			AddRow(int64(1), int64(11), "Ada", "Business", "1A", false).
			AddRow(int64(2), int64(12), "Grace", nil, nil, true))

	rows, err := repo.ListManifest(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	require.NotNil(t, rows[0].SeatNumber)
	assert.Equal(t, "1A", *rows[0].SeatNumber)
	assert.Equal(t, "Business", *rows[0].SeatType)
	assert.Nil(t, rows[1].SeatNumber)
	assert.Nil(t, rows[1].SeatType)
	assert.True(t, rows[1].IsInfant)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeatMapRepo_ListManifest_Error(t *testing.T) {
	repo, mock := newMockSeatMapRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(constants.ListFlightManifest)).
		WithArgs(int64(7)).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.ListManifest(context.Background(), 7)
	assert.EqualError(t, err, "connection reset")
}
