package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	gormlib "gorm.io/gorm"

	"airline-ops/seatcrew/internal/common"
	"airline-ops/seatcrew/internal/db/repositories"
	"airline-ops/seatcrew/internal/metrics"
	"airline-ops/seatcrew/internal/models/gorm"
)

const (
	businessTypeID int64 = 1
	economyTypeID  int64 = 2
)

const crewTableDDL = `
CREATE TABLE flight_crew_assignment (
	id integer PRIMARY KEY AUTOINCREMENT,
	flight_id integer NOT NULL UNIQUE,
	pilot_ids text,
	cabin_crew_ids text,
	created_at datetime,
	updated_at datetime
)`

// Setup test database
func setupTestDB(t *testing.T) *gormlib.DB {
	t.Helper()
	db, err := gormlib.Open(sqlite.Open(":memory:"), &gormlib.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&gorm.VehicleType{},
		&gorm.Flight{},
		&gorm.Passenger{},
		&gorm.SeatType{},
		&gorm.PassengerAssignment{},
		&gorm.AffiliatedSeating{},
		&gorm.InfantParentRelationship{},
	))
	require.NoError(t, db.Exec(crewTableDDL).Error)

	require.NoError(t, db.Create(&[]gorm.SeatType{
		{ID: businessTypeID, Name: "Business"},
		{ID: economyTypeID, Name: "Economy"},
	}).Error)

	return db
}

func seedFlight(t *testing.T, db *gormlib.DB, number string, plan string) *gorm.Flight {
	t.Helper()
	vt := gorm.VehicleType{TypeName: "type-" + number, TotalSeats: 100}
	if plan != "" {
		vt.SeatingPlan = json.RawMessage(plan)
	}
	require.NoError(t, db.Create(&vt).Error)

	f := gorm.Flight{FlightNumber: number, VehicleTypeID: vt.ID}
	require.NoError(t, db.Create(&f).Error)
	return &f
}

func addPassenger(t *testing.T, db *gormlib.DB, flightID int64, name string, seatType *int64, seat *string) gorm.PassengerAssignment {
	t.Helper()
	p := gorm.Passenger{Name: name}
	require.NoError(t, db.Create(&p).Error)

	a := gorm.PassengerAssignment{PassengerID: p.ID, FlightID: flightID, SeatTypeID: seatType, SeatNumber: seat}
	require.NoError(t, db.Create(&a).Error)
	return a
}

func seatOf(t *testing.T, db *gormlib.DB, assignmentID int64) *string {
	t.Helper()
	var a gorm.PassengerAssignment
	require.NoError(t, db.First(&a, assignmentID).Error)
	return a.SeatNumber
}

// countUpdates counts UPDATE statements issued through gorm
func countUpdates(t *testing.T, db *gormlib.DB) *int {
	t.Helper()
	n := 0
	require.NoError(t, db.Callback().Update().After("gorm:update").Register("test:count_updates", func(*gormlib.DB) {
		n++
	}))
	return &n
}

func typ(id int64) *int64   { return &id }
func str(s string) *string { return &s }

func newTestMetrics() *metrics.MetricsRegistry {
	return metrics.NewMetricsRegistry(prometheus.NewRegistry())
}

func newSeatTypeService(db *gormlib.DB, reg *metrics.MetricsRegistry) *SeatTypeService {
	return NewSeatTypeService(repositories.NewSeatTypeRepo(db), common.NewCacheService(time.Minute, time.Minute), time.Minute, reg)
}

func newSeatService(db *gormlib.DB, reader SeatMapReader) *SeatAssignmentService {
	reg := newTestMetrics()
	return NewSeatAssignmentService(db, newSeatTypeService(db, reg), reader, reg)
}
