package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/flight-seat-booking/internal/model"
	"github.com/iliyamo/flight-seat-booking/internal/repository"
	"github.com/iliyamo/flight-seat-booking/internal/status"
)

// memFlightStore is an in-memory FlightStore for exercising the service
// without a database.
type memFlightStore struct {
	nextID  uint64
	flights map[uint64]*model.Flight
}

func newMemFlightStore() *memFlightStore {
	return &memFlightStore{flights: map[uint64]*model.Flight{}}
}

func (m *memFlightStore) Create(_ context.Context, f *model.Flight) error {
	for _, existing := range m.flights {
		if existing.FlightName == f.FlightName {
			return repository.ErrFlightExists
		}
	}
	m.nextID++
	f.ID = m.nextID
	cp := *f
	m.flights[f.ID] = &cp
	return nil
}

func (m *memFlightStore) GetByID(_ context.Context, id uint64) (*model.Flight, error) {
	f, ok := m.flights[id]
	if !ok {
		return nil, repository.ErrFlightNotFound
	}
	cp := *f
	return &cp, nil
}

func (m *memFlightStore) GetByName(_ context.Context, name string) (*model.Flight, error) {
	for _, f := range m.flights {
		if f.FlightName == name {
			cp := *f
			return &cp, nil
		}
	}
	return nil, repository.ErrFlightNotFound
}

func (m *memFlightStore) Update(_ context.Context, f *model.Flight) error {
	if _, ok := m.flights[f.ID]; !ok {
		return repository.ErrFlightNotFound
	}
	for id, existing := range m.flights {
		if id != f.ID && existing.FlightName == f.FlightName {
			return repository.ErrFlightExists
		}
	}
	cp := *f
	m.flights[f.ID] = &cp
	return nil
}

func (m *memFlightStore) Delete(_ context.Context, id uint64) error {
	if _, ok := m.flights[id]; !ok {
		return repository.ErrFlightNotFound
	}
	delete(m.flights, id)
	return nil
}

func (m *memFlightStore) ListAll(_ context.Context) ([]model.Flight, error) {
	out := make([]model.Flight, 0, len(m.flights))
	for id := uint64(1); id <= m.nextID; id++ {
		if f, ok := m.flights[id]; ok {
			out = append(out, *f)
		}
	}
	return out, nil
}

// memSeatStore is an in-memory SeatAdminStore.
type memSeatStore struct {
	nextID uint64
	seats  map[uint64]*model.Seat
}

func newMemSeatStore() *memSeatStore {
	return &memSeatStore{seats: map[uint64]*model.Seat{}}
}

func (m *memSeatStore) Create(_ context.Context, s *model.Seat) error {
	for _, existing := range m.seats {
		if existing.FlightID == s.FlightID && existing.SeatName == s.SeatName {
			return repository.ErrSeatExists
		}
	}
	m.nextID++
	s.ID = m.nextID
	cp := *s
	m.seats[s.ID] = &cp
	return nil
}

func (m *memSeatStore) GetByNameAndFlight(_ context.Context, seatName string, flightID uint64) (*model.Seat, error) {
	for _, s := range m.seats {
		if s.FlightID == flightID && s.SeatName == seatName {
			cp := *s
			return &cp, nil
		}
	}
	return nil, repository.ErrSeatNotFound
}

func (m *memSeatStore) UpdateName(_ context.Context, seatID, flightID uint64, seatName string) error {
	s, ok := m.seats[seatID]
	if !ok || s.FlightID != flightID {
		return repository.ErrSeatNotFound
	}
	for id, existing := range m.seats {
		if id != seatID && existing.FlightID == flightID && existing.SeatName == seatName {
			return repository.ErrSeatExists
		}
	}
	s.SeatName = seatName
	return nil
}

func (m *memSeatStore) Delete(_ context.Context, seatID, flightID uint64) error {
	s, ok := m.seats[seatID]
	if !ok || s.FlightID != flightID {
		return repository.ErrSeatNotFound
	}
	delete(m.seats, seatID)
	return nil
}

func (m *memSeatStore) ListAvailableByFlight(_ context.Context, flightID uint64) ([]model.Seat, error) {
	var out []model.Seat
	for id := uint64(1); id <= m.nextID; id++ {
		if s, ok := m.seats[id]; ok && s.FlightID == flightID && !s.IsReserved {
			out = append(out, *s)
		}
	}
	return out, nil
}

func validInput(name string) FlightInput {
	return FlightInput{
		FlightName:    name,
		Origin:        "IST",
		Destination:   "ESB",
		DepartureTime: "05-09-2026 10:30",
		ArrivalTime:   "05-09-2026 11:45",
		PriceCents:    25000,
	}
}

func newFlightFixture() (*memFlightStore, *memSeatStore, *FlightService) {
	flights := newMemFlightStore()
	seats := newMemSeatStore()
	return flights, seats, NewFlightService(flights, seats)
}

func TestCreateFlight(t *testing.T) {
	_, _, svc := newFlightFixture()

	f, err := svc.CreateFlight(context.Background(), validInput("TK1923"))
	require.NoError(t, err)
	require.NotNil(t, f)
	assert.NotZero(t, f.ID)
	assert.Equal(t, "TK1923", f.FlightName)
	assert.Equal(t, 2026, f.DepartureTime.Year())
	assert.Equal(t, 10, f.DepartureTime.Hour())
}

func TestCreateFlightDuplicateName(t *testing.T) {
	_, _, svc := newFlightFixture()

	_, err := svc.CreateFlight(context.Background(), validInput("TK1923"))
	require.NoError(t, err)

	_, err = svc.CreateFlight(context.Background(), validInput("TK1923"))
	requireCode(t, err, status.FlightAlreadyExists)
}

func TestCreateFlightBadSchedule(t *testing.T) {
	_, _, svc := newFlightFixture()

	for _, bad := range []string{"2026-09-05 10:30", "05/09/2026 10:30", "05-09-2026", "garbage"} {
		in := validInput("TK1923")
		in.DepartureTime = bad
		_, err := svc.CreateFlight(context.Background(), in)
		requireCode(t, err, status.DateFormatError)
	}

	// Arrival time is validated too.
	in := validInput("TK1923")
	in.ArrivalTime = "noon"
	_, err := svc.CreateFlight(context.Background(), in)
	requireCode(t, err, status.DateFormatError)
}

func TestUpdateFlight(t *testing.T) {
	flights, _, svc := newFlightFixture()

	f, err := svc.CreateFlight(context.Background(), validInput("TK1923"))
	require.NoError(t, err)

	in := validInput("TK1923")
	in.Destination = "ADB"
	require.NoError(t, svc.UpdateFlight(context.Background(), f.ID, in))

	got, err := flights.GetByID(context.Background(), f.ID)
	require.NoError(t, err)
	assert.Equal(t, "ADB", got.Destination)

	// Unknown flight.
	err = svc.UpdateFlight(context.Background(), 999, in)
	requireCode(t, err, status.FlightNotFound)
}

func TestDeleteFlight(t *testing.T) {
	_, _, svc := newFlightFixture()

	f, err := svc.CreateFlight(context.Background(), validInput("TK1923"))
	require.NoError(t, err)
	require.NoError(t, svc.DeleteFlight(context.Background(), f.ID))

	err = svc.DeleteFlight(context.Background(), f.ID)
	requireCode(t, err, status.FlightNotFound)
}

func TestAddSeat(t *testing.T) {
	_, _, svc := newFlightFixture()

	f, err := svc.CreateFlight(context.Background(), validInput("TK1923"))
	require.NoError(t, err)

	seat, err := svc.AddSeat(context.Background(), f.ID, "12A")
	require.NoError(t, err)
	assert.NotZero(t, seat.ID)
	assert.Equal(t, f.ID, seat.FlightID)

	// Same name on the same flight is rejected.
	_, err = svc.AddSeat(context.Background(), f.ID, "12A")
	requireCode(t, err, status.SeatAlreadyExists)

	// Same name on a different flight is fine.
	f2, err := svc.CreateFlight(context.Background(), validInput("TK2000"))
	require.NoError(t, err)
	_, err = svc.AddSeat(context.Background(), f2.ID, "12A")
	require.NoError(t, err)

	// Unknown flight.
	_, err = svc.AddSeat(context.Background(), 999, "1A")
	requireCode(t, err, status.FlightNotFound)
}

func TestUpdateSeat(t *testing.T) {
	_, seats, svc := newFlightFixture()

	f, err := svc.CreateFlight(context.Background(), validInput("TK1923"))
	require.NoError(t, err)
	seat, err := svc.AddSeat(context.Background(), f.ID, "12A")
	require.NoError(t, err)

	require.NoError(t, svc.UpdateSeat(context.Background(), f.ID, seat.ID, "14C"))
	got, err := seats.GetByNameAndFlight(context.Background(), "14C", f.ID)
	require.NoError(t, err)
	assert.Equal(t, seat.ID, got.ID)

	err = svc.UpdateSeat(context.Background(), f.ID, 999, "1A")
	requireCode(t, err, status.SeatNotFound)
	err = svc.UpdateSeat(context.Background(), 999, seat.ID, "1A")
	requireCode(t, err, status.FlightNotFound)
}

func TestDeleteSeat(t *testing.T) {
	_, _, svc := newFlightFixture()

	f, err := svc.CreateFlight(context.Background(), validInput("TK1923"))
	require.NoError(t, err)
	seat, err := svc.AddSeat(context.Background(), f.ID, "12A")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSeat(context.Background(), f.ID, seat.ID))
	err = svc.DeleteSeat(context.Background(), f.ID, seat.ID)
	requireCode(t, err, status.SeatNotFound)
}

func TestListFlights(t *testing.T) {
	_, seats, svc := newFlightFixture()

	f, err := svc.CreateFlight(context.Background(), validInput("TK1923"))
	require.NoError(t, err)
	s1, err := svc.AddSeat(context.Background(), f.ID, "12A")
	require.NoError(t, err)
	_, err = svc.AddSeat(context.Background(), f.ID, "12B")
	require.NoError(t, err)

	// Flights without seats still appear, with an empty (non-nil) list.
	_, err = svc.CreateFlight(context.Background(), validInput("TK2000"))
	require.NoError(t, err)

	// Reserved seats drop out of the listing.
	seats.seats[s1.ID].IsReserved = true

	out, err := svc.ListFlights(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "TK1923", out[0].Flight.FlightName)
	require.Len(t, out[0].AvailableSeats, 1)
	assert.Equal(t, "12B", out[0].AvailableSeats[0].SeatName)
	require.NotNil(t, out[1].AvailableSeats)
	assert.Empty(t, out[1].AvailableSeats)
}
