package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/iliyamo/flight-seat-booking/internal/model"
	"github.com/iliyamo/flight-seat-booking/internal/repository"
	"github.com/iliyamo/flight-seat-booking/internal/status"
)

// scheduleLayout is the accepted wire format for flight timestamps
// (dd-MM-yyyy HH:mm).
const scheduleLayout = "02-01-2006 15:04"

// FlightInput carries the fields submitted when creating or updating a
// flight.  Times arrive as strings and are validated by the service.
type FlightInput struct {
	FlightName    string `json:"flight_name"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`
	PriceCents    uint32 `json:"price_cents"`
}

// FlightWithSeats pairs a flight with its currently available seats for
// the listing endpoint.
type FlightWithSeats struct {
	Flight         model.Flight `json:"flight"`
	AvailableSeats []model.Seat `json:"available_seats"`
}

// FlightStore is the persistence surface FlightService needs for
// flights.
type FlightStore interface {
	Create(ctx context.Context, f *model.Flight) error
	GetByID(ctx context.Context, id uint64) (*model.Flight, error)
	GetByName(ctx context.Context, name string) (*model.Flight, error)
	Update(ctx context.Context, f *model.Flight) error
	Delete(ctx context.Context, id uint64) error
	ListAll(ctx context.Context) ([]model.Flight, error)
}

// SeatAdminStore is the persistence surface FlightService needs for
// seats.
type SeatAdminStore interface {
	Create(ctx context.Context, s *model.Seat) error
	GetByNameAndFlight(ctx context.Context, seatName string, flightID uint64) (*model.Seat, error)
	UpdateName(ctx context.Context, seatID, flightID uint64, seatName string) error
	Delete(ctx context.Context, seatID, flightID uint64) error
	ListAvailableByFlight(ctx context.Context, flightID uint64) ([]model.Seat, error)
}

// FlightService implements flight and seat management.  These are plain
// data-access operations with no concurrency hazard; the booking race
// lives entirely in BookingService.
type FlightService struct {
	flights FlightStore
	seats   SeatAdminStore
}

// NewFlightService constructs a FlightService.
func NewFlightService(flights FlightStore, seats SeatAdminStore) *FlightService {
	if flights == nil || seats == nil {
		panic("nil repository passed to NewFlightService")
	}
	return &FlightService{flights: flights, seats: seats}
}

// parseSchedule validates both timestamps of a flight input.  Any
// parse failure maps to the DateFormatError transaction code.
func parseSchedule(in FlightInput) (dep, arr time.Time, err error) {
	dep, err = time.Parse(scheduleLayout, in.DepartureTime)
	if err != nil {
		return dep, arr, status.Errorf(status.DateFormatError)
	}
	arr, err = time.Parse(scheduleLayout, in.ArrivalTime)
	if err != nil {
		return dep, arr, status.Errorf(status.DateFormatError)
	}
	return dep, arr, nil
}

// CreateFlight registers a new flight.  A flight with the same name
// maps to code 101; a malformed schedule to code 102.
func (s *FlightService) CreateFlight(ctx context.Context, in FlightInput) (*model.Flight, error) {
	if _, err := s.flights.GetByName(ctx, in.FlightName); err == nil {
		return nil, status.Errorf(status.FlightAlreadyExists)
	} else if !errors.Is(err, repository.ErrFlightNotFound) {
		return nil, err
	}
	dep, arr, err := parseSchedule(in)
	if err != nil {
		return nil, err
	}
	f := &model.Flight{
		FlightName:    in.FlightName,
		Origin:        in.Origin,
		Destination:   in.Destination,
		DepartureTime: dep,
		ArrivalTime:   arr,
		PriceCents:    in.PriceCents,
	}
	if err := s.flights.Create(ctx, f); err != nil {
		if errors.Is(err, repository.ErrFlightExists) {
			return nil, status.Errorf(status.FlightAlreadyExists)
		}
		return nil, err
	}
	log.Printf("flight: %s created with id %d", f.FlightName, f.ID)
	return f, nil
}

// UpdateFlight rewrites an existing flight.
func (s *FlightService) UpdateFlight(ctx context.Context, flightID uint64, in FlightInput) error {
	f, err := s.flights.GetByID(ctx, flightID)
	if err != nil {
		if errors.Is(err, repository.ErrFlightNotFound) {
			return status.Errorf(status.FlightNotFound)
		}
		return err
	}
	dep, arr, err := parseSchedule(in)
	if err != nil {
		return err
	}
	f.FlightName = in.FlightName
	f.Origin = in.Origin
	f.Destination = in.Destination
	f.DepartureTime = dep
	f.ArrivalTime = arr
	f.PriceCents = in.PriceCents
	if err := s.flights.Update(ctx, f); err != nil {
		if errors.Is(err, repository.ErrFlightExists) {
			return status.Errorf(status.FlightAlreadyExists)
		}
		if errors.Is(err, repository.ErrFlightNotFound) {
			return status.Errorf(status.FlightNotFound)
		}
		return err
	}
	log.Printf("flight: %s with id %d updated", f.FlightName, f.ID)
	return nil
}

// DeleteFlight removes a flight and its seats.
func (s *FlightService) DeleteFlight(ctx context.Context, flightID uint64) error {
	if err := s.flights.Delete(ctx, flightID); err != nil {
		if errors.Is(err, repository.ErrFlightNotFound) {
			return status.Errorf(status.FlightNotFound)
		}
		return err
	}
	log.Printf("flight: id %d deleted", flightID)
	return nil
}

// AddSeat adds a seat to a flight.  The seat name must be unique on the
// flight (code 104); the flight must exist (code 103).
func (s *FlightService) AddSeat(ctx context.Context, flightID uint64, seatName string) (*model.Seat, error) {
	if _, err := s.flights.GetByID(ctx, flightID); err != nil {
		if errors.Is(err, repository.ErrFlightNotFound) {
			return nil, status.Errorf(status.FlightNotFound)
		}
		return nil, err
	}
	if _, err := s.seats.GetByNameAndFlight(ctx, seatName, flightID); err == nil {
		log.Printf("flight: seat %s already exists in flight %d", seatName, flightID)
		return nil, status.Errorf(status.SeatAlreadyExists)
	} else if !errors.Is(err, repository.ErrSeatNotFound) {
		return nil, err
	}
	seat := &model.Seat{FlightID: flightID, SeatName: seatName}
	if err := s.seats.Create(ctx, seat); err != nil {
		if errors.Is(err, repository.ErrSeatExists) {
			return nil, status.Errorf(status.SeatAlreadyExists)
		}
		return nil, err
	}
	log.Printf("flight: seat %s with id %d added to flight %d", seat.SeatName, seat.ID, flightID)
	return seat, nil
}

// UpdateSeat renames a seat on a flight.
func (s *FlightService) UpdateSeat(ctx context.Context, flightID, seatID uint64, seatName string) error {
	if _, err := s.flights.GetByID(ctx, flightID); err != nil {
		if errors.Is(err, repository.ErrFlightNotFound) {
			return status.Errorf(status.FlightNotFound)
		}
		return err
	}
	if err := s.seats.UpdateName(ctx, seatID, flightID, seatName); err != nil {
		if errors.Is(err, repository.ErrSeatNotFound) {
			return status.Errorf(status.SeatNotFound)
		}
		if errors.Is(err, repository.ErrSeatExists) {
			return status.Errorf(status.SeatAlreadyExists)
		}
		return err
	}
	log.Printf("flight: seat %d updated to %s for flight %d", seatID, seatName, flightID)
	return nil
}

// DeleteSeat removes a seat from a flight.
func (s *FlightService) DeleteSeat(ctx context.Context, flightID, seatID uint64) error {
	if _, err := s.flights.GetByID(ctx, flightID); err != nil {
		if errors.Is(err, repository.ErrFlightNotFound) {
			return status.Errorf(status.FlightNotFound)
		}
		return err
	}
	if err := s.seats.Delete(ctx, seatID, flightID); err != nil {
		if errors.Is(err, repository.ErrSeatNotFound) {
			return status.Errorf(status.SeatNotFound)
		}
		return err
	}
	log.Printf("flight: seat %d deleted from flight %d", seatID, flightID)
	return nil
}

// ListFlights returns all flights, each with its unreserved seats.
func (s *FlightService) ListFlights(ctx context.Context) ([]FlightWithSeats, error) {
	flights, err := s.flights.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]FlightWithSeats, 0, len(flights))
	for _, f := range flights {
		seats, err := s.seats.ListAvailableByFlight(ctx, f.ID)
		if err != nil {
			return nil, err
		}
		if seats == nil {
			seats = []model.Seat{}
		}
		result = append(result, FlightWithSeats{Flight: f, AvailableSeats: seats})
	}
	return result, nil
}
