package domain

import (
	"fmt"
	"time"
)

type Flight struct {
	ID            int64
	RouteID       int64
	AirplaneID    int64
	CrewIDs       []int64
	DepartureDate time.Time
	ArrivalDate   time.Time

	// Read-side fields filled by the flight queries.
	RouteTitle       string
	AirplaneName     string
	Crew             []Crew
	TakenSeats       []Seat
	TicketsAvailable int
}

func (f Flight) String() string {
	return fmt.Sprintf("%s (%s)", f.RouteTitle, f.DepartureDate.UTC().Format(time.RFC3339))
}

// Seat is a (row, seat) position inside an airplane.
type Seat struct {
	Row  int
	Seat int
}

// FlightFilter narrows the flight list. Empty fields are ignored; set fields compose with AND.
type FlightFilter struct {
	Source      string
	Destination string
	Airplane    string
}

func (f FlightFilter) IsZero() bool {
	return f.Source == "" && f.Destination == "" && f.Airplane == ""
}

// SeatLayout is the part of an airplane that bounds ticket positions on a flight.
type SeatLayout struct {
	Rows       int
	SeatsInRow int
}
