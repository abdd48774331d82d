package projection

import (
	"time"

	"github.com/Domenick1991/airport/internal/domain"
)

type FlightListItem struct {
	ID               int64     `json:"id"`
	Route            string    `json:"route"`
	Airplane         string    `json:"airplane"`
	TicketsAvailable int       `json:"tickets_available"`
	DepartureDate    time.Time `json:"departure_date"`
	ArrivalDate      time.Time `json:"arrival_date"`
}

type FlightDetail struct {
	ID               int64     `json:"id"`
	Route            string    `json:"route"`
	Airplane         string    `json:"airplane"`
	Crew             []string  `json:"crew"`
	DepartureDate    time.Time `json:"departure_date"`
	ArrivalDate      time.Time `json:"arrival_date"`
	TicketsAvailable int       `json:"tickets_available"`
	TakenPlace       []Seat    `json:"taken_place"`
}

type Seat struct {
	Row  int `json:"row"`
	Seat int `json:"seat"`
}

// Flight is the write response: relations stay as ids.
type Flight struct {
	ID            int64     `json:"id"`
	Route         int64     `json:"route"`
	Airplane      int64     `json:"airplane"`
	Crew          []int64   `json:"crew"`
	DepartureDate time.Time `json:"departure_date"`
	ArrivalDate   time.Time `json:"arrival_date"`
}

type FlightInput struct {
	Route         int64     `json:"route" binding:"required"`
	Airplane      int64     `json:"airplane" binding:"required"`
	Crew          []int64   `json:"crew"`
	DepartureDate time.Time `json:"departure_date" binding:"required"`
	ArrivalDate   time.Time `json:"arrival_date" binding:"required"`
}

// FlightPatch carries a partial update; nil fields keep their stored value.
type FlightPatch struct {
	Route         *int64     `json:"route"`
	Airplane      *int64     `json:"airplane"`
	Crew          *[]int64   `json:"crew"`
	DepartureDate *time.Time `json:"departure_date"`
	ArrivalDate   *time.Time `json:"arrival_date"`
}

func NewFlightListItem(f domain.Flight) FlightListItem {
	return FlightListItem{
		ID:               f.ID,
		Route:            f.RouteTitle,
		Airplane:         f.AirplaneName,
		TicketsAvailable: f.TicketsAvailable,
		DepartureDate:    f.DepartureDate,
		ArrivalDate:      f.ArrivalDate,
	}
}

func NewFlightDetail(f domain.Flight) FlightDetail {
	return FlightDetail{
		ID:               f.ID,
		Route:            f.RouteTitle,
		Airplane:         f.AirplaneName,
		Crew:             Map(f.Crew, domain.Crew.FullName),
		DepartureDate:    f.DepartureDate,
		ArrivalDate:      f.ArrivalDate,
		TicketsAvailable: f.TicketsAvailable,
		TakenPlace:       Map(f.TakenSeats, func(s domain.Seat) Seat { return Seat{Row: s.Row, Seat: s.Seat} }),
	}
}

func NewFlight(f domain.Flight) Flight {
	crew := f.CrewIDs
	if crew == nil {
		crew = []int64{}
	}
	return Flight{
		ID:            f.ID,
		Route:         f.RouteID,
		Airplane:      f.AirplaneID,
		Crew:          crew,
		DepartureDate: f.DepartureDate,
		ArrivalDate:   f.ArrivalDate,
	}
}

func (in FlightInput) Domain() domain.Flight {
	return domain.Flight{
		RouteID:       in.Route,
		AirplaneID:    in.Airplane,
		CrewIDs:       in.Crew,
		DepartureDate: in.DepartureDate,
		ArrivalDate:   in.ArrivalDate,
	}
}

// Apply merges the patch over an existing flight.
func (p FlightPatch) Apply(f domain.Flight) domain.Flight {
	if p.Route != nil {
		f.RouteID = *p.Route
	}
	if p.Airplane != nil {
		f.AirplaneID = *p.Airplane
	}
	if p.Crew != nil {
		f.CrewIDs = *p.Crew
	}
	if p.DepartureDate != nil {
		f.DepartureDate = *p.DepartureDate
	}
	if p.ArrivalDate != nil {
		f.ArrivalDate = *p.ArrivalDate
	}
	return f
}
