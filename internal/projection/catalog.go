// Package projection holds the wire shapes of every resource and the mapping
// functions between them and the domain types.
package projection

import "github.com/Domenick1991/airport/internal/domain"

type Airport struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	ClosestBigCity string `json:"closest_big_city"`
}

type AirportInput struct {
	Name           string `json:"name" binding:"required,max=255"`
	ClosestBigCity string `json:"closest_big_city" binding:"required,max=255"`
}

func NewAirport(a domain.Airport) Airport {
	return Airport{ID: a.ID, Name: a.Name, ClosestBigCity: a.ClosestBigCity}
}

func (in AirportInput) Domain() domain.Airport {
	return domain.Airport{Name: in.Name, ClosestBigCity: in.ClosestBigCity}
}

// RouteListItem renders both ends by airport name.
type RouteListItem struct {
	ID          int64  `json:"id"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Distance    int    `json:"distance"`
}

type Route struct {
	ID          int64 `json:"id"`
	Source      int64 `json:"source"`
	Destination int64 `json:"destination"`
	Distance    int   `json:"distance"`
}

type RouteInput struct {
	Source      int64 `json:"source" binding:"required"`
	Destination int64 `json:"destination" binding:"required"`
	// A pointer keeps a missing distance apart from a zero one.
	Distance    *int  `json:"distance" binding:"required,min=1"`
}

func NewRouteListItem(r domain.Route) RouteListItem {
	item := RouteListItem{ID: r.ID, Distance: r.Distance}
	if r.Source != nil {
		item.Source = r.Source.String()
	}
	if r.Destination != nil {
		item.Destination = r.Destination.String()
	}
	return item
}

func NewRoute(r domain.Route) Route {
	return Route{ID: r.ID, Source: r.SourceID, Destination: r.DestinationID, Distance: r.Distance}
}

func (in RouteInput) Domain() domain.Route {
	route := domain.Route{SourceID: in.Source, DestinationID: in.Destination}
	if in.Distance != nil {
		route.Distance = *in.Distance
	}
	return route
}

type AirplaneType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// AirplaneTypeDetail embeds every airplane of the type.
type AirplaneTypeDetail struct {
	Name      string             `json:"name"`
	Airplanes []AirplaneListItem `json:"airplanes"`
}

type AirplaneTypeInput struct {
	Name string `json:"name" binding:"required,max=255"`
}

func NewAirplaneType(t domain.AirplaneType) AirplaneType {
	return AirplaneType{ID: t.ID, Name: t.Name}
}

func NewAirplaneTypeDetail(t domain.AirplaneType) AirplaneTypeDetail {
	airplanes := make([]AirplaneListItem, 0, len(t.Airplanes))
	for _, a := range t.Airplanes {
		airplanes = append(airplanes, NewAirplaneListItem(a))
	}
	return AirplaneTypeDetail{Name: t.Name, Airplanes: airplanes}
}

func (in AirplaneTypeInput) Domain() domain.AirplaneType {
	return domain.AirplaneType{Name: in.Name}
}

type AirplaneListItem struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

type Airplane struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Rows         int    `json:"rows"`
	SeatsInRow   int    `json:"seats_in_row"`
	AirplaneType int64  `json:"airplane_type"`
}

type AirplaneInput struct {
	Name         string `json:"name" binding:"required,max=255"`
	Rows         int    `json:"rows" binding:"required,min=1"`
	SeatsInRow   int    `json:"seats_in_row" binding:"required,min=1"`
	AirplaneType int64  `json:"airplane_type" binding:"required"`
}

func NewAirplaneListItem(a domain.Airplane) AirplaneListItem {
	return AirplaneListItem{ID: a.ID, Name: a.Name, Capacity: a.Capacity()}
}

func NewAirplane(a domain.Airplane) Airplane {
	return Airplane{ID: a.ID, Name: a.Name, Rows: a.Rows, SeatsInRow: a.SeatsInRow, AirplaneType: a.AirplaneTypeID}
}

func (in AirplaneInput) Domain() domain.Airplane {
	return domain.Airplane{Name: in.Name, Rows: in.Rows, SeatsInRow: in.SeatsInRow, AirplaneTypeID: in.AirplaneType}
}

type Crew struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type CrewInput struct {
	FirstName string `json:"first_name" binding:"required,max=255"`
	LastName  string `json:"last_name" binding:"required,max=255"`
}

func NewCrew(c domain.Crew) Crew {
	return Crew{ID: c.ID, FirstName: c.FirstName, LastName: c.LastName}
}

func (in CrewInput) Domain() domain.Crew {
	return domain.Crew{FirstName: in.FirstName, LastName: in.LastName}
}

// Map applies fn to every element, always returning a non-nil slice so empty
// lists encode as [] rather than null.
func Map[T, P any](items []T, fn func(T) P) []P {
	out := make([]P, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}
