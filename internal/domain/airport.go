package domain

import "fmt"

type Airport struct {
	ID             int64
	Name           string
	ClosestBigCity string
}

func (a Airport) String() string {
	return a.Name
}

type Route struct {
	ID            int64
	SourceID      int64
	DestinationID int64
	Distance      int

	// Source and Destination are only populated by reads that join airports.
	Source      *Airport
	Destination *Airport
}

func (r Route) String() string {
	return RouteTitle(r.cityOf(r.Source), r.cityOf(r.Destination))
}

func (r Route) cityOf(a *Airport) string {
	if a == nil {
		return ""
	}
	return a.ClosestBigCity
}

// RouteTitle renders a route the way every projection shows it.
func RouteTitle(sourceCity, destinationCity string) string {
	return fmt.Sprintf("%s - %s", sourceCity, destinationCity)
}
