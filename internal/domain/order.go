package domain

import "time"

type Order struct {
	ID        int64
	UserID    int64
	CreatedAt time.Time
	Tickets   []Ticket
}

type Ticket struct {
	ID       int64
	Row      int
	Seat     int
	FlightID int64
	OrderID  int64

	// Flight is populated by the order list query.
	Flight *Flight
}

// Principal is the caller identity handed to every use case.
type Principal struct {
	UserID int64
	Email  string
}

func (p Principal) Authenticated() bool {
	return p.UserID != 0
}
