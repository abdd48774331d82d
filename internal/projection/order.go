package projection

import (
	"time"

	"github.com/Domenick1991/airport/internal/domain"
)

type Order struct {
	ID        int64     `json:"id"`
	Tickets   []Ticket  `json:"tickets"`
	CreatedAt time.Time `json:"created_at"`
}

// Ticket embeds the flight list projection when the flight was loaded.
type Ticket struct {
	ID     int64           `json:"id"`
	Row    int             `json:"row"`
	Seat   int             `json:"seat"`
	Flight *FlightListItem `json:"flight"`
}

type CreatedOrder struct {
	ID        int64           `json:"id"`
	Tickets   []CreatedTicket `json:"tickets"`
	CreatedAt time.Time       `json:"created_at"`
}

type CreatedTicket struct {
	ID     int64 `json:"id"`
	Row    int   `json:"row"`
	Seat   int   `json:"seat"`
	Flight int64 `json:"flight"`
}

// Row and seat bounds are checked against the airplane, not by binding.
type TicketInput struct {
	Row    int   `json:"row"`
	Seat   int   `json:"seat"`
	Flight int64 `json:"flight" binding:"required"`
}

type OrderInput struct {
	Tickets []TicketInput `json:"tickets" binding:"required,min=1,dive"`
}

func NewOrder(o domain.Order) Order {
	return Order{
		ID: o.ID,
		Tickets: Map(o.Tickets, func(t domain.Ticket) Ticket {
			ticket := Ticket{ID: t.ID, Row: t.Row, Seat: t.Seat}
			if t.Flight != nil {
				item := NewFlightListItem(*t.Flight)
				ticket.Flight = &item
			}
			return ticket
		}),
		CreatedAt: o.CreatedAt,
	}
}

func NewCreatedOrder(o domain.Order) CreatedOrder {
	return CreatedOrder{
		ID: o.ID,
		Tickets: Map(o.Tickets, func(t domain.Ticket) CreatedTicket {
			return CreatedTicket{ID: t.ID, Row: t.Row, Seat: t.Seat, Flight: t.FlightID}
		}),
		CreatedAt: o.CreatedAt,
	}
}

func (in OrderInput) Domain() []domain.Ticket {
	return Map(in.Tickets, func(t TicketInput) domain.Ticket {
		return domain.Ticket{Row: t.Row, Seat: t.Seat, FlightID: t.Flight}
	})
}
