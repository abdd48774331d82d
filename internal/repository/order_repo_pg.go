package repository

import (
	"context"

	"github.com/Domenick1991/airport/internal/domain"
)

type OrderRepository interface {
	// Create persists the order and all of its tickets in one transaction.
	Create(ctx context.Context, order *domain.Order) error
	ListByUser(ctx context.Context, userID int64) ([]domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
}

type PGOrderRepository struct {
	db DB
}

func NewOrderRepository(db DB) OrderRepository {
	return &PGOrderRepository{db: db}
}

func (r *PGOrderRepository) Create(ctx context.Context, order *domain.Order) (err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer rollback(ctx, tx, &err)

	if err = tx.QueryRow(ctx, `INSERT INTO orders (user_id) VALUES ($1) RETURNING id, created_at`, order.UserID).
		Scan(&order.ID, &order.CreatedAt); err != nil {
		return err
	}

	for i := range order.Tickets {
		t := &order.Tickets[i]
		t.OrderID = order.ID
		if err = tx.QueryRow(ctx, `INSERT INTO tickets (seat_row, seat_number, flight_id, order_id) VALUES ($1, $2, $3, $4) RETURNING id`,
			t.Row, t.Seat, t.FlightID, t.OrderID).Scan(&t.ID); err != nil {
			err = translateError(err)
			return err
		}
	}

	if err = tx.Commit(ctx); err != nil {
		err = translateError(err)
		return err
	}
	return nil
}

func (r *PGOrderRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	rows, err := r.db.Query(ctx, `SELECT id, user_id, created_at FROM orders WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.CreatedAt); err != nil {
			return nil, err
		}
		o.Tickets = make([]domain.Ticket, 0)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	ids := make([]int64, len(orders))
	byID := make(map[int64]*domain.Order, len(orders))
	for i := range orders {
		ids[i] = orders[i].ID
		byID[orders[i].ID] = &orders[i]
	}

	tickets, err := r.ticketsOf(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, t := range tickets {
		o := byID[t.OrderID]
		o.Tickets = append(o.Tickets, t)
	}
	return orders, nil
}

func (r *PGOrderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	var o domain.Order
	if err := r.db.QueryRow(ctx, `SELECT id, user_id, created_at FROM orders WHERE id = $1`, id).
		Scan(&o.ID, &o.UserID, &o.CreatedAt); err != nil {
		return nil, translateError(err)
	}

	tickets, err := r.ticketsOf(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	o.Tickets = tickets
	return &o, nil
}

// ticketsOf loads tickets with the flight list projection each one embeds.
func (r *PGOrderRepository) ticketsOf(ctx context.Context, orderIDs []int64) ([]domain.Ticket, error) {
	rows, err := r.db.Query(ctx, `
		SELECT t.id, t.seat_row, t.seat_number, t.flight_id, t.order_id,
		       f.route_id, f.airplane_id, f.departure_date, f.arrival_date,
		       src.closest_big_city, dst.closest_big_city, a.name,
		       a.seat_rows * a.seats_in_row - (SELECT COUNT(*) FROM tickets sold WHERE sold.flight_id = f.id)
		FROM tickets t
		JOIN flights f ON f.id = t.flight_id
		JOIN routes r ON r.id = f.route_id
		JOIN airports src ON src.id = r.source_id
		JOIN airports dst ON dst.id = r.destination_id
		JOIN airplanes a ON a.id = f.airplane_id
		WHERE t.order_id = ANY($1)
		ORDER BY t.id`, orderIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]domain.Ticket, 0)
	for rows.Next() {
		var (
			t   domain.Ticket
			f   domain.Flight
			src string
			dst string
		)
		if err := rows.Scan(&t.ID, &t.Row, &t.Seat, &t.FlightID, &t.OrderID,
			&f.RouteID, &f.AirplaneID, &f.DepartureDate, &f.ArrivalDate,
			&src, &dst, &f.AirplaneName, &f.TicketsAvailable); err != nil {
			return nil, err
		}
		f.ID = t.FlightID
		f.RouteTitle = domain.RouteTitle(src, dst)
		t.Flight = &f
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

var _ OrderRepository = (*PGOrderRepository)(nil)
