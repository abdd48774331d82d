package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/jackc/pgx/v5"
)

type FlightRepository interface {
	List(ctx context.Context, filter domain.FlightFilter) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Create(ctx context.Context, flight *domain.Flight) error
	Update(ctx context.Context, flight *domain.Flight) error
	Delete(ctx context.Context, id int64) error
	SeatLayout(ctx context.Context, flightID int64) (domain.SeatLayout, error)
	TicketExists(ctx context.Context, flightID int64, row, seat int) (bool, error)
}

type PGFlightRepository struct {
	db DB
}

func NewFlightRepository(db DB) FlightRepository {
	return &PGFlightRepository{db: db}
}

// flightSelect computes tickets_available as capacity minus sold tickets. Grouping by
// f.id also keeps joined filters from duplicating flights.
const flightSelect = `
	SELECT f.id, f.route_id, f.airplane_id, f.departure_date, f.arrival_date,
	       src.closest_big_city, dst.closest_big_city, a.name,
	       a.seat_rows * a.seats_in_row - COUNT(t.id) AS tickets_available
	FROM flights f
	JOIN routes r ON r.id = f.route_id
	JOIN airports src ON src.id = r.source_id
	JOIN airports dst ON dst.id = r.destination_id
	JOIN airplanes a ON a.id = f.airplane_id
	LEFT JOIN tickets t ON t.flight_id = f.id`

const flightGroupBy = `
	GROUP BY f.id, src.closest_big_city, dst.closest_big_city, a.name, a.seat_rows, a.seats_in_row`

func (r *PGFlightRepository) List(ctx context.Context, filter domain.FlightFilter) ([]domain.Flight, error) {
	where, args := flightFilterClause(filter)
	rows, err := r.db.Query(ctx, flightSelect+where+flightGroupBy+` ORDER BY f.id`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		f, err := scanFlight(rows)
		if err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	f, err := scanFlight(r.db.QueryRow(ctx, flightSelect+` WHERE f.id = $1`+flightGroupBy, id))
	if err != nil {
		return nil, translateError(err)
	}

	crew, err := r.crewOf(ctx, id)
	if err != nil {
		return nil, err
	}
	f.Crew = crew
	f.CrewIDs = make([]int64, 0, len(crew))
	for _, c := range crew {
		f.CrewIDs = append(f.CrewIDs, c.ID)
	}

	taken, err := r.takenSeats(ctx, id)
	if err != nil {
		return nil, err
	}
	f.TakenSeats = taken
	return &f, nil
}

func (r *PGFlightRepository) crewOf(ctx context.Context, flightID int64) ([]domain.Crew, error) {
	rows, err := r.db.Query(ctx, `
		SELECT c.id, c.first_name, c.last_name
		FROM crews c
		JOIN flight_crews fc ON fc.crew_id = c.id
		WHERE fc.flight_id = $1
		ORDER BY c.id`, flightID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	crew := make([]domain.Crew, 0)
	for rows.Next() {
		var c domain.Crew
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName); err != nil {
			return nil, err
		}
		crew = append(crew, c)
	}
	return crew, rows.Err()
}

func (r *PGFlightRepository) takenSeats(ctx context.Context, flightID int64) ([]domain.Seat, error) {
	rows, err := r.db.Query(ctx, `SELECT seat_row, seat_number FROM tickets WHERE flight_id = $1 ORDER BY seat_row, seat_number`, flightID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seats := make([]domain.Seat, 0)
	for rows.Next() {
		var s domain.Seat
		if err := rows.Scan(&s.Row, &s.Seat); err != nil {
			return nil, err
		}
		seats = append(seats, s)
	}
	return seats, rows.Err()
}

func (r *PGFlightRepository) Create(ctx context.Context, flight *domain.Flight) (err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer rollback(ctx, tx, &err)

	if err = tx.QueryRow(ctx, `INSERT INTO flights (route_id, airplane_id, departure_date, arrival_date) VALUES ($1, $2, $3, $4) RETURNING id`,
		flight.RouteID, flight.AirplaneID, flight.DepartureDate, flight.ArrivalDate).Scan(&flight.ID); err != nil {
		return translateError(err)
	}
	if err = insertFlightCrew(ctx, tx, flight.ID, flight.CrewIDs); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *PGFlightRepository) Update(ctx context.Context, flight *domain.Flight) (err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer rollback(ctx, tx, &err)

	tag, err := tx.Exec(ctx, `UPDATE flights SET route_id = $1, airplane_id = $2, departure_date = $3, arrival_date = $4 WHERE id = $5`,
		flight.RouteID, flight.AirplaneID, flight.DepartureDate, flight.ArrivalDate, flight.ID)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		err = domain.ErrNotFound
		return err
	}

	if _, err = tx.Exec(ctx, `DELETE FROM flight_crews WHERE flight_id = $1`, flight.ID); err != nil {
		return err
	}
	if err = insertFlightCrew(ctx, tx, flight.ID, flight.CrewIDs); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func insertFlightCrew(ctx context.Context, tx pgx.Tx, flightID int64, crewIDs []int64) error {
	for _, crewID := range crewIDs {
		if _, err := tx.Exec(ctx, `INSERT INTO flight_crews (flight_id, crew_id) VALUES ($1, $2)`, flightID, crewID); err != nil {
			return translateError(err)
		}
	}
	return nil
}

// Delete removes the flight; tickets and crew links go with it through ON DELETE CASCADE.
func (r *PGFlightRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM flights WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PGFlightRepository) SeatLayout(ctx context.Context, flightID int64) (domain.SeatLayout, error) {
	var layout domain.SeatLayout
	err := r.db.QueryRow(ctx, `
		SELECT a.seat_rows, a.seats_in_row
		FROM flights f
		JOIN airplanes a ON a.id = f.airplane_id
		WHERE f.id = $1`, flightID).Scan(&layout.Rows, &layout.SeatsInRow)
	return layout, translateError(err)
}

func (r *PGFlightRepository) TicketExists(ctx context.Context, flightID int64, row, seat int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM tickets WHERE flight_id = $1 AND seat_row = $2 AND seat_number = $3)`,
		flightID, row, seat).Scan(&exists)
	return exists, err
}

func scanFlight(row pgx.Row) (domain.Flight, error) {
	var f domain.Flight
	var sourceCity, destinationCity string
	err := row.Scan(&f.ID, &f.RouteID, &f.AirplaneID, &f.DepartureDate, &f.ArrivalDate,
		&sourceCity, &destinationCity, &f.AirplaneName, &f.TicketsAvailable)
	f.RouteTitle = domain.RouteTitle(sourceCity, destinationCity)
	return f, err
}

// flightFilterClause builds a case-insensitive substring WHERE clause; the three
// filters are AND-composed.
func flightFilterClause(filter domain.FlightFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(column, value string) {
		if value == "" {
			return
		}
		args = append(args, "%"+escapeLike(value)+"%")
		conds = append(conds, fmt.Sprintf("%s ILIKE $%d", column, len(args)))
	}
	add("src.closest_big_city", filter.Source)
	add("dst.closest_big_city", filter.Destination)
	add("a.name", filter.Airplane)

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

var _ FlightRepository = (*PGFlightRepository)(nil)
