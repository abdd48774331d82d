package repository

import (
	"context"

	"github.com/Domenick1991/airport/internal/domain"
)

type AirplaneTypeRepository interface {
	List(ctx context.Context) ([]domain.AirplaneType, error)
	GetByID(ctx context.Context, id int64) (*domain.AirplaneType, error)
	Create(ctx context.Context, airplaneType *domain.AirplaneType) error
}

type AirplaneRepository interface {
	List(ctx context.Context) ([]domain.Airplane, error)
	Create(ctx context.Context, airplane *domain.Airplane) error
}

type PGAirplaneTypeRepository struct {
	db DB
}

func NewAirplaneTypeRepository(db DB) AirplaneTypeRepository {
	return &PGAirplaneTypeRepository{db: db}
}

func (r *PGAirplaneTypeRepository) List(ctx context.Context) ([]domain.AirplaneType, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM airplane_types ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types := make([]domain.AirplaneType, 0)
	for rows.Next() {
		var t domain.AirplaneType
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

// GetByID returns the type together with all of its airplanes.
func (r *PGAirplaneTypeRepository) GetByID(ctx context.Context, id int64) (*domain.AirplaneType, error) {
	var t domain.AirplaneType
	if err := r.db.QueryRow(ctx, `SELECT id, name FROM airplane_types WHERE id = $1`, id).Scan(&t.ID, &t.Name); err != nil {
		return nil, translateError(err)
	}

	rows, err := r.db.Query(ctx, `SELECT id, name, seat_rows, seats_in_row, airplane_type_id FROM airplanes WHERE airplane_type_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	t.Airplanes = make([]domain.Airplane, 0)
	for rows.Next() {
		var a domain.Airplane
		if err := rows.Scan(&a.ID, &a.Name, &a.Rows, &a.SeatsInRow, &a.AirplaneTypeID); err != nil {
			return nil, err
		}
		t.Airplanes = append(t.Airplanes, a)
	}
	return &t, rows.Err()
}

func (r *PGAirplaneTypeRepository) Create(ctx context.Context, airplaneType *domain.AirplaneType) error {
	err := r.db.QueryRow(ctx, `INSERT INTO airplane_types (name) VALUES ($1) RETURNING id`, airplaneType.Name).Scan(&airplaneType.ID)
	return translateError(err)
}

type PGAirplaneRepository struct {
	db DB
}

func NewAirplaneRepository(db DB) AirplaneRepository {
	return &PGAirplaneRepository{db: db}
}

func (r *PGAirplaneRepository) List(ctx context.Context) ([]domain.Airplane, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, seat_rows, seats_in_row, airplane_type_id FROM airplanes ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	airplanes := make([]domain.Airplane, 0)
	for rows.Next() {
		var a domain.Airplane
		if err := rows.Scan(&a.ID, &a.Name, &a.Rows, &a.SeatsInRow, &a.AirplaneTypeID); err != nil {
			return nil, err
		}
		airplanes = append(airplanes, a)
	}
	return airplanes, rows.Err()
}

func (r *PGAirplaneRepository) Create(ctx context.Context, airplane *domain.Airplane) error {
	err := r.db.QueryRow(ctx, `INSERT INTO airplanes (name, seat_rows, seats_in_row, airplane_type_id) VALUES ($1, $2, $3, $4) RETURNING id`,
		airplane.Name, airplane.Rows, airplane.SeatsInRow, airplane.AirplaneTypeID).Scan(&airplane.ID)
	return translateError(err)
}

var (
	_ AirplaneTypeRepository = (*PGAirplaneTypeRepository)(nil)
	_ AirplaneRepository     = (*PGAirplaneRepository)(nil)
)
