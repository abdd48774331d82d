package repository

import (
	"context"

	"github.com/Domenick1991/airport/internal/domain"
)

type CrewRepository interface {
	List(ctx context.Context) ([]domain.Crew, error)
	Create(ctx context.Context, crew *domain.Crew) error
}

type PGCrewRepository struct {
	db DB
}

func NewCrewRepository(db DB) CrewRepository {
	return &PGCrewRepository{db: db}
}

func (r *PGCrewRepository) List(ctx context.Context) ([]domain.Crew, error) {
	rows, err := r.db.Query(ctx, `SELECT id, first_name, last_name FROM crews ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	crews := make([]domain.Crew, 0)
	for rows.Next() {
		var c domain.Crew
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName); err != nil {
			return nil, err
		}
		crews = append(crews, c)
	}
	return crews, rows.Err()
}

func (r *PGCrewRepository) Create(ctx context.Context, crew *domain.Crew) error {
	err := r.db.QueryRow(ctx, `INSERT INTO crews (first_name, last_name) VALUES ($1, $2) RETURNING id`,
		crew.FirstName, crew.LastName).Scan(&crew.ID)
	return translateError(err)
}

var _ CrewRepository = (*PGCrewRepository)(nil)
