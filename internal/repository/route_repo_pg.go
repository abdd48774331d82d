package repository

import (
	"context"

	"github.com/Domenick1991/airport/internal/domain"
)

type RouteRepository interface {
	List(ctx context.Context) ([]domain.Route, error)
	Create(ctx context.Context, route *domain.Route) error
	RouteExists(ctx context.Context, sourceID, destinationID int64) (bool, error)
}

type PGRouteRepository struct {
	db DB
}

func NewRouteRepository(db DB) RouteRepository {
	return &PGRouteRepository{db: db}
}

func (r *PGRouteRepository) List(ctx context.Context) ([]domain.Route, error) {
	rows, err := r.db.Query(ctx, `
		SELECT r.id, r.source_id, r.destination_id, r.distance,
		       src.name, src.closest_big_city, dst.name, dst.closest_big_city
		FROM routes r
		JOIN airports src ON src.id = r.source_id
		JOIN airports dst ON dst.id = r.destination_id
		ORDER BY r.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	routes := make([]domain.Route, 0)
	for rows.Next() {
		var (
			route    domain.Route
			src, dst domain.Airport
		)
		if err := rows.Scan(&route.ID, &route.SourceID, &route.DestinationID, &route.Distance,
			&src.Name, &src.ClosestBigCity, &dst.Name, &dst.ClosestBigCity); err != nil {
			return nil, err
		}
		src.ID, dst.ID = route.SourceID, route.DestinationID
		route.Source, route.Destination = &src, &dst
		routes = append(routes, route)
	}
	return routes, rows.Err()
}

func (r *PGRouteRepository) Create(ctx context.Context, route *domain.Route) error {
	err := r.db.QueryRow(ctx, `INSERT INTO routes (source_id, destination_id, distance) VALUES ($1, $2, $3) RETURNING id`,
		route.SourceID, route.DestinationID, route.Distance).Scan(&route.ID)
	return translateError(err)
}

func (r *PGRouteRepository) RouteExists(ctx context.Context, sourceID, destinationID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM routes WHERE source_id = $1 AND destination_id = $2)`,
		sourceID, destinationID).Scan(&exists)
	return exists, err
}

var _ RouteRepository = (*PGRouteRepository)(nil)
