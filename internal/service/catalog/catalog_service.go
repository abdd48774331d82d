package catalog

import (
	"context"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/Domenick1991/airport/internal/repository"
	"github.com/Domenick1991/airport/internal/validation"
)

// CatalogUseCase covers the reference data flights are built from.
type CatalogUseCase interface {
	ListAirports(ctx context.Context) ([]domain.Airport, error)
	CreateAirport(ctx context.Context, airport *domain.Airport) error

	ListRoutes(ctx context.Context) ([]domain.Route, error)
	CreateRoute(ctx context.Context, route *domain.Route) error

	ListAirplaneTypes(ctx context.Context) ([]domain.AirplaneType, error)
	GetAirplaneType(ctx context.Context, id int64) (*domain.AirplaneType, error)
	CreateAirplaneType(ctx context.Context, airplaneType *domain.AirplaneType) error

	ListAirplanes(ctx context.Context) ([]domain.Airplane, error)
	CreateAirplane(ctx context.Context, airplane *domain.Airplane) error

	ListCrews(ctx context.Context) ([]domain.Crew, error)
	CreateCrew(ctx context.Context, crew *domain.Crew) error
}

type Repositories struct {
	Airports      repository.AirportRepository
	Routes        repository.RouteRepository
	AirplaneTypes repository.AirplaneTypeRepository
	Airplanes     repository.AirplaneRepository
	Crews         repository.CrewRepository
}

type CatalogService struct {
	repos Repositories
}

func NewCatalogService(repos Repositories) *CatalogService {
	return &CatalogService{repos: repos}
}

func (s *CatalogService) ListAirports(ctx context.Context) ([]domain.Airport, error) {
	return s.repos.Airports.List(ctx)
}

func (s *CatalogService) CreateAirport(ctx context.Context, airport *domain.Airport) error {
	return s.repos.Airports.Create(ctx, airport)
}

func (s *CatalogService) ListRoutes(ctx context.Context) ([]domain.Route, error) {
	return s.repos.Routes.List(ctx)
}

// CreateRoute rejects illegal routes early; a concurrent duplicate still
// surfaces from storage as an integrity conflict.
func (s *CatalogService) CreateRoute(ctx context.Context, route *domain.Route) error {
	if err := validation.ValidateRoute(ctx, s.repos.Routes, route.SourceID, route.DestinationID); err != nil {
		return err
	}
	return s.repos.Routes.Create(ctx, route)
}

func (s *CatalogService) ListAirplaneTypes(ctx context.Context) ([]domain.AirplaneType, error) {
	return s.repos.AirplaneTypes.List(ctx)
}

func (s *CatalogService) GetAirplaneType(ctx context.Context, id int64) (*domain.AirplaneType, error) {
	return s.repos.AirplaneTypes.GetByID(ctx, id)
}

func (s *CatalogService) CreateAirplaneType(ctx context.Context, airplaneType *domain.AirplaneType) error {
	return s.repos.AirplaneTypes.Create(ctx, airplaneType)
}

func (s *CatalogService) ListAirplanes(ctx context.Context) ([]domain.Airplane, error) {
	return s.repos.Airplanes.List(ctx)
}

func (s *CatalogService) CreateAirplane(ctx context.Context, airplane *domain.Airplane) error {
	return s.repos.Airplanes.Create(ctx, airplane)
}

func (s *CatalogService) ListCrews(ctx context.Context) ([]domain.Crew, error) {
	return s.repos.Crews.List(ctx)
}

func (s *CatalogService) CreateCrew(ctx context.Context, crew *domain.Crew) error {
	return s.repos.Crews.Create(ctx, crew)
}

var _ CatalogUseCase = (*CatalogService)(nil)
